package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"flightops-service/internal/usecase"
	"flightops-service/pkg/logger"
	"flightops-service/pkg/metrics"
)

// Handler exposes one GET endpoint per report kind. It only parses
// parameters and encodes results; clamping of out-of-range values stays
// in the reporting core.
type Handler struct {
	reports        *usecase.ReportService
	logger         logger.Logger
	metrics        *metrics.Metrics
	baggageLimitKg float64
}

// NewHandler creates a new report handler
func NewHandler(reports *usecase.ReportService, logger logger.Logger, metrics *metrics.Metrics, baggageLimitKg float64) *Handler {
	return &Handler{
		reports:        reports,
		logger:         logger,
		metrics:        metrics,
		baggageLimitKg: baggageLimitKg,
	}
}

// Register attaches every report route to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/reports/available-seats", h.availableSeats)
	mux.HandleFunc("/reports/route-revenue", h.routeRevenue)
	mux.HandleFunc("/reports/on-time", h.onTime)
	mux.HandleFunc("/reports/seat-occupancy", h.seatOccupancy)
	mux.HandleFunc("/reports/crew-conflicts", h.crewConflicts)
	mux.HandleFunc("/reports/connections", h.connections)
	mux.HandleFunc("/reports/frequent-fliers", h.frequentFliers)
	mux.HandleFunc("/reports/maintenance-alerts", h.maintenanceAlerts)
	mux.HandleFunc("/reports/overweight-baggage", h.overweightBaggage)
	mux.HandleFunc("/reports/set-partitions", h.setPartitions)
	mux.HandleFunc("/reports/flights/page", h.pageFlights)
	mux.HandleFunc("/reports/running-revenue", h.runningRevenue)
	mux.HandleFunc("/reports/forecast", h.forecast)
	mux.HandleFunc("/reports/daily-manifest", h.dailyManifest)
	mux.HandleFunc("/reports/flights-per-day", h.flightsPerDay)
}

func (h *Handler) respond(w http.ResponseWriter, report string, data interface{}, err error, started time.Time) {
	if err != nil {
		// Only data access failures reach this point; everything else is
		// recovered inside the reporting core.
		h.logger.Error("Report failed", "report", report, "error", err)
		h.metrics.ErrorsCount.WithLabelValues(report).Inc()
		http.Error(w, "data access failure", http.StatusBadGateway)
		return
	}

	h.metrics.ReportsGenerated.WithLabelValues(report).Inc()
	h.metrics.ReportDuration.Observe(time.Since(started).Seconds())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode report", "report", report, "error", err)
	}
}

// queryInt reads an integer query parameter, falling back on absence or
// garbage. Range clamping happens in the usecase.
func queryInt(r *http.Request, key string, fallback int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return v
	}
	return fallback
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(r.URL.Query().Get(key), 64); err == nil {
		return v
	}
	return fallback
}

// queryTime accepts RFC 3339 timestamps or plain dates.
func queryTime(r *http.Request, key string, fallback time.Time) time.Time {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC()
	}
	return fallback
}

func (h *Handler) availableSeats(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	flightID := queryInt(r, "flightId", 0)
	seats, err := h.reports.AvailableSeats(r.Context(), uint(flightID))
	h.respond(w, "available_seats", seats, err, started)
}

func (h *Handler) routeRevenue(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	to := queryTime(r, "to", time.Now().UTC())
	from := queryTime(r, "from", to.AddDate(0, 0, -30))
	topN := queryInt(r, "top", 10)
	rows, err := h.reports.TopRoutesByRevenue(r.Context(), from, to, topN)
	h.respond(w, "route_revenue", rows, err, started)
}

func (h *Handler) onTime(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	to := queryTime(r, "to", time.Now().UTC())
	from := queryTime(r, "from", to.AddDate(0, 0, -30))
	threshold := queryInt(r, "thresholdMinutes", 15)
	rows, err := h.reports.OnTimePerformance(r.Context(), from, to, threshold)
	h.respond(w, "on_time", rows, err, started)
}

func (h *Handler) seatOccupancy(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rows, err := h.reports.SeatOccupancy(r.Context())
	h.respond(w, "seat_occupancy", rows, err, started)
}

func (h *Handler) crewConflicts(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rows, err := h.reports.CrewConflicts(r.Context())
	h.respond(w, "crew_conflicts", rows, err, started)
}

func (h *Handler) connections(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	maxLayover := queryInt(r, "maxLayoverHours", 3)
	rows, err := h.reports.PassengerConnections(r.Context(), maxLayover)
	h.respond(w, "connections", rows, err, started)
}

func (h *Handler) frequentFliers(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	minFlights := queryInt(r, "minFlights", 2)
	rows, err := h.reports.FrequentFliers(r.Context(), minFlights)
	h.respond(w, "frequent_fliers", rows, err, started)
}

func (h *Handler) maintenanceAlerts(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	until := queryTime(r, "until", time.Now().UTC())
	rows, err := h.reports.MaintenanceAlerts(r.Context(), until)
	h.respond(w, "maintenance_alerts", rows, err, started)
}

func (h *Handler) overweightBaggage(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	limit := queryFloat(r, "limitKg", h.baggageLimitKg)
	rows, err := h.reports.OverweightBaggage(r.Context(), limit)
	h.respond(w, "overweight_baggage", rows, err, started)
}

func (h *Handler) setPartitions(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	partition, err := h.reports.SetPartitions(r.Context())
	h.respond(w, "set_partitions", partition, err, started)
}

func (h *Handler) pageFlights(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 10)
	rows, err := h.reports.PageFlights(r.Context(), page, pageSize)
	h.respond(w, "page_flights", rows, err, started)
}

func (h *Handler) runningRevenue(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	days := queryInt(r, "days", 7)
	rows, err := h.reports.RunningDailyRevenue(r.Context(), days)
	h.respond(w, "running_revenue", rows, err, started)
}

func (h *Handler) forecast(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	days := queryInt(r, "days", 14)
	points := h.reports.ForecastRevenue(days)
	h.respond(w, "forecast", points, nil, started)
}

func (h *Handler) dailyManifest(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	date := queryTime(r, "date", time.Now().UTC())
	rows, err := h.reports.DailyManifest(r.Context(), date)
	h.respond(w, "daily_manifest", rows, err, started)
}

func (h *Handler) flightsPerDay(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	to := queryTime(r, "to", time.Now().UTC())
	from := queryTime(r, "from", to.AddDate(0, 0, -30))
	rows, err := h.reports.FlightsPerDay(r.Context(), from, to)
	h.respond(w, "flights_per_day", rows, err, started)
}
