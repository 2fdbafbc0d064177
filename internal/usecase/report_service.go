package usecase

import (
	"fmt"
	"math"
	"time"

	"flightops-service/internal/domain/repository"
	"flightops-service/pkg/logger"
)

// Operational thresholds shared by the reports.
const (
	avgCruiseSpeedKph     = 750.0 // simulated hours = km / speed
	maintenanceHoursMax   = 500.0 // alert when estimated hours reach this
	maintenanceMaxDays    = 90    // alert when last maintenance is older than this
	occupancyWindowDays   = 60    // trailing window for seat occupancy
	connectionLookbackDays = 60   // itinerary window behind now
	defaultBaggageLimitKg = 30.0
	vipTopN               = 200
)

// CancellationMode says which optional booking field, if any, marks a
// booking as canceled. It is resolved once at construction instead of
// being probed on every call.
type CancellationMode int

const (
	CancellationNone CancellationMode = iota
	CancellationByStatus
	CancellationByFlag
)

// ParseCancellationMode maps the CANCELLATION_FIELD config value onto a
// mode. Unknown values degrade to CancellationNone.
func ParseCancellationMode(field string) CancellationMode {
	switch field {
	case "status":
		return CancellationByStatus
	case "flag":
		return CancellationByFlag
	default:
		return CancellationNone
	}
}

// ReportService derives the operational reports from the read-only data
// access layer. Every method computes against a fresh snapshot; nothing is
// cached or persisted between calls.
type ReportService struct {
	flightRepo      repository.FlightRepository
	ticketRepo      repository.TicketRepository
	bookingRepo     repository.BookingRepository
	passengerRepo   repository.PassengerRepository
	crewRepo        repository.CrewRepository
	maintenanceRepo repository.MaintenanceRepository
	baggageRepo     repository.BaggageRepository
	routeRepo       repository.RouteRepository
	aircraftRepo    repository.AircraftRepository
	airportRepo     repository.AirportRepository
	cancellation    CancellationMode
	logger          logger.Logger
	now             func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	flightRepo repository.FlightRepository,
	ticketRepo repository.TicketRepository,
	bookingRepo repository.BookingRepository,
	passengerRepo repository.PassengerRepository,
	crewRepo repository.CrewRepository,
	maintenanceRepo repository.MaintenanceRepository,
	baggageRepo repository.BaggageRepository,
	routeRepo repository.RouteRepository,
	aircraftRepo repository.AircraftRepository,
	airportRepo repository.AirportRepository,
	cancellation CancellationMode,
	logger logger.Logger,
) *ReportService {
	return &ReportService{
		flightRepo:      flightRepo,
		ticketRepo:      ticketRepo,
		bookingRepo:     bookingRepo,
		passengerRepo:   passengerRepo,
		crewRepo:        crewRepo,
		maintenanceRepo: maintenanceRepo,
		baggageRepo:     baggageRepo,
		routeRepo:       routeRepo,
		aircraftRepo:    aircraftRepo,
		airportRepo:     airportRepo,
		cancellation:    cancellation,
		logger:          logger,
		now:             time.Now,
	}
}

// round2 rounds half away from zero to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// utcDate truncates a time to its UTC calendar date.
func utcDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func routeLabel(routeID uint) string {
	return fmt.Sprintf("Route#%d", routeID)
}
