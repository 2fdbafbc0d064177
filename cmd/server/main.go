package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightops-service/internal/infrastructure/config"
	"flightops-service/internal/infrastructure/persistence"
	"flightops-service/internal/interface/httpapi"
	gormRepo "flightops-service/internal/interface/repository"
	"flightops-service/internal/usecase"
	"flightops-service/pkg/logger"
	"flightops-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting FlightOps Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	flightRepo := gormRepo.NewGormFlightRepository(gormDB)
	ticketRepo := gormRepo.NewGormTicketRepository(gormDB)
	bookingRepo := gormRepo.NewGormBookingRepository(gormDB)
	passengerRepo := gormRepo.NewGormPassengerRepository(gormDB)
	crewRepo := gormRepo.NewGormCrewRepository(gormDB)
	maintenanceRepo := gormRepo.NewGormMaintenanceRepository(gormDB)
	baggageRepo := gormRepo.NewGormBaggageRepository(gormDB)
	routeRepo := gormRepo.NewGormRouteRepository(gormDB)
	aircraftRepo := gormRepo.NewGormAircraftRepository(gormDB)
	airportRepo := gormRepo.NewGormAirportRepository(gormDB)

	// Set up the reporting core
	cancellation := usecase.ParseCancellationMode(cfg.CancellationField)
	reportService := usecase.NewReportService(
		flightRepo,
		ticketRepo,
		bookingRepo,
		passengerRepo,
		crewRepo,
		maintenanceRepo,
		baggageRepo,
		routeRepo,
		aircraftRepo,
		airportRepo,
		cancellation,
		log,
	)

	reportMetrics := metrics.NewMetrics("flightops")
	handler := httpapi.NewHandler(reportService, log, reportMetrics, cfg.BaggageLimitKg)

	// Set up HTTP server
	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("FlightOps Service stopped")
}
