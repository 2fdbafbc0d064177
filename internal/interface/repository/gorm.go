package repository

import (
	"errors"

	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// translateErr maps gorm's not-found error onto the domain sentinel so the
// reporting core never imports gorm.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

// Migrate creates or updates every table the reporting schema reads from.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Airports{},
		&Routes{},
		&Aircrafts{},
		&Flights{},
		&CrewMembers{},
		&FlightCrews{},
		&Passengers{},
		&Bookings{},
		&Tickets{},
		&BaggageItems{},
		&MaintenanceRecords{},
	)
}
