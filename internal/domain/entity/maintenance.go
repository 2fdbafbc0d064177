package entity

import (
	"time"
)

// MaintenanceRecord is one completed maintenance event for an aircraft.
// An aircraft with no records at all counts as never maintained.
type MaintenanceRecord struct {
	ID         uint
	AircraftID uint
	Date       time.Time
	Type       string
	Notes      string
}
