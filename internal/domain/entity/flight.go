// internal/domain/entity/flight.go
package entity

import (
	"time"
)

// Flight is one scheduled flight on a route, flown by a single aircraft.
// Times are UTC and ArrivalUTC is assumed to be after DepartureUTC.
type Flight struct {
	ID           uint
	FlightNumber string
	DepartureUTC time.Time
	ArrivalUTC   time.Time
	Status       string
	RouteID      uint
	AircraftID   uint
}
