package entity

import (
	"time"
)

// Booking groups the tickets a passenger bought in one transaction.
// Status and Canceled are schema-optional cancellation indicators; which
// one (if either) is trustworthy is decided once at service construction.
type Booking struct {
	ID          uint
	BookingRef  string
	BookingDate time.Time
	Status      string
	Canceled    bool
	PassengerID uint
}
