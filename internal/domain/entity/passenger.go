package entity

import (
	"time"
)

// Passenger is a person who can hold bookings.
type Passenger struct {
	ID          uint
	FullName    string
	PassportNo  string
	Nationality string
	DateOfBirth time.Time
}
