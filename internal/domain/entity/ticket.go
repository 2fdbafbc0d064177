package entity

// Ticket is one seat sold on one flight under a booking.
type Ticket struct {
	ID         uint
	FlightID   uint
	BookingID  uint
	SeatNumber string
	Fare       float64
	CheckedIn  bool
}
