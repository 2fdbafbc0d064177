package entity

// Baggage is one checked bag attached to a ticket.
type Baggage struct {
	ID        uint
	TicketID  uint
	WeightKg  float64
	TagNumber string
}
