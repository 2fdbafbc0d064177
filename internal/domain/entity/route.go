package entity

// Route connects two airports with a known great-circle distance.
type Route struct {
	ID                   uint
	OriginAirportID      uint
	DestinationAirportID uint
	DistanceKm           int
}
