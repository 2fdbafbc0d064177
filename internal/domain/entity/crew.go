package entity

// CrewMember is a pilot, co-pilot or flight attendant.
type CrewMember struct {
	ID        uint
	FullName  string
	Role      string
	LicenseNo string
}

// CrewAssignment puts one crew member on one flight. There is exactly one
// row per (flight, crew) pair.
type CrewAssignment struct {
	FlightID     uint
	CrewID       uint
	RoleOnFlight string
}
