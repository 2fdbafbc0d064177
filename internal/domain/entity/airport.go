package entity

// Airport identifies an airport by its IATA code.
type Airport struct {
	ID      uint
	IATA    string
	Name    string
	City    string
	Country string
}
