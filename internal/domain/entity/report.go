// internal/domain/entity/report.go
package entity

import (
	"time"
)

// Report records are ephemeral values: every report call produces a fresh
// ordered slice of them and nothing is persisted.

// RouteRevenue aggregates ticket sales for one route inside a time window.
// Routes that flew but sold nothing still appear with zero revenue.
type RouteRevenue struct {
	RouteLabel   string  `json:"route"`
	FlightCount  int     `json:"flightCount"`
	SeatsSold    int     `json:"seatsSold"`
	AvgFare      float64 `json:"avgFare"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// OnTimeStat scores a route by how many of its flights stayed within the
// tolerance of the route's own average scheduled duration.
type OnTimeStat struct {
	RouteLabel  string  `json:"route"`
	OnTimeCount int     `json:"onTimeCount"`
	TotalCount  int     `json:"totalCount"`
	OnTimePct   float64 `json:"onTimePct"`
}

// SeatOccupancy is seats sold over capacity for one flight.
type SeatOccupancy struct {
	FlightNumber  string    `json:"flightNumber"`
	DepartureDate time.Time `json:"departureDate"`
	OccupancyPct  float64   `json:"occupancyPct"`
	RouteLabel    string    `json:"route"`
}

// CrewConflict flags one pair of time-overlapping flights assigned to the
// same crew member.
type CrewConflict struct {
	CrewID   uint   `json:"crewId"`
	CrewName string `json:"crewName"`
	FlightA  string `json:"flightA"`
	FlightB  string `json:"flightB"`
	Detail   string `json:"detail"`
}

// Connection is a qualifying adjacent pair of segments within one booking.
type Connection struct {
	PassengerName string `json:"passengerName"`
	Itinerary     string `json:"itinerary"`
}

// FrequentFlier is a passenger whose flight count met the caller threshold.
type FrequentFlier struct {
	PassengerID     uint   `json:"passengerId"`
	PassengerName   string `json:"passengerName"`
	FlightCount     int    `json:"flightCount"`
	TotalDistanceKm int    `json:"totalDistanceKm"`
}

// MaintenanceAlert marks an aircraft as due for maintenance, either by
// accumulated flight hours or by elapsed time since the last service.
type MaintenanceAlert struct {
	TailNumber      string    `json:"tailNumber"`
	DueDate         time.Time `json:"dueDate"`
	CumulativeHours float64   `json:"cumulativeHours"`
	Reason          string    `json:"reason"`
}

// OverweightBag reports a ticket whose checked baggage exceeds the limit.
type OverweightBag struct {
	TicketID      uint    `json:"ticketId"`
	BookingRef    string  `json:"bookingRef"`
	TotalWeightKg float64 `json:"totalWeightKg"`
}

// SetPartition holds the derived passenger-name sets, each deduplicated
// and sorted alphabetically.
type SetPartition struct {
	Union     []string `json:"union"`
	Intersect []string `json:"intersect"`
	Except    []string `json:"except"`
}

// FlightPage is one row of the paged flight listing.
type FlightPage struct {
	FlightNumber string    `json:"flightNumber"`
	DepartureUTC time.Time `json:"departureUtc"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
}

// RunningRevenue carries one day's ticket revenue plus the running total
// accumulated in chronological order.
type RunningRevenue struct {
	Date         time.Time `json:"date"`
	Revenue      float64   `json:"revenue"`
	RunningTotal float64   `json:"runningTotal"`
}

// ForecastPoint is one projected day of revenue.
type ForecastPoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// DailyManifest summarizes one departing flight for the ops desk.
type DailyManifest struct {
	FlightNumber   string    `json:"flightNumber"`
	DepartureUTC   time.Time `json:"departureUtc"`
	ArrivalUTC     time.Time `json:"arrivalUtc"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	AircraftTail   string    `json:"aircraftTail"`
	PassengerCount int       `json:"passengerCount"`
	Crew           []string  `json:"crew"`
	TotalBaggageKg float64   `json:"totalBaggageKg"`
}

// FlightsPerDay counts flights by departure date.
type FlightsPerDay struct {
	Date        time.Time `json:"date"`
	FlightCount int       `json:"flightCount"`
}
