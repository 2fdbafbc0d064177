package usecase

import (
	"context"
	"testing"
	"time"

	"flightops-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopRoutesByRevenueZeroSalesRouteAppears(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	data := &fakeData{
		flights: []entity.Flight{
			{ID: 1, FlightNumber: "FO101", RouteID: 1, DepartureUTC: now.AddDate(0, 0, -2)},
			{ID: 2, FlightNumber: "FO102", RouteID: 2, DepartureUTC: now.AddDate(0, 0, -3)},
		},
		tickets: []entity.Ticket{
			{ID: 1, FlightID: 1, Fare: 120.50},
			{ID: 2, FlightID: 1, Fare: 99.25},
		},
	}
	s := newTestService(data, CancellationNone, now)

	rows, err := s.TopRoutesByRevenue(context.Background(), now.AddDate(0, 0, -30), now, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Route#1", rows[0].RouteLabel)
	assert.Equal(t, 2, rows[0].SeatsSold)
	assert.Equal(t, 219.75, rows[0].TotalRevenue)
	assert.Equal(t, 109.88, rows[0].AvgFare)

	// Route 2 flew but sold nothing; it still appears, zeroed out.
	assert.Equal(t, "Route#2", rows[1].RouteLabel)
	assert.Equal(t, 1, rows[1].FlightCount)
	assert.Equal(t, 0, rows[1].SeatsSold)
	assert.Equal(t, 0.0, rows[1].TotalRevenue)
	assert.Equal(t, 0.0, rows[1].AvgFare)
}

func TestTopRoutesByRevenueClampsTopN(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	data := &fakeData{
		flights: []entity.Flight{
			{ID: 1, RouteID: 1, DepartureUTC: now.AddDate(0, 0, -1)},
			{ID: 2, RouteID: 2, DepartureUTC: now.AddDate(0, 0, -1)},
		},
	}
	s := newTestService(data, CancellationNone, now)

	rows, err := s.TopRoutesByRevenue(context.Background(), now.AddDate(0, 0, -30), now, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRunningDailyRevenueAccumulates(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	data := &fakeData{
		flights: []entity.Flight{
			{ID: 1, RouteID: 1, DepartureUTC: time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC)},
			{ID: 2, RouteID: 1, DepartureUTC: time.Date(2026, 8, 19, 9, 0, 0, 0, time.UTC)},
			{ID: 3, RouteID: 1, DepartureUTC: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)},
		},
		tickets: []entity.Ticket{
			{ID: 1, FlightID: 1, Fare: 100},
			{ID: 2, FlightID: 2, Fare: 50.25},
			{ID: 3, FlightID: 3, Fare: 75},
			{ID: 4, FlightID: 3, Fare: 25},
		},
	}
	s := newTestService(data, CancellationNone, now)

	rows, err := s.RunningDailyRevenue(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 100.0, rows[0].Revenue)
	assert.Equal(t, 100.0, rows[0].RunningTotal)
	assert.Equal(t, 50.25, rows[1].Revenue)
	assert.Equal(t, 150.25, rows[1].RunningTotal)
	assert.Equal(t, 100.0, rows[2].Revenue)
	assert.Equal(t, 250.25, rows[2].RunningTotal)

	// Running total is always the sum of everything so far.
	sum := 0.0
	for _, row := range rows {
		sum = round2(sum + row.Revenue)
		assert.Equal(t, sum, row.RunningTotal)
	}
	// Chronological order.
	for i := 1; i < len(rows); i++ {
		assert.True(t, rows[i-1].Date.Before(rows[i].Date))
	}
}

func TestOnTimePerformance(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	day := utcDate(now)
	data := &fakeData{
		flights: []entity.Flight{
			// Route 1: durations 120, 120, 180. Average 140. With a 15 minute
			// threshold nothing is within range of the average... except check:
			// |120-140|=20 > 15, |180-140|=40 > 15. 0 of 3 on time.
			{ID: 1, RouteID: 1, DepartureUTC: day.Add(-48 * time.Hour), ArrivalUTC: day.Add(-46 * time.Hour)},
			{ID: 2, RouteID: 1, DepartureUTC: day.Add(-24 * time.Hour), ArrivalUTC: day.Add(-22 * time.Hour)},
			{ID: 3, RouteID: 1, DepartureUTC: day.Add(-12 * time.Hour), ArrivalUTC: day.Add(-9 * time.Hour)},
			// Route 2: both 90 minutes, average 90, both on time.
			{ID: 4, RouteID: 2, DepartureUTC: day.Add(-30 * time.Hour), ArrivalUTC: day.Add(-30*time.Hour + 90*time.Minute)},
			{ID: 5, RouteID: 2, DepartureUTC: day.Add(-6 * time.Hour), ArrivalUTC: day.Add(-6*time.Hour + 90*time.Minute)},
		},
	}
	s := newTestService(data, CancellationNone, now)

	stats, err := s.OnTimePerformance(context.Background(), day.AddDate(0, 0, -30), day, 15)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Route#2", stats[0].RouteLabel)
	assert.Equal(t, 2, stats[0].OnTimeCount)
	assert.Equal(t, 2, stats[0].TotalCount)
	assert.Equal(t, 1.0, stats[0].OnTimePct)

	assert.Equal(t, "Route#1", stats[1].RouteLabel)
	assert.Equal(t, 0, stats[1].OnTimeCount)
	assert.Equal(t, 3, stats[1].TotalCount)
	assert.Equal(t, 0.0, stats[1].OnTimePct)
}

func TestSeatOccupancy(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	data := &fakeData{
		aircraft: []entity.Aircraft{
			{ID: 1, Capacity: 10},
			{ID: 2, Capacity: 0},
		},
		flights: []entity.Flight{
			{ID: 1, FlightNumber: "FO101", RouteID: 1, AircraftID: 1, DepartureUTC: now.AddDate(0, 0, -5)},
			{ID: 2, FlightNumber: "FO102", RouteID: 1, AircraftID: 1, DepartureUTC: now.AddDate(0, 0, -3)},
			{ID: 3, FlightNumber: "FO103", RouteID: 2, AircraftID: 2, DepartureUTC: now.AddDate(0, 0, -1)},
			// Outside the trailing window.
			{ID: 4, FlightNumber: "FO104", RouteID: 2, AircraftID: 1, DepartureUTC: now.AddDate(0, 0, -90)},
		},
		tickets: []entity.Ticket{
			{ID: 1, FlightID: 1}, {ID: 2, FlightID: 1}, {ID: 3, FlightID: 1},
			{ID: 4, FlightID: 2},
			{ID: 5, FlightID: 3},
		},
	}
	s := newTestService(data, CancellationNone, now)

	rows, err := s.SeatOccupancy(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "FO101", rows[0].FlightNumber)
	assert.Equal(t, 0.3, rows[0].OccupancyPct)
	assert.Equal(t, "FO102", rows[1].FlightNumber)
	assert.Equal(t, 0.1, rows[1].OccupancyPct)
	// Zero-capacity airframe scores zero instead of dividing by zero.
	assert.Equal(t, "FO103", rows[2].FlightNumber)
	assert.Equal(t, 0.0, rows[2].OccupancyPct)
}

func TestFrequentFliers(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	data := &fakeData{
		passengers: []entity.Passenger{
			{ID: 1, FullName: "Amal Zahir"},
			{ID: 2, FullName: "Tariq Omar"},
		},
		bookings: []entity.Booking{
			{ID: 1, PassengerID: 1},
			{ID: 2, PassengerID: 2},
		},
		routes: []entity.Route{
			{ID: 1, DistanceKm: 500},
			{ID: 2, DistanceKm: 1200},
		},
		flights: []entity.Flight{
			{ID: 1, RouteID: 1, DepartureUTC: now.AddDate(0, 0, -5)},
			{ID: 2, RouteID: 2, DepartureUTC: now.AddDate(0, 0, -3)},
			{ID: 3, RouteID: 2, DepartureUTC: now.AddDate(0, 0, -1)},
		},
		tickets: []entity.Ticket{
			{ID: 1, FlightID: 1, BookingID: 1},
			{ID: 2, FlightID: 2, BookingID: 1},
			{ID: 3, FlightID: 3, BookingID: 1},
			{ID: 4, FlightID: 1, BookingID: 2},
		},
	}
	s := newTestService(data, CancellationNone, now)

	fliers, err := s.FrequentFliers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, fliers, 1)

	assert.Equal(t, "Amal Zahir", fliers[0].PassengerName)
	assert.Equal(t, 3, fliers[0].FlightCount)
	assert.Equal(t, 2900, fliers[0].TotalDistanceKm)

	// Dropping the threshold admits the single-flight passenger too.
	fliers, err = s.FrequentFliers(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, fliers, 2)
	assert.Equal(t, "Tariq Omar", fliers[1].PassengerName)
}

func TestMaintenanceAlerts(t *testing.T) {
	until := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	data := &fakeData{
		routes: []entity.Route{{ID: 1, DistanceKm: 100000}, {ID: 2, DistanceKm: 1000}},
		aircraft: []entity.Aircraft{
			{ID: 1, TailNumber: "A001"},
			{ID: 2, TailNumber: "A002"},
			{ID: 3, TailNumber: "A003"},
		},
		flights: []entity.Flight{
			// A001: 400000 km => 533.33 hours, over the hours threshold.
			{ID: 1, RouteID: 1, AircraftID: 1, DepartureUTC: until.AddDate(0, 0, -10)},
			{ID: 2, RouteID: 1, AircraftID: 1, DepartureUTC: until.AddDate(0, 0, -9)},
			{ID: 3, RouteID: 1, AircraftID: 1, DepartureUTC: until.AddDate(0, 0, -8)},
			{ID: 4, RouteID: 1, AircraftID: 1, DepartureUTC: until.AddDate(0, 0, -7)},
			// A002: 1000 km, recently maintained, nothing due.
			{ID: 5, RouteID: 2, AircraftID: 2, DepartureUTC: until.AddDate(0, 0, -5)},
			// A003: 1000 km, never maintained.
			{ID: 6, RouteID: 2, AircraftID: 3, DepartureUTC: until.AddDate(0, 0, -4)},
		},
		maintenance: []entity.MaintenanceRecord{
			{ID: 1, AircraftID: 1, Date: until.AddDate(0, 0, -10)},
			{ID: 2, AircraftID: 2, Date: until.AddDate(0, 0, -10)},
		},
	}
	s := newTestService(data, CancellationNone, until)

	alerts, err := s.MaintenanceAlerts(context.Background(), until)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	byTail := map[string]entity.MaintenanceAlert{}
	for _, a := range alerts {
		byTail[a.TailNumber] = a
	}

	a001 := byTail["A001"]
	assert.Equal(t, 533.33, a001.CumulativeHours)
	assert.Equal(t, "Hours", a001.Reason)
	assert.Equal(t, until.AddDate(0, 0, 80), a001.DueDate)

	a003 := byTail["A003"]
	assert.Equal(t, "LastMaintenance", a003.Reason)
	assert.Equal(t, until, a003.DueDate)
}

func TestMaintenanceAlertsStaleMaintenanceBothReasons(t *testing.T) {
	until := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	data := &fakeData{
		routes:   []entity.Route{{ID: 1, DistanceKm: 100000}},
		aircraft: []entity.Aircraft{{ID: 1, TailNumber: "A001"}},
		flights: []entity.Flight{
			{ID: 1, RouteID: 1, AircraftID: 1, DepartureUTC: until.AddDate(0, 0, -120)},
			{ID: 2, RouteID: 1, AircraftID: 1, DepartureUTC: until.AddDate(0, 0, -110)},
			{ID: 3, RouteID: 1, AircraftID: 1, DepartureUTC: until.AddDate(0, 0, -100)},
			{ID: 4, RouteID: 1, AircraftID: 1, DepartureUTC: until.AddDate(0, 0, -95)},
		},
		maintenance: []entity.MaintenanceRecord{
			{ID: 1, AircraftID: 1, Date: until.AddDate(0, 0, -120)},
		},
	}
	s := newTestService(data, CancellationNone, until)

	alerts, err := s.MaintenanceAlerts(context.Background(), until)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Hours & LastMaintenance", alerts[0].Reason)
	assert.Equal(t, until.AddDate(0, 0, -30), alerts[0].DueDate)
}

func TestOverweightBaggage(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	data := &fakeData{
		bookings: []entity.Booking{{ID: 1, BookingRef: "BR00001"}},
		tickets: []entity.Ticket{
			{ID: 1, BookingID: 1},
			{ID: 2, BookingID: 5}, // unknown booking
		},
		baggage: []entity.Baggage{
			{ID: 1, TicketID: 1, WeightKg: 10},
			{ID: 2, TicketID: 1, WeightKg: 12},
			{ID: 3, TicketID: 1, WeightKg: 9},
			{ID: 4, TicketID: 2, WeightKg: 40},
		},
	}
	s := newTestService(data, CancellationNone, now)

	alerts, err := s.OverweightBaggage(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	// Heaviest first.
	assert.Equal(t, uint(2), alerts[0].TicketID)
	assert.Equal(t, 40.0, alerts[0].TotalWeightKg)
	assert.Equal(t, "5", alerts[0].BookingRef)

	assert.Equal(t, uint(1), alerts[1].TicketID)
	assert.Equal(t, 31.0, alerts[1].TotalWeightKg)
	assert.Equal(t, "BR00001", alerts[1].BookingRef)
}

func TestOverweightBaggageExactLimitPasses(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	data := &fakeData{
		tickets: []entity.Ticket{{ID: 1, BookingID: 1}},
		baggage: []entity.Baggage{{ID: 1, TicketID: 1, WeightKg: 30}},
	}
	s := newTestService(data, CancellationNone, now)

	// Exactly at the limit is fine; the default limit applies when the
	// caller passes zero.
	alerts, err := s.OverweightBaggage(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
