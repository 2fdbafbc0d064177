package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"flightops-service/internal/domain/entity"
)

// flightSegment is one ticketed leg inside a booking, joined across
// ticket, booking, passenger and flight.
type flightSegment struct {
	bookingID     uint
	passengerName string
	flightNumber  string
	departureUTC  time.Time
	arrivalUTC    time.Time
	routeID       uint
}

// PassengerConnections finds qualifying connections: adjacent segment
// pairs within a booking, ordered by departure, whose layover is between
// zero and maxLayoverHours. A booking with N segments yields at most N-1
// connection records.
func (s *ReportService) PassengerConnections(ctx context.Context, maxLayoverHours int) ([]entity.Connection, error) {
	if maxLayoverHours < 1 {
		maxLayoverHours = 1
	}
	maxLayoverMinutes := maxLayoverHours * 60

	from := s.now().UTC().AddDate(0, 0, -connectionLookbackDays)
	to := s.now().UTC().AddDate(0, 0, 1)

	flights, err := s.flightRepo.ListInWindow(ctx, &from, &to)
	if err != nil {
		s.logger.Error("Failed to list flights", "error", err)
		return nil, err
	}

	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list tickets", "error", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list bookings", "error", err)
		return nil, err
	}

	passengers, err := s.passengerRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list passengers", "error", err)
		return nil, err
	}

	flightByID := make(map[uint]entity.Flight, len(flights))
	for _, f := range flights {
		flightByID[f.ID] = f
	}
	bookingByID := make(map[uint]entity.Booking, len(bookings))
	for _, b := range bookings {
		bookingByID[b.ID] = b
	}
	passengerByID := make(map[uint]entity.Passenger, len(passengers))
	for _, p := range passengers {
		passengerByID[p.ID] = p
	}

	segmentsByBooking := make(map[uint][]flightSegment)
	for _, t := range tickets {
		flight, ok := flightByID[t.FlightID]
		if !ok {
			continue
		}
		booking, ok := bookingByID[t.BookingID]
		if !ok {
			continue
		}
		passenger, ok := passengerByID[booking.PassengerID]
		if !ok {
			continue
		}
		segmentsByBooking[booking.ID] = append(segmentsByBooking[booking.ID], flightSegment{
			bookingID:     booking.ID,
			passengerName: passenger.FullName,
			flightNumber:  flight.FlightNumber,
			departureUTC:  flight.DepartureUTC,
			arrivalUTC:    flight.ArrivalUTC,
			routeID:       flight.RouteID,
		})
	}

	connections := []entity.Connection{}
	for _, segments := range segmentsByBooking {
		sort.Slice(segments, func(i, j int) bool {
			return segments[i].departureUTC.Before(segments[j].departureUTC)
		})

		// Only adjacent pairs in departure order can be connections.
		for i := 0; i < len(segments)-1; i++ {
			a := segments[i]
			b := segments[i+1]

			layover := int(b.departureUTC.Sub(a.arrivalUTC) / time.Minute)
			if layover < 0 || layover > maxLayoverMinutes {
				continue
			}

			connections = append(connections, entity.Connection{
				PassengerName: a.passengerName,
				Itinerary: fmt.Sprintf("%s (%s) -> %s (%s) [%s->%s, layover %d min]",
					a.flightNumber, a.arrivalUTC.Format("2006-01-02 15:04"),
					b.flightNumber, b.departureUTC.Format("2006-01-02 15:04"),
					routeLabel(a.routeID), routeLabel(b.routeID), layover),
			})
		}
	}

	sort.Slice(connections, func(i, j int) bool {
		if connections[i].PassengerName != connections[j].PassengerName {
			return connections[i].PassengerName < connections[j].PassengerName
		}
		return connections[i].Itinerary < connections[j].Itinerary
	})

	return connections, nil
}
