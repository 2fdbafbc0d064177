package usecase

import (
	"context"
	"sort"

	"flightops-service/internal/domain/entity"
)

// FrequentFliers lists passengers whose flight count meets minFlights,
// with their total flown route distance. Counting goes ticket -> booking
// -> passenger; tickets whose joins cannot be resolved are skipped.
func (s *ReportService) FrequentFliers(ctx context.Context, minFlights int) ([]entity.FrequentFlier, error) {
	if minFlights < 1 {
		minFlights = 1
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

	flights, err := s.flightRepo.ListInWindow(ctx, nil, nil)
	if err != nil {
		s.logger.Error("Failed to list flights", "error", err)
		return nil, err
	}

	routes, err := s.routeRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list routes", "error", err)
		return nil, err
	}

	bookingByID := make(map[uint]entity.Booking, len(bookings))
	for _, b := range bookings {
		bookingByID[b.ID] = b
	}
	passengerByID := make(map[uint]entity.Passenger, len(passengers))
	for _, p := range passengers {
		passengerByID[p.ID] = p
	}
	flightByID := make(map[uint]entity.Flight, len(flights))
	for _, f := range flights {
		flightByID[f.ID] = f
	}
	distanceByRoute := make(map[uint]int, len(routes))
	for _, r := range routes {
		distanceByRoute[r.ID] = r.DistanceKm
	}

	type flierAgg struct {
		flightCount int
		distanceKm  int
	}
	byPassenger := make(map[uint]*flierAgg)
	for _, t := range tickets {
		booking, ok := bookingByID[t.BookingID]
		if !ok {
			continue
		}
		flight, ok := flightByID[t.FlightID]
		if !ok {
			continue
		}
		distance, ok := distanceByRoute[flight.RouteID]
		if !ok {
			continue
		}
		if _, ok := passengerByID[booking.PassengerID]; !ok {
			continue
		}

		agg := byPassenger[booking.PassengerID]
		if agg == nil {
			agg = &flierAgg{}
			byPassenger[booking.PassengerID] = agg
		}
		agg.flightCount++
		agg.distanceKm += distance
	}

	fliers := []entity.FrequentFlier{}
	for passengerID, agg := range byPassenger {
		if agg.flightCount < minFlights {
			continue
		}
		fliers = append(fliers, entity.FrequentFlier{
			PassengerID:     passengerID,
			PassengerName:   passengerByID[passengerID].FullName,
			FlightCount:     agg.flightCount,
			TotalDistanceKm: agg.distanceKm,
		})
	}

	sort.Slice(fliers, func(i, j int) bool {
		if fliers[i].FlightCount != fliers[j].FlightCount {
			return fliers[i].FlightCount > fliers[j].FlightCount
		}
		if fliers[i].TotalDistanceKm != fliers[j].TotalDistanceKm {
			return fliers[i].TotalDistanceKm > fliers[j].TotalDistanceKm
		}
		return fliers[i].PassengerName < fliers[j].PassengerName
	})

	return fliers, nil
}
