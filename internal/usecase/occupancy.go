package usecase

import (
	"context"
	"sort"

	"flightops-service/internal/domain/entity"
)

// SeatOccupancy ranks flights inside the trailing 60-day window by seats
// sold over capacity. Flights on aircraft with no capacity score zero.
// Output is capped at the twenty fullest flights.
func (s *ReportService) SeatOccupancy(ctx context.Context) ([]entity.SeatOccupancy, error) {
	from := utcDate(s.now()).AddDate(0, 0, -occupancyWindowDays)
	to := utcDate(s.now()).AddDate(0, 0, 1)

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

	aircraft, err := s.aircraftRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list aircraft", "error", err)
		return nil, err
	}

	capacityByID := make(map[uint]int, len(aircraft))
	for _, a := range aircraft {
		capacityByID[a.ID] = a.Capacity
	}

	soldByFlight := make(map[uint]int)
	for _, t := range tickets {
		soldByFlight[t.FlightID]++
	}

	rows := make([]entity.SeatOccupancy, 0, len(flights))
	for _, f := range flights {
		capacity := capacityByID[f.AircraftID]
		sold := soldByFlight[f.ID]

		pct := 0.0
		if capacity > 0 {
			pct = float64(sold) / float64(capacity)
		}

		rows = append(rows, entity.SeatOccupancy{
			FlightNumber:  f.FlightNumber,
			DepartureDate: utcDate(f.DepartureUTC),
			OccupancyPct:  pct,
			RouteLabel:    routeLabel(f.RouteID),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OccupancyPct != rows[j].OccupancyPct {
			return rows[i].OccupancyPct > rows[j].OccupancyPct
		}
		return rows[i].DepartureDate.Before(rows[j].DepartureDate)
	})

	if len(rows) > 20 {
		rows = rows[:20]
	}
	return rows, nil
}
