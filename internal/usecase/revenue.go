package usecase

import (
	"context"
	"sort"
	"time"

	"flightops-service/internal/domain/entity"
)

// TopRoutesByRevenue groups flights and ticket sales by route inside the
// window and ranks routes by total revenue. Routes that flew but sold no
// tickets still appear with zero revenue.
func (s *ReportService) TopRoutesByRevenue(ctx context.Context, fromUTC, toUTC time.Time, topN int) ([]entity.RouteRevenue, error) {
	if topN < 1 {
		topN = 1
	}

	flights, err := s.flightRepo.ListInWindow(ctx, &fromUTC, &toUTC)
	if err != nil {
		s.logger.Error("Failed to list flights", "error", err)
		return nil, err
	}

	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list tickets", "error", err)
		return nil, err
	}

	flightCount := make(map[uint]int)
	routeByFlight := make(map[uint]uint, len(flights))
	for _, f := range flights {
		flightCount[f.RouteID]++
		routeByFlight[f.ID] = f.RouteID
	}

	type ticketAgg struct {
		seatsSold int
		revenue   float64
	}
	sales := make(map[uint]*ticketAgg)
	for _, t := range tickets {
		routeID, ok := routeByFlight[t.FlightID]
		if !ok {
			// Ticket's flight departs outside the window.
			continue
		}
		agg := sales[routeID]
		if agg == nil {
			agg = &ticketAgg{}
			sales[routeID] = agg
		}
		agg.seatsSold++
		agg.revenue += t.Fare
	}

	rows := make([]entity.RouteRevenue, 0, len(flightCount))
	for routeID, count := range flightCount {
		row := entity.RouteRevenue{
			RouteLabel:  routeLabel(routeID),
			FlightCount: count,
		}
		if agg, ok := sales[routeID]; ok && agg.seatsSold > 0 {
			row.SeatsSold = agg.seatsSold
			row.TotalRevenue = round2(agg.revenue)
			row.AvgFare = round2(agg.revenue / float64(agg.seatsSold))
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalRevenue != rows[j].TotalRevenue {
			return rows[i].TotalRevenue > rows[j].TotalRevenue
		}
		if rows[i].FlightCount != rows[j].FlightCount {
			return rows[i].FlightCount > rows[j].FlightCount
		}
		return rows[i].RouteLabel < rows[j].RouteLabel
	})

	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows, nil
}

// RunningDailyRevenue sums ticket fares per departure date over a trailing
// N-day window and accumulates a running total in chronological order.
func (s *ReportService) RunningDailyRevenue(ctx context.Context, days int) ([]entity.RunningRevenue, error) {
	if days < 1 {
		days = 1
	}

	to := utcDate(s.now())
	from := to.AddDate(0, 0, -(days - 1))
	// Window end covers the whole final day.
	windowEnd := to.AddDate(0, 0, 1).Add(-time.Nanosecond)

	flights, err := s.flightRepo.ListInWindow(ctx, &from, &windowEnd)
	if err != nil {
		s.logger.Error("Failed to list flights", "error", err)
		return nil, err
	}

	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list tickets", "error", err)
		return nil, err
	}

	dateByFlight := make(map[uint]time.Time, len(flights))
	for _, f := range flights {
		dateByFlight[f.ID] = utcDate(f.DepartureUTC)
	}

	daily := make(map[time.Time]float64)
	for _, t := range tickets {
		date, ok := dateByFlight[t.FlightID]
		if !ok {
			continue
		}
		daily[date] += t.Fare
	}

	dates := make([]time.Time, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	result := make([]entity.RunningRevenue, 0, len(dates))
	running := 0.0
	for _, date := range dates {
		revenue := round2(daily[date])
		running = round2(running + revenue)
		result = append(result, entity.RunningRevenue{
			Date:         date,
			Revenue:      revenue,
			RunningTotal: running,
		})
	}
	return result, nil
}
