package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"flightops-service/internal/domain/entity"
)

// DailyManifest summarizes every flight departing on the given UTC date:
// airports, aircraft tail, passengers on board, assigned crew and total
// checked baggage weight.
func (s *ReportService) DailyManifest(ctx context.Context, date time.Time) ([]entity.DailyManifest, error) {
	dayStart := utcDate(date)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	flights, err := s.flightRepo.ListInWindow(ctx, &dayStart, &dayEnd)
	if err != nil {
		s.logger.Error("Failed to list flights", "error", err)
		return nil, err
	}
	if len(flights) == 0 {
		return []entity.DailyManifest{}, nil
	}

	routes, err := s.routeRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list routes", "error", err)
		return nil, err
	}

	airports, err := s.airportRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list airports", "error", err)
		return nil, err
	}

	aircraft, err := s.aircraftRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list aircraft", "error", err)
		return nil, err
	}

	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list tickets", "error", err)
		return nil, err
	}

	bags, err := s.baggageRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list baggage", "error", err)
		return nil, err
	}

	assignments, err := s.crewRepo.ListAssignments(ctx)
	if err != nil {
		s.logger.Error("Failed to list crew assignments", "error", err)
		return nil, err
	}

	members, err := s.crewRepo.ListMembers(ctx)
	if err != nil {
		s.logger.Error("Failed to list crew members", "error", err)
		return nil, err
	}

	routeByID := make(map[uint]entity.Route, len(routes))
	for _, r := range routes {
		routeByID[r.ID] = r
	}
	iataByAirport := make(map[uint]string, len(airports))
	for _, a := range airports {
		iataByAirport[a.ID] = a.IATA
	}
	tailByAircraft := make(map[uint]string, len(aircraft))
	for _, a := range aircraft {
		tailByAircraft[a.ID] = a.TailNumber
	}
	memberByID := make(map[uint]entity.CrewMember, len(members))
	for _, m := range members {
		memberByID[m.ID] = m
	}

	ticketsByFlight := make(map[uint][]entity.Ticket)
	for _, t := range tickets {
		ticketsByFlight[t.FlightID] = append(ticketsByFlight[t.FlightID], t)
	}
	weightByTicket := make(map[uint]float64)
	for _, b := range bags {
		weightByTicket[b.TicketID] += b.WeightKg
	}
	crewByFlight := make(map[uint][]entity.CrewAssignment)
	for _, a := range assignments {
		crewByFlight[a.FlightID] = append(crewByFlight[a.FlightID], a)
	}

	manifests := make([]entity.DailyManifest, 0, len(flights))
	for _, f := range flights {
		origin, destination := "", ""
		if route, ok := routeByID[f.RouteID]; ok {
			origin = iataByAirport[route.OriginAirportID]
			destination = iataByAirport[route.DestinationAirportID]
		}

		crew := []string{}
		for _, a := range crewByFlight[f.ID] {
			member, ok := memberByID[a.CrewID]
			if !ok {
				continue
			}
			crew = append(crew, fmt.Sprintf("%s (%s)", member.FullName, a.RoleOnFlight))
		}
		sort.Strings(crew)

		totalWeight := 0.0
		for _, t := range ticketsByFlight[f.ID] {
			totalWeight += weightByTicket[t.ID]
		}

		manifests = append(manifests, entity.DailyManifest{
			FlightNumber:   f.FlightNumber,
			DepartureUTC:   f.DepartureUTC,
			ArrivalUTC:     f.ArrivalUTC,
			Origin:         origin,
			Destination:    destination,
			AircraftTail:   tailByAircraft[f.AircraftID],
			PassengerCount: len(ticketsByFlight[f.ID]),
			Crew:           crew,
			TotalBaggageKg: round2(totalWeight),
		})
	}

	sort.Slice(manifests, func(i, j int) bool {
		if !manifests[i].DepartureUTC.Equal(manifests[j].DepartureUTC) {
			return manifests[i].DepartureUTC.Before(manifests[j].DepartureUTC)
		}
		return manifests[i].FlightNumber < manifests[j].FlightNumber
	})

	return manifests, nil
}

// FlightsPerDay counts flights by departure date inside the window,
// ascending by date.
func (s *ReportService) FlightsPerDay(ctx context.Context, fromUTC, toUTC time.Time) ([]entity.FlightsPerDay, error) {
	flights, err := s.flightRepo.ListInWindow(ctx, &fromUTC, &toUTC)
	if err != nil {
		s.logger.Error("Failed to list flights", "error", err)
		return nil, err
	}

	countByDate := make(map[time.Time]int)
	for _, f := range flights {
		countByDate[utcDate(f.DepartureUTC)]++
	}

	dates := make([]time.Time, 0, len(countByDate))
	for date := range countByDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	result := make([]entity.FlightsPerDay, 0, len(dates))
	for _, date := range dates {
		result = append(result, entity.FlightsPerDay{Date: date, FlightCount: countByDate[date]})
	}
	return result, nil
}

// PageFlights returns one page of the flight listing ordered by departure
// time, labeled with origin and destination IATA codes. Page numbers start
// at one; invalid paging values are clamped.
func (s *ReportService) PageFlights(ctx context.Context, page, pageSize int) ([]entity.FlightPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
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

	airports, err := s.airportRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list airports", "error", err)
		return nil, err
	}

	routeByID := make(map[uint]entity.Route, len(routes))
	for _, r := range routes {
		routeByID[r.ID] = r
	}
	iataByAirport := make(map[uint]string, len(airports))
	for _, a := range airports {
		iataByAirport[a.ID] = a.IATA
	}

	sort.Slice(flights, func(i, j int) bool {
		if !flights[i].DepartureUTC.Equal(flights[j].DepartureUTC) {
			return flights[i].DepartureUTC.Before(flights[j].DepartureUTC)
		}
		return flights[i].ID < flights[j].ID
	})

	skip := (page - 1) * pageSize
	if skip >= len(flights) {
		return []entity.FlightPage{}, nil
	}
	end := skip + pageSize
	if end > len(flights) {
		end = len(flights)
	}

	rows := make([]entity.FlightPage, 0, end-skip)
	for _, f := range flights[skip:end] {
		origin, destination := "", ""
		if route, ok := routeByID[f.RouteID]; ok {
			origin = iataByAirport[route.OriginAirportID]
			destination = iataByAirport[route.DestinationAirportID]
		}
		rows = append(rows, entity.FlightPage{
			FlightNumber: f.FlightNumber,
			DepartureUTC: f.DepartureUTC,
			Origin:       origin,
			Destination:  destination,
		})
	}
	return rows, nil
}
