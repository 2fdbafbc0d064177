package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"flightops-service/internal/domain/entity"
)

// MaintenanceAlerts flags aircraft that are due for maintenance by the
// cutoff date. An aircraft is due when its estimated cumulative flight
// hours (flown km at the assumed cruise speed) reach the hours threshold,
// or when its most recent maintenance is older than the allowed interval.
// An aircraft that was never maintained is always due.
func (s *ReportService) MaintenanceAlerts(ctx context.Context, until time.Time) ([]entity.MaintenanceAlert, error) {
	flights, err := s.flightRepo.ListInWindow(ctx, nil, &until)
	if err != nil {
		s.logger.Error("Failed to list flights", "error", err)
		return nil, err
	}

	routes, err := s.routeRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list routes", "error", err)
		return nil, err
	}

	aircraft, err := s.aircraftRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list aircraft", "error", err)
		return nil, err
	}

	records, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list maintenance records", "error", err)
		return nil, err
	}

	distanceByRoute := make(map[uint]int, len(routes))
	for _, r := range routes {
		distanceByRoute[r.ID] = r.DistanceKm
	}

	kmByAircraft := make(map[uint]int)
	for _, f := range flights {
		kmByAircraft[f.AircraftID] += distanceByRoute[f.RouteID]
	}
	if len(kmByAircraft) == 0 {
		return []entity.MaintenanceAlert{}, nil
	}

	tailByID := make(map[uint]string, len(aircraft))
	for _, a := range aircraft {
		tailByID[a.ID] = a.TailNumber
	}

	lastMxByAircraft := make(map[uint]time.Time)
	for _, m := range records {
		if m.Date.After(until) {
			continue
		}
		if last, ok := lastMxByAircraft[m.AircraftID]; !ok || m.Date.After(last) {
			lastMxByAircraft[m.AircraftID] = m.Date
		}
	}

	alerts := []entity.MaintenanceAlert{}
	for aircraftID, totalKm := range kmByAircraft {
		hours := float64(totalKm) / avgCruiseSpeedKph
		byHours := hours >= maintenanceHoursMax

		last, maintained := lastMxByAircraft[aircraftID]
		byDate := true // never maintained means due
		if maintained {
			byDate = !last.AddDate(0, 0, maintenanceMaxDays).After(until)
		}

		if !byHours && !byDate {
			continue
		}

		reason := ""
		switch {
		case byHours && byDate:
			reason = "Hours & LastMaintenance"
		case byHours:
			reason = "Hours"
		case byDate:
			reason = "LastMaintenance"
		}

		due := until
		if maintained {
			due = last.AddDate(0, 0, maintenanceMaxDays)
		}

		tail := tailByID[aircraftID]
		if tail == "" {
			tail = fmt.Sprintf("Aircraft#%d", aircraftID)
		}

		alerts = append(alerts, entity.MaintenanceAlert{
			TailNumber:      tail,
			DueDate:         due,
			CumulativeHours: round2(hours),
			Reason:          reason,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if !alerts[i].DueDate.Equal(alerts[j].DueDate) {
			return alerts[i].DueDate.Before(alerts[j].DueDate)
		}
		if alerts[i].CumulativeHours != alerts[j].CumulativeHours {
			return alerts[i].CumulativeHours > alerts[j].CumulativeHours
		}
		return alerts[i].TailNumber < alerts[j].TailNumber
	})

	return alerts, nil
}
