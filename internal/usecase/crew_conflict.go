package usecase

import (
	"context"
	"fmt"
	"sort"

	"flightops-service/internal/domain/entity"
)

// CrewConflicts finds every pair of time-overlapping flights assigned to
// the same crew member. Each unordered pair is examined once (lower flight
// id first) and flights that merely touch at a boundary do not conflict.
func (s *ReportService) CrewConflicts(ctx context.Context) ([]entity.CrewConflict, error) {
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

	flights, err := s.flightRepo.ListInWindow(ctx, nil, nil)
	if err != nil {
		s.logger.Error("Failed to list flights", "error", err)
		return nil, err
	}

	flightByID := make(map[uint]entity.Flight, len(flights))
	for _, f := range flights {
		flightByID[f.ID] = f
	}

	nameByID := make(map[uint]string, len(members))
	for _, m := range members {
		nameByID[m.ID] = m.FullName
	}

	byCrew := make(map[uint][]entity.CrewAssignment)
	for _, a := range assignments {
		byCrew[a.CrewID] = append(byCrew[a.CrewID], a)
	}

	conflicts := []entity.CrewConflict{}
	for crewID, crewAssignments := range byCrew {
		if len(crewAssignments) < 2 {
			continue
		}

		// Lower flight id first so each unordered pair shows up exactly once.
		sort.Slice(crewAssignments, func(i, j int) bool {
			return crewAssignments[i].FlightID < crewAssignments[j].FlightID
		})

		for i := 0; i < len(crewAssignments); i++ {
			a, okA := flightByID[crewAssignments[i].FlightID]
			if !okA {
				continue
			}
			for j := i + 1; j < len(crewAssignments); j++ {
				b, okB := flightByID[crewAssignments[j].FlightID]
				if !okB {
					continue
				}
				if !a.DepartureUTC.Before(b.ArrivalUTC) || !b.DepartureUTC.Before(a.ArrivalUTC) {
					continue
				}

				name, ok := nameByID[crewID]
				if !ok || name == "" {
					name = fmt.Sprintf("Crew#%d", crewID)
				}

				conflicts = append(conflicts, entity.CrewConflict{
					CrewID:   crewID,
					CrewName: name,
					FlightA:  a.FlightNumber,
					FlightB:  b.FlightNumber,
					Detail: fmt.Sprintf("[%s-%s] overlaps [%s-%s]",
						a.DepartureUTC.Format("2006-01-02 15:04"),
						a.ArrivalUTC.Format("15:04"),
						b.DepartureUTC.Format("2006-01-02 15:04"),
						b.ArrivalUTC.Format("15:04")),
				})
			}
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].CrewID != conflicts[j].CrewID {
			return conflicts[i].CrewID < conflicts[j].CrewID
		}
		if conflicts[i].FlightA != conflicts[j].FlightA {
			return conflicts[i].FlightA < conflicts[j].FlightA
		}
		return conflicts[i].FlightB < conflicts[j].FlightB
	})

	return conflicts, nil
}
