package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"flightops-service/internal/domain/entity"
)

// OnTimePerformance scores each route by how many of its flights stayed
// within thresholdMinutes of the route's own average scheduled duration.
func (s *ReportService) OnTimePerformance(ctx context.Context, fromUTC, toUTC time.Time, thresholdMinutes int) ([]entity.OnTimeStat, error) {
	if thresholdMinutes < 0 {
		thresholdMinutes = 0
	}

	flights, err := s.flightRepo.ListInWindow(ctx, &fromUTC, &toUTC)
	if err != nil {
		s.logger.Error("Failed to list flights", "error", err)
		return nil, err
	}

	durations := make(map[uint][]int)
	for _, f := range flights {
		minutes := int(f.ArrivalUTC.Sub(f.DepartureUTC) / time.Minute)
		durations[f.RouteID] = append(durations[f.RouteID], minutes)
	}

	stats := make([]entity.OnTimeStat, 0, len(durations))
	for routeID, routeDurations := range durations {
		total := len(routeDurations)
		sum := 0
		for _, d := range routeDurations {
			sum += d
		}
		avg := float64(sum) / float64(total)

		onTime := 0
		for _, d := range routeDurations {
			if math.Abs(float64(d)-avg) <= float64(thresholdMinutes) {
				onTime++
			}
		}

		stats = append(stats, entity.OnTimeStat{
			RouteLabel:  routeLabel(routeID),
			OnTimeCount: onTime,
			TotalCount:  total,
			OnTimePct:   float64(onTime) / float64(total),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].OnTimePct != stats[j].OnTimePct {
			return stats[i].OnTimePct > stats[j].OnTimePct
		}
		if stats[i].TotalCount != stats[j].TotalCount {
			return stats[i].TotalCount > stats[j].TotalCount
		}
		return stats[i].RouteLabel < stats[j].RouteLabel
	})

	return stats, nil
}
