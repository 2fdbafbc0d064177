package usecase

import (
	"context"
	"sort"

	"flightops-service/internal/domain/entity"
)

// SetPartitions builds three named passenger sets and derives union,
// intersection and difference from them:
//
//	frequent: passengers with at least two bookings
//	vip:      the top 200 passengers by ticket count
//	canceled: passengers with a booking marked canceled
//
// The canceled set depends on the configured cancellation indicator; when
// the schema carries none, it stays empty and the report still succeeds.
func (s *ReportService) SetPartitions(ctx context.Context) (*entity.SetPartition, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list bookings", "error", err)
		return nil, err
	}

	tickets, err := s.ticketRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list tickets", "error", err)
		return nil, err
	}

	passengers, err := s.passengerRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list passengers", "error", err)
		return nil, err
	}

	nameByID := make(map[uint]string, len(passengers))
	for _, p := range passengers {
		nameByID[p.ID] = p.FullName
	}
	passengerByBooking := make(map[uint]uint, len(bookings))
	bookingCount := make(map[uint]int)
	for _, b := range bookings {
		passengerByBooking[b.ID] = b.PassengerID
		bookingCount[b.PassengerID]++
	}

	frequent := make(map[string]struct{})
	for passengerID, count := range bookingCount {
		if count < 2 {
			continue
		}
		if name := nameByID[passengerID]; name != "" {
			frequent[name] = struct{}{}
		}
	}

	ticketCount := make(map[uint]int)
	for _, t := range tickets {
		if passengerID, ok := passengerByBooking[t.BookingID]; ok {
			ticketCount[passengerID]++
		}
	}
	type volume struct {
		passengerID uint
		tickets     int
	}
	volumes := make([]volume, 0, len(ticketCount))
	for passengerID, count := range ticketCount {
		volumes = append(volumes, volume{passengerID, count})
	}
	sort.Slice(volumes, func(i, j int) bool {
		if volumes[i].tickets != volumes[j].tickets {
			return volumes[i].tickets > volumes[j].tickets
		}
		return volumes[i].passengerID < volumes[j].passengerID
	})
	if len(volumes) > vipTopN {
		volumes = volumes[:vipTopN]
	}
	vip := make(map[string]struct{}, len(volumes))
	for _, v := range volumes {
		if name := nameByID[v.passengerID]; name != "" {
			vip[name] = struct{}{}
		}
	}

	canceled := make(map[string]struct{})
	if s.cancellation != CancellationNone {
		for _, b := range bookings {
			isCanceled := false
			switch s.cancellation {
			case CancellationByStatus:
				isCanceled = b.Status == "Canceled"
			case CancellationByFlag:
				isCanceled = b.Canceled
			}
			if !isCanceled {
				continue
			}
			if name := nameByID[b.PassengerID]; name != "" {
				canceled[name] = struct{}{}
			}
		}
	}

	union := setUnion(vip, frequent)
	intersect := setIntersect(vip, frequent)

	unionSet := make(map[string]struct{}, len(union))
	for _, name := range union {
		unionSet[name] = struct{}{}
	}
	except := setExcept(unionSet, canceled)

	return &entity.SetPartition{
		Union:     union,
		Intersect: intersect,
		Except:    except,
	}, nil
}

func setUnion(a, b map[string]struct{}) []string {
	merged := make(map[string]struct{}, len(a)+len(b))
	for name := range a {
		merged[name] = struct{}{}
	}
	for name := range b {
		merged[name] = struct{}{}
	}
	return sortedNames(merged)
}

func setIntersect(a, b map[string]struct{}) []string {
	common := make(map[string]struct{})
	for name := range a {
		if _, ok := b[name]; ok {
			common[name] = struct{}{}
		}
	}
	return sortedNames(common)
}

func setExcept(a, b map[string]struct{}) []string {
	remaining := make(map[string]struct{})
	for name := range a {
		if _, ok := b[name]; !ok {
			remaining[name] = struct{}{}
		}
	}
	return sortedNames(remaining)
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
