package usecase

import (
	"context"
	"sort"
	"strconv"

	"flightops-service/internal/domain/entity"
)

// OverweightBaggage sums checked bag weight per ticket and reports the
// tickets whose total exceeds the per-ticket limit. A non-positive limit
// falls back to the default allowance.
func (s *ReportService) OverweightBaggage(ctx context.Context, perTicketLimitKg float64) ([]entity.OverweightBag, error) {
	if perTicketLimitKg <= 0 {
		perTicketLimitKg = defaultBaggageLimitKg
	}

	bags, err := s.baggageRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list baggage", "error", err)
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

	totalByTicket := make(map[uint]float64)
	for _, b := range bags {
		totalByTicket[b.TicketID] += b.WeightKg
	}

	refByBooking := make(map[uint]string, len(bookings))
	for _, b := range bookings {
		refByBooking[b.ID] = b.BookingRef
	}

	alerts := []entity.OverweightBag{}
	for _, t := range tickets {
		total, ok := totalByTicket[t.ID]
		if !ok || total <= perTicketLimitKg {
			continue
		}

		ref := refByBooking[t.BookingID]
		if ref == "" {
			ref = strconv.FormatUint(uint64(t.BookingID), 10)
		}

		alerts = append(alerts, entity.OverweightBag{
			TicketID:      t.ID,
			BookingRef:    ref,
			TotalWeightKg: round2(total),
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].TotalWeightKg != alerts[j].TotalWeightKg {
			return alerts[i].TotalWeightKg > alerts[j].TotalWeightKg
		}
		return alerts[i].TicketID < alerts[j].TicketID
	})

	return alerts, nil
}
