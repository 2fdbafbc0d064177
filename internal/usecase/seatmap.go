package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"flightops-service/internal/domain/repository"
)

const seatLetters = "ABCDEF"

// buildSeatMap lays out seat codes six across, "1A".."1F", "2A".. until
// capacity codes are produced. Capacity zero or less yields no seats.
func buildSeatMap(capacity int) []string {
	if capacity <= 0 {
		return nil
	}

	rows := (capacity + len(seatLetters) - 1) / len(seatLetters)
	seats := make([]string, 0, capacity)
	for row := 1; row <= rows && len(seats) < capacity; row++ {
		for i := 0; i < len(seatLetters) && len(seats) < capacity; i++ {
			seats = append(seats, strconv.Itoa(row)+string(seatLetters[i]))
		}
	}
	return seats
}

// seatSortKey splits a seat code into its row number and seat letter.
// Codes that cannot be parsed sort after every valid code.
func seatSortKey(code string) (int, rune) {
	if strings.TrimSpace(code) == "" {
		return int(^uint(0) >> 1), rune(0x10FFFF)
	}

	i := 0
	for i < len(code) && code[i] >= '0' && code[i] <= '9' {
		i++
	}

	row := 0
	if i > 0 {
		row, _ = strconv.Atoi(code[:i])
	}

	letter := 'Z'
	if i < len(code) {
		letter = rune(code[i])
		if letter >= 'a' && letter <= 'z' {
			letter -= 'a' - 'A'
		}
	}
	return row, letter
}

// AvailableSeats returns the unbooked seat codes for a flight, ordered by
// row then letter. An unknown flight or an aircraft without a seat map
// yields an empty list, not an error.
func (s *ReportService) AvailableSeats(ctx context.Context, flightID uint) ([]string, error) {
	flight, err := s.flightRepo.GetByID(ctx, flightID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	aircraft, err := s.aircraftRepo.GetByID(ctx, flight.AircraftID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	if aircraft.Capacity <= 0 {
		return []string{}, nil
	}

	tickets, err := s.ticketRepo.ListByFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		if t.SeatNumber == "" {
			continue
		}
		booked[strings.ToUpper(t.SeatNumber)] = struct{}{}
	}

	available := make([]string, 0, aircraft.Capacity)
	for _, seat := range buildSeatMap(aircraft.Capacity) {
		if _, taken := booked[strings.ToUpper(seat)]; taken {
			continue
		}
		available = append(available, seat)
	}

	sort.SliceStable(available, func(i, j int) bool {
		rowI, letterI := seatSortKey(available[i])
		rowJ, letterJ := seatSortKey(available[j])
		if rowI != rowJ {
			return rowI < rowJ
		}
		return letterI < letterJ
	})

	return available, nil
}
