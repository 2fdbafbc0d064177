package usecase

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastRevenueDeterministic(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	s := newTestService(&fakeData{}, CancellationNone, now)

	first := s.ForecastRevenue(14)
	second := s.ForecastRevenue(14)
	assert.Equal(t, first, second)
}

func TestForecastRevenueStartsTomorrow(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	s := newTestService(&fakeData{}, CancellationNone, now)

	points := s.ForecastRevenue(5)
	require.Len(t, points, 5)

	assert.Equal(t, time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC), points[0].Date)
	for i := 1; i < len(points); i++ {
		assert.Equal(t, points[i-1].Date.AddDate(0, 0, 1), points[i].Date)
	}
}

func TestForecastRevenueDayZeroFormula(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	s := newTestService(&fakeData{}, CancellationNone, now)

	points := s.ForecastRevenue(1)
	require.Len(t, points, 1)

	// Day zero: no growth, sin(0) seasonality, only the date noise moves it.
	want := round2(forecastBaseRevenue * (1.0 + dateNoise(2026, 8, 21)))
	assert.Equal(t, want, points[0].Revenue)
}

func TestForecastRevenueNeverNegative(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	s := newTestService(&fakeData{}, CancellationNone, now)

	for _, p := range s.ForecastRevenue(365) {
		assert.GreaterOrEqual(t, p.Revenue, 0.0)
	}
}

func TestForecastRevenueClampsDays(t *testing.T) {
	now := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	s := newTestService(&fakeData{}, CancellationNone, now)

	assert.Len(t, s.ForecastRevenue(0), 1)
	assert.Len(t, s.ForecastRevenue(-10), 1)
}

func TestDateNoiseBoundsAndStability(t *testing.T) {
	seen := dateNoise(2026, 1, 15)
	assert.Equal(t, seen, dateNoise(2026, 1, 15))

	for day := 1; day <= 28; day++ {
		noise := dateNoise(2026, 3, day)
		assert.LessOrEqual(t, math.Abs(noise), 0.02)
	}
}
