package usecase

import (
	"math"
	"math/rand"

	"flightops-service/internal/domain/entity"
)

const (
	forecastBaseRevenue = 12000.0
	forecastDailyGrowth = 0.01 // linear, not compounding
)

// ForecastRevenue projects daily revenue for the N days after today:
// linear growth plus a weekly seasonal cycle plus date-keyed noise. The
// projection is fully deterministic: the same dates always produce the
// same numbers.
func (s *ReportService) ForecastRevenue(days int) []entity.ForecastPoint {
	if days < 1 {
		days = 1
	}

	start := utcDate(s.now()).AddDate(0, 0, 1)
	points := make([]entity.ForecastPoint, 0, days)

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		// weekly seasonality in [-10%, +10%]
		seasonality := math.Sin(float64(i%7)/7.0*2.0*math.Pi) * 0.10

		multiplier := 1.0 + forecastDailyGrowth*float64(i) + seasonality +
			dateNoise(date.Year(), int(date.Month()), date.Day())

		revenue := round2(forecastBaseRevenue * multiplier)
		if revenue < 0 {
			revenue = forecastBaseRevenue * 0.5
		}

		points = append(points, entity.ForecastPoint{Date: date, Revenue: revenue})
	}

	return points
}

// dateNoise returns a pseudo-random offset in [-2%, +2%] derived purely
// from the calendar date. No generator state is shared between calls.
func dateNoise(year, month, day int) float64 {
	seed := int64(year)*10000 + int64(month)*100 + int64(day)
	rng := rand.New(rand.NewSource(seed))
	return (rng.Float64() - 0.5) * 0.04
}
