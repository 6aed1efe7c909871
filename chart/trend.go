// Package chart builds the simulated five-day temperature trend shown under
// the current weather. The values are random placeholders, not history.
package chart

import (
	"math/rand/v2"
	"time"

	"skycast/models"
)

const (
	// Days is the number of points in a trend.
	Days = 5

	MinTemperature = 18
	MaxTemperature = 30

	labelLayout = "Jan 02"
)

// Points generates one point per UTC calendar day from five days ago up to
// yesterday, oldest first. Temperatures are uniform in [MinTemperature, MaxTemperature].
// A nil rng uses the package-level generator.
func Points(now time.Time, rng *rand.Rand) []models.TrendPoint {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	points := make([]models.TrendPoint, 0, Days)
	for i := Days; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)
		points = append(points, models.TrendPoint{
			Date:        day,
			Label:       day.Format(labelLayout),
			Temperature: randomTemperature(rng),
		})
	}
	return points
}

func randomTemperature(rng *rand.Rand) int {
	span := MaxTemperature - MinTemperature + 1
	if rng == nil {
		return MinTemperature + rand.IntN(span)
	}
	return MinTemperature + rng.IntN(span)
}
