package chart

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsCoverFiveDaysEndingYesterday(t *testing.T) {
	now := time.Date(2025, time.March, 3, 0, 30, 0, 0, time.UTC)
	points := Points(now, rand.New(rand.NewPCG(1, 2)))

	require.Len(t, points, Days)

	wantLabels := []string{"Feb 26", "Feb 27", "Feb 28", "Mar 01", "Mar 02"}
	for i, pt := range points {
		assert.Equal(t, wantLabels[i], pt.Label)
		if i > 0 {
			assert.True(t, pt.Date.After(points[i-1].Date), "dates must strictly increase")
			assert.Equal(t, 24*time.Hour, pt.Date.Sub(points[i-1].Date))
		}
	}

	yesterday := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	assert.True(t, points[Days-1].Date.Equal(yesterday))
}

func TestPointsUseUTCCalendarDay(t *testing.T) {
	// 23:30 on Jan 10 in UTC-5 is already Jan 11 in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, time.January, 10, 23, 30, 0, 0, loc)

	points := Points(now, nil)
	assert.Equal(t, "Jan 10", points[Days-1].Label)
	assert.Equal(t, "Jan 06", points[0].Label)
}

func TestPointsTemperatureRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	now := time.Now()

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		for _, pt := range Points(now, rng) {
			assert.GreaterOrEqual(t, pt.Temperature, MinTemperature)
			assert.LessOrEqual(t, pt.Temperature, MaxTemperature)
			seen[pt.Temperature] = true
		}
	}
	// 1000 draws over 13 values should hit both ends of the range.
	assert.True(t, seen[MinTemperature])
	assert.True(t, seen[MaxTemperature])
}

func TestRender(t *testing.T) {
	img, err := Render("Lisbon", Points(time.Now(), nil))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestRenderWithoutPoints(t *testing.T) {
	_, err := Render("Lisbon", nil)
	assert.Error(t, err)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "5-Day Temp Trend - Lisbon", Title("Lisbon"))
}
