package analytics

import (
	"testing"
	"time"

	"familyboard/internal/models"

	"github.com/stretchr/testify/require"
)

func TestSeries_Deterministic(t *testing.T) {
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	a := NewTrendGenerator("user-1").Series(end, 7, 0, 60)
	b := NewTrendGenerator("user-1").Series(end, 7, 0, 60)
	require.Equal(t, a, b)

	c := NewTrendGenerator("user-2").Series(end, 7, 0, 60)
	require.NotEqual(t, a, c)
}

func TestSeries_DatesAndBounds(t *testing.T) {
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	points := NewTrendGenerator("k").Series(end, 3, 5, 10)

	require.Len(t, points, 3)
	require.Equal(t, "2026-03-08", points[0].Date)
	require.Equal(t, "2026-03-10", points[2].Date)
	for _, p := range points {
		require.GreaterOrEqual(t, p.Value, 5)
		require.LessOrEqual(t, p.Value, 10)
	}
}

func TestSeries_DegenerateInputs(t *testing.T) {
	g := NewTrendGenerator("k")
	require.Nil(t, g.Series(time.Now(), 0, 0, 10))
	require.Nil(t, g.Series(time.Now(), 5, 10, 0))
}

func TestFillTrend_OnlyWhenEmpty(t *testing.T) {
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	stats := &models.FocusStats{}
	FillTrend(stats, "user-1", end, 7)
	require.Len(t, stats.Trend, 7)

	existing := []models.TrendPoint{{Date: "2026-03-10", Value: 42}}
	stats = &models.FocusStats{Trend: existing}
	FillTrend(stats, "user-1", end, 7)
	require.Equal(t, existing, stats.Trend)
}
