package store

import (
	"context"
	"fmt"
	"time"

	"familyboard/internal/analytics"
	"familyboard/internal/client"
	"familyboard/internal/models"

	"go.uber.org/zap"
)

// trendDays is how many days of trend the dashboard charts show.
const trendDays = 14

// FocusStore serves focus-timer analytics for dashboards.
type FocusStore struct {
	api *client.Client
	log *zap.Logger

	// now is stubbed in tests.
	now func() time.Time
}

// NewFocusStore builds a store. log may be nil.
func NewFocusStore(api *client.Client, log *zap.Logger) *FocusStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FocusStore{api: api, log: log, now: time.Now}
}

// Stats fetches a user's focus analytics. A 404 is an empty state. When
// the backend has no trend series yet, a deterministic generated one
// keyed by the user id fills the chart.
func (s *FocusStore) Stats(ctx context.Context, userID string) (models.FocusStats, error) {
	stats, err := s.api.Focus().Stats(ctx, userID)
	if err != nil {
		if client.IsNotFound(err) {
			stats = models.FocusStats{}
		} else {
			return models.FocusStats{}, fmt.Errorf("fetch focus stats: %w", err)
		}
	}
	analytics.FillTrend(&stats, userID, s.now(), trendDays)
	return stats, nil
}
