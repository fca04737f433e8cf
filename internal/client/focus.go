package client

import (
	"context"

	"familyboard/internal/models"
)

// FocusService covers focus-timer analytics.
type FocusService struct {
	c *Client
}

// Stats fetches aggregated focus analytics for one user.
func (s *FocusService) Stats(ctx context.Context, userID string) (models.FocusStats, error) {
	var stats models.FocusStats
	if err := s.c.do(ctx, "GET", "/api/focus/stats/"+userID, nil, &stats); err != nil {
		return models.FocusStats{}, err
	}
	return stats, nil
}
