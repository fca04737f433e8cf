package client

import (
	"context"

	"familyboard/internal/models"
)

// SeedingService covers the admin family-seeding endpoints. The backend
// rejects these for callers without the seeding capability, so stores
// additionally gate access through session.Authorize before calling.
type SeedingService struct {
	c *Client
}

const seedingBase = "/api/v1/admin/family-seeding"

// SeedMember describes one member to create during seeding.
type SeedMember struct {
	Name     string            `json:"name"`
	Role     models.FamilyRole `json:"role"`
	Password string            `json:"password"`
}

// SeedFamilyRequest creates a family with members and a default board.
type SeedFamilyRequest struct {
	Name    string       `json:"name"`
	Members []SeedMember `json:"members"`
}

// SeedFamilyResponse reports what was created.
type SeedFamilyResponse struct {
	Family  models.Family         `json:"family"`
	Members []models.FamilyMember `json:"members"`
	BoardID string                `json:"boardId"`
}

// SeedingStatus summarizes seeded data.
type SeedingStatus struct {
	Families int64 `json:"families"`
	Members  int64 `json:"members"`
	Tasks    int64 `json:"tasks"`
}

// Seed creates a family plus members and a default board.
func (s *SeedingService) Seed(ctx context.Context, req SeedFamilyRequest) (SeedFamilyResponse, error) {
	var resp SeedFamilyResponse
	if err := s.c.do(ctx, "POST", seedingBase+"/seed", req, &resp); err != nil {
		return SeedFamilyResponse{}, err
	}
	return resp, nil
}

// Reset deletes a seeded family and everything under it.
func (s *SeedingService) Reset(ctx context.Context, familyID string) error {
	return s.c.do(ctx, "DELETE", seedingBase+"/families/"+familyID, nil, nil)
}

// Status reports counts of seeded entities.
func (s *SeedingService) Status(ctx context.Context) (SeedingStatus, error) {
	var st SeedingStatus
	if err := s.c.do(ctx, "GET", seedingBase+"/status", nil, &st); err != nil {
		return SeedingStatus{}, err
	}
	return st, nil
}
