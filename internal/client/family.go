package client

import (
	"context"

	"familyboard/internal/models"
)

// FamilyService covers family and member lookups.
type FamilyService struct {
	c *Client
}

// MemberList is the members response shape.
type MemberList struct {
	Members []models.FamilyMember `json:"members"`
	Count   int                   `json:"count"`
}

// Get fetches one family.
func (s *FamilyService) Get(ctx context.Context, familyID string) (models.Family, error) {
	var fam models.Family
	if err := s.c.do(ctx, "GET", "/api/families/"+familyID, nil, &fam); err != nil {
		return models.Family{}, err
	}
	return fam, nil
}

// Members lists a family's members.
func (s *FamilyService) Members(ctx context.Context, familyID string) ([]models.FamilyMember, error) {
	var list MemberList
	if err := s.c.do(ctx, "GET", "/api/families/"+familyID+"/members", nil, &list); err != nil {
		return nil, err
	}
	return list.Members, nil
}
