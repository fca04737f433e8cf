package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"familyboard/internal/cache"
	"familyboard/internal/client"
	"familyboard/internal/models"
	"familyboard/internal/session"

	"go.uber.org/zap"
)

// ErrForbidden is returned when the session lacks the capability for an
// admin operation; the backend would reject it anyway, but failing fast
// keeps the error local and typed.
var ErrForbidden = errors.New("forbidden")

// familyData is the cached unit: family plus members fetched together.
type familyData struct {
	Family  models.Family
	Members []models.FamilyMember
}

// FamilyStore serves family data through a TTL cache and gates admin
// seeding operations by capability. The session is injected at
// construction; no ambient storage is consulted.
type FamilyStore struct {
	api   *client.Client
	sess  session.Session
	log   *zap.Logger
	cache *cache.MemoryStore[string, familyData]
	ttl   time.Duration
}

// NewFamilyStore builds a store. ttl <= 0 disables expiry.
func NewFamilyStore(api *client.Client, sess session.Session, ttl time.Duration, log *zap.Logger) *FamilyStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &FamilyStore{
		api:   api,
		sess:  sess,
		log:   log,
		cache: cache.NewMemoryStore[string, familyData](),
		ttl:   ttl,
	}
}

// CanManageFamily reports whether the session may edit family settings.
func (s *FamilyStore) CanManageFamily() bool {
	return session.Authorize(s.sess, session.CapManageFamily)
}

// CanSeedFamilies reports whether the session may run admin seeding.
func (s *FamilyStore) CanSeedFamilies() bool {
	return session.Authorize(s.sess, session.CapSeedFamilies)
}

// Family returns the session's family and members, from cache when warm.
// A missing family is a soft empty state, not an error. Member fetch
// failures degrade to a family without members; the list is not critical.
func (s *FamilyStore) Family(ctx context.Context) (models.Family, []models.FamilyMember, error) {
	if data, ok := s.cache.Get(s.sess.FamilyID); ok {
		return data.Family, data.Members, nil
	}

	fam, err := s.api.Family().Get(ctx, s.sess.FamilyID)
	if err != nil {
		if client.IsNotFound(err) {
			return models.Family{}, nil, nil
		}
		return models.Family{}, nil, fmt.Errorf("fetch family: %w", err)
	}

	members, err := s.api.Family().Members(ctx, s.sess.FamilyID)
	if err != nil {
		s.log.Warn("member list fetch failed", zap.Error(err))
		members = nil
	}

	s.cache.Set(s.sess.FamilyID, familyData{Family: fam, Members: members}, s.ttl)
	return fam, members, nil
}

// Invalidate drops the cached family so the next read refetches.
func (s *FamilyStore) Invalidate() {
	s.cache.Delete(s.sess.FamilyID)
}

// Seed creates a family with members via the admin endpoints.
func (s *FamilyStore) Seed(ctx context.Context, req client.SeedFamilyRequest) (client.SeedFamilyResponse, error) {
	if !s.CanSeedFamilies() {
		return client.SeedFamilyResponse{}, fmt.Errorf("seed family: %w", ErrForbidden)
	}
	resp, err := s.api.Seeding().Seed(ctx, req)
	if err != nil {
		return client.SeedFamilyResponse{}, fmt.Errorf("seed family: %w", err)
	}
	return resp, nil
}

// Reset deletes a seeded family and invalidates the cache.
func (s *FamilyStore) Reset(ctx context.Context, familyID string) error {
	if !s.CanSeedFamilies() {
		return fmt.Errorf("reset family: %w", ErrForbidden)
	}
	if err := s.api.Seeding().Reset(ctx, familyID); err != nil {
		return fmt.Errorf("reset family: %w", err)
	}
	s.cache.Delete(familyID)
	return nil
}
