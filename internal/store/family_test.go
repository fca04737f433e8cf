package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"familyboard/internal/client"
	"familyboard/internal/models"
	"familyboard/internal/session"

	"github.com/stretchr/testify/require"
)

func newFamilyBackend(t *testing.T, familyCalls *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/families/{id}", func(w http.ResponseWriter, r *http.Request) {
		*familyCalls++
		if r.PathValue("id") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(models.Family{ID: r.PathValue("id"), Name: "Smith"})
	})
	mux.HandleFunc("GET /api/families/{id}/members", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(client.MemberList{Members: []models.FamilyMember{
			{ID: "m1", FamilyID: r.PathValue("id"), Name: "Alice", Role: models.RoleParent},
		}, Count: 1})
	})
	mux.HandleFunc("POST /api/v1/admin/family-seeding/seed", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(client.SeedFamilyResponse{
			Family: models.Family{ID: "f-new", Name: "Seeded"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFamilyStore_CachesFamily(t *testing.T) {
	var calls int
	srv := newFamilyBackend(t, &calls)
	api := client.New(client.Config{BaseURL: srv.URL})
	s := NewFamilyStore(api, session.Session{FamilyID: "f1", Role: models.RoleParent}, time.Minute, nil)

	fam, members, err := s.Family(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Smith", fam.Name)
	require.Len(t, members, 1)

	_, _, err = s.Family(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, calls, "second read must come from cache")

	s.Invalidate()
	_, _, err = s.Family(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestFamilyStore_MissingFamilyIsSoftEmpty(t *testing.T) {
	var calls int
	srv := newFamilyBackend(t, &calls)
	api := client.New(client.Config{BaseURL: srv.URL})
	s := NewFamilyStore(api, session.Session{FamilyID: "missing", Role: models.RoleParent}, time.Minute, nil)

	fam, members, err := s.Family(context.Background())
	require.NoError(t, err)
	require.Empty(t, fam.ID)
	require.Nil(t, members)
}

func TestFamilyStore_SeedRequiresCapability(t *testing.T) {
	var calls int
	srv := newFamilyBackend(t, &calls)
	api := client.New(client.Config{BaseURL: srv.URL})

	child := NewFamilyStore(api, session.Session{FamilyID: "f1", Role: models.RoleChild}, 0, nil)
	_, err := child.Seed(context.Background(), client.SeedFamilyRequest{Name: "Smith"})
	require.ErrorIs(t, err, ErrForbidden)

	admin := NewFamilyStore(api, session.Session{FamilyID: "f1", Role: models.RoleAdmin}, 0, nil)
	resp, err := admin.Seed(context.Background(), client.SeedFamilyRequest{Name: "Smith"})
	require.NoError(t, err)
	require.Equal(t, "f-new", resp.Family.ID)
}

func TestFamilyStore_Capabilities(t *testing.T) {
	s := NewFamilyStore(nil, session.Session{Role: models.RoleParent}, 0, nil)
	require.True(t, s.CanManageFamily())
	require.False(t, s.CanSeedFamilies())
}
