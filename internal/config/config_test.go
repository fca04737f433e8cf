package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "http://localhost:8008", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.PollInterval)
	require.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FAMILYBOARD_API_URL", "http://api.test")
	t.Setenv("FAMILYBOARD_POLL_INTERVAL", "5s")
	t.Setenv("FAMILYBOARD_HTTP_TIMEOUT", "3")

	cfg := Load()
	require.Equal(t, "http://api.test", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.PollInterval)
	require.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}
