package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration_Defaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_ORG", "")

	_, err := LoadConfiguration()
	require.Error(t, err)

	t.Setenv("GITHUB_ORG", "canonical")
	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, "canonical", cfg.Org)
	assert.Equal(t, ":8081", cfg.ServerPort)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10*time.Minute, cfg.CacheCleanupInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.MinRequestSpacing)
	assert.Equal(t, 5, cfg.LowWaterMark)
	assert.Equal(t, time.Minute, cfg.RateLimitPoll)
	assert.Contains(t, cfg.ExploreRepos, "snapd")
	assert.False(t, cfg.HasToken())
}

func TestLoadConfiguration_PlaceholderToken(t *testing.T) {
	t.Setenv("GITHUB_ORG", "canonical")
	t.Setenv("GITHUB_TOKEN", PlaceholderToken)

	cfg, err := LoadConfiguration()
	require.NoError(t, err)
	assert.Empty(t, cfg.GitHubToken)
	assert.False(t, cfg.HasToken())

	t.Setenv("GITHUB_TOKEN", " ghp_real ")
	cfg, err = LoadConfiguration()
	require.NoError(t, err)
	assert.Equal(t, "ghp_real", cfg.GitHubToken)
	assert.True(t, cfg.HasToken())
}

func TestLoadConfiguration_InvalidDuration(t *testing.T) {
	t.Setenv("GITHUB_ORG", "canonical")
	t.Setenv("CACHE_TTL", "soon")

	_, err := LoadConfiguration()
	assert.Error(t, err)
}

func TestLoadConfiguration_NonPositiveIntervals(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero cleanup interval", "CACHE_CLEANUP_INTERVAL", "0s"},
		{"negative cleanup interval", "CACHE_CLEANUP_INTERVAL", "-1m"},
		{"zero poll interval", "RATE_LIMIT_POLL_INTERVAL", "0s"},
		{"negative poll interval", "RATE_LIMIT_POLL_INTERVAL", "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GITHUB_ORG", "canonical")
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfiguration()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
