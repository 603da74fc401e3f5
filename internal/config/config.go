package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// PlaceholderToken is the unconfigured token value. It counts as no token.
const PlaceholderToken = "your_github_token_here"

type Config struct {
	GitHubToken          string        `envconfig:"GITHUB_TOKEN"`
	Org                  string        `envconfig:"GITHUB_ORG" default:"canonical"`
	ServerPort           string        `envconfig:"SERVER_PORT" default:":8081"`
	LogLevel             string        `envconfig:"LOG_LEVEL" default:"info"`
	CacheTTL             time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	CacheCleanupInterval time.Duration `envconfig:"CACHE_CLEANUP_INTERVAL" default:"10m"`
	MinRequestSpacing    time.Duration `envconfig:"MIN_REQUEST_SPACING" default:"100ms"`
	LowWaterMark         int           `envconfig:"RATE_LIMIT_LOW_WATER_MARK" default:"5"`
	RateLimitPoll        time.Duration `envconfig:"RATE_LIMIT_POLL_INTERVAL" default:"1m"`
	ExploreRepos         []string      `envconfig:"EXPLORE_REPOS" default:"snapcraft,ubuntu-image,multipass,juju,lxd,snapd,ubuntu-core-desktop,microk8s,charmed-kubernetes"`
}

// * LoadConfiguration reads .env (if present) and the environment into a Config
func LoadConfiguration() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	cfg.GitHubToken = NormalizeToken(cfg.GitHubToken)
	cfg.Org = strings.TrimSpace(cfg.Org)
	if cfg.Org == "" {
		return nil, fmt.Errorf("GITHUB_ORG must not be empty")
	}
	if cfg.LowWaterMark < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_LOW_WATER_MARK must be >= 0, got %d", cfg.LowWaterMark)
	}
	if cfg.CacheCleanupInterval <= 0 {
		return nil, fmt.Errorf("CACHE_CLEANUP_INTERVAL must be positive, got %s", cfg.CacheCleanupInterval)
	}
	if cfg.RateLimitPoll <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_POLL_INTERVAL must be positive, got %s", cfg.RateLimitPoll)
	}

	if !cfg.HasToken() {
		logger.Warn("⚠️ No GitHub token found. API requests will be rate limited. Set GITHUB_TOKEN to raise the quota.")
	}

	logger.Info("✅ configuration loaded for org %s", cfg.Org)
	return &cfg, nil
}

func (c *Config) HasToken() bool {
	return c.GitHubToken != ""
}

// * NormalizeToken trims the token and maps the documented placeholder to ""
func NormalizeToken(token string) string {
	token = strings.TrimSpace(token)
	if token == PlaceholderToken {
		return ""
	}
	return token
}
