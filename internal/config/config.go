// SPDX-License-Identifier: MIT

// Package config loads the application's runtime configuration from a
// PROFILE plus individual environment variable overrides (spec §6),
// mirroring the teacher's pattern of a single typed Config value built
// once in main and passed by reference rather than read piecemeal via
// os.Getenv across the codebase.
package config

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	apperrors "github.com/tylermorales/ilga-graph/pkg/errors"
	"github.com/tylermorales/ilga-graph/pkg/redaction"
)

// Profile selects a bundle of defaults for the other keys.
type Profile string

const (
	ProfileDev  Profile = "dev"
	ProfileProd Profile = "prod"
)

// Config is the fully resolved, immutable configuration for one process
// run. It is constructed once in main via Load and passed by reference
// into the orchestrator and HTTP server.
type Config struct {
	Profile Profile

	GAID     string
	SessionID string
	BaseURL  string

	CacheDir string
	MockDir  string
	VaultDir string

	DevMode    bool
	SeedMode   bool
	LoadOnly   bool
	Incremental bool

	MemberLimit     int
	SBLimit         int
	HBLimit         int
	BillExportLimit int

	CORSOrigins []string
	APIKey      string

	VoteBillURLs []string

	// ETLEventsURL, when set, is the NATS server URL the ETL
	// Orchestrator publishes step-completion events to (spec §4.11,
	// §9 "ops event bus", not a public real-time feed).
	ETLEventsURL string
}

// Load resolves Config from the environment, applying PROFILE defaults
// first and then letting any explicitly-set environment variable
// override them. It attempts to load a .env file first (ignoring its
// absence) the way the teacher's showcase config does for local dev.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Profile: Profile(getEnvDefault("PROFILE", string(ProfileProd))),
	}

	switch cfg.Profile {
	case ProfileDev:
		cfg.DevMode = true
		cfg.SeedMode = true
		cfg.CORSOrigins = []string{"*"}
		cfg.MemberLimit = 20
	case ProfileProd:
		cfg.MemberLimit = 0
	default:
		return nil, apperrors.NewConfig("PROFILE", "PROFILE must be \"dev\" or \"prod\", got "+string(cfg.Profile))
	}

	cfg.GAID = os.Getenv("GA_ID")
	cfg.SessionID = os.Getenv("SESSION_ID")
	cfg.BaseURL = getEnvDefault("BASE_URL", "https://www.ilga.gov")

	cfg.CacheDir = getEnvDefault("CACHE_DIR", "./data/cache")
	cfg.MockDir = getEnvDefault("MOCK_DIR", "./data/mock")
	cfg.VaultDir = getEnvDefault("VAULT_DIR", "./data/vault")

	if v, ok := os.LookupEnv("DEV_MODE"); ok {
		cfg.DevMode = v != "" && v != "0"
	}
	if v, ok := os.LookupEnv("SEED_MODE"); ok {
		cfg.SeedMode = v != "" && v != "0"
	}
	cfg.LoadOnly = envBool("LOAD_ONLY")
	cfg.Incremental = envBool("INCREMENTAL")

	var err error
	if cfg.MemberLimit, err = envIntDefault("MEMBER_LIMIT", cfg.MemberLimit); err != nil {
		return nil, err
	}
	if cfg.SBLimit, err = envIntDefault("SB_LIMIT", 0); err != nil {
		return nil, err
	}
	if cfg.HBLimit, err = envIntDefault("HB_LIMIT", 0); err != nil {
		return nil, err
	}
	if cfg.BillExportLimit, err = envIntDefault("BILL_EXPORT_LIMIT", 0); err != nil {
		return nil, err
	}

	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		cfg.CORSOrigins = splitCSV(v)
	}
	cfg.APIKey = os.Getenv("API_KEY")
	cfg.VoteBillURLs = splitCSV(os.Getenv("VOTE_BILL_URLS"))
	cfg.ETLEventsURL = os.Getenv("ETL_EVENTS_URL")

	if cfg.Profile == ProfileProd {
		if len(cfg.CORSOrigins) == 0 {
			slog.Warn("CORS_ORIGINS is empty in prod profile")
		}
		if cfg.APIKey == "" {
			slog.Warn("API_KEY is empty in prod profile; all routes are unauthenticated")
		}
	}

	return cfg, nil
}

// LogStartup emits one structured log line summarizing the resolved
// configuration, redacting keys flagged by pkg/redaction.
func (c *Config) LogStartup(ctx context.Context) {
	slog.InfoContext(ctx, "configuration loaded",
		"profile", c.Profile,
		"base_url", c.BaseURL,
		"cache_dir", c.CacheDir,
		"dev_mode", c.DevMode,
		"seed_mode", c.SeedMode,
		"load_only", c.LoadOnly,
		"incremental", c.Incremental,
		"member_limit", c.MemberLimit,
		"ga_id", redactIfSet("GA_ID", c.GAID),
		"session_id", redactIfSet("SESSION_ID", c.SessionID),
		"api_key", redactIfSet("API_KEY", c.APIKey),
	)
}

func redactIfSet(key, value string) string {
	if value == "" {
		return ""
	}
	if redaction.IsSensitiveConfigKey(key) {
		return redaction.RedactConfigValue(value)
	}
	return value
}

func getEnvDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v := os.Getenv(key)
	return v != "" && v != "0"
}

func envIntDefault(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperrors.NewConfig(key, "must be an integer, got "+v, err)
	}
	return n, nil
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
