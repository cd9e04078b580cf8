// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PROFILE", "GA_ID", "SESSION_ID", "BASE_URL", "CACHE_DIR", "MOCK_DIR",
		"DEV_MODE", "SEED_MODE", "LOAD_ONLY", "INCREMENTAL",
		"MEMBER_LIMIT", "SB_LIMIT", "HB_LIMIT", "BILL_EXPORT_LIMIT",
		"CORS_ORIGINS", "API_KEY", "VOTE_BILL_URLS", "ETL_EVENTS_URL",
	} {
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDevProfileDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROFILE", "dev")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.DevMode)
	assert.True(t, cfg.SeedMode)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 20, cfg.MemberLimit)
}

func TestLoadProdProfileDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROFILE", "prod")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.DevMode)
	assert.False(t, cfg.SeedMode)
	assert.Equal(t, 0, cfg.MemberLimit)
}

func TestLoadEnvOverridesProfileDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROFILE", "dev")
	t.Setenv("MEMBER_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MemberLimit)
}

func TestLoadInvalidProfileIsConfigError(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROFILE", "staging")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidIntIsConfigError(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROFILE", "prod")
	t.Setenv("MEMBER_LIMIT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestSplitCSVTrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a, b ,"))
	assert.Nil(t, splitCSV(""))
}
