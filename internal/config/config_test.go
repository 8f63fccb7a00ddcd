package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "KINO_KEEPALIVE", "KINO_PROVIDER", "IO_API_KEY", "KINO_BASE_URL", "KINO_MODEL",
		"KINO_REGION", "KINO_TEMPERATURE", "KINO_MAX_TOKENS", "KINO_MAX_MESSAGES", "KINO_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.Keepalive)
	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, DefaultBaseURL, cfg.AI.BaseURL)
	assert.Equal(t, DefaultModel, cfg.AI.Model)
	assert.InDelta(t, 0.8, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 150, cfg.AI.MaxTokens)
	assert.Zero(t, cfg.AI.MaxMessages)
	assert.False(t, cfg.AI.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("IO_API_KEY", " secret ")
	t.Setenv("KINO_TEMPERATURE", "0.2")
	t.Setenv("KINO_MAX_TOKENS", "64")
	t.Setenv("KINO_MAX_MESSAGES", "3")
	t.Setenv("KINO_TIMEOUT", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "secret", cfg.AI.APIKey)
	assert.InDelta(t, 0.2, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 64, cfg.AI.MaxTokens)
	assert.Equal(t, 3, cfg.AI.MaxMessages)
	assert.Equal(t, 12*time.Second, cfg.AI.Timeout)
	assert.True(t, cfg.AI.Enabled())
}

func TestLoadArkDefaultsBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("KINO_PROVIDER", "ARK")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderArk, cfg.AI.Provider)
	assert.Contains(t, cfg.AI.BaseURL, "volces.com")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"KINO_PROVIDER":    "carrier-pigeon",
		"KINO_TEMPERATURE": "warm",
		"KINO_MAX_TOKENS":  "lots",
		"PORT":             "80 80",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestNewChatModelRequiresKey(t *testing.T) {
	_, err := AIConfig{Model: DefaultModel}.NewChatModel(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IO_API_KEY")
}
