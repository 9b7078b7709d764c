package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	_, err := New()
	assert.Error(t, err)
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, "datastore.json", cfg.StoragePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8787", cfg.StatusAddr)
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("COMMAND_PREFIX", "?")
	t.Setenv("CHANNEL_WELCOME", "chan-1")
	t.Setenv("STATUS_ADDR", ":9000")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "?", cfg.CommandPrefix)
	assert.Equal(t, "chan-1", cfg.Notify.Welcome)
	assert.Equal(t, ":9000", cfg.StatusAddr)
}
