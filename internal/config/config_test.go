package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.FilesDirectory)
	assert.Equal(t, "127.0.0.1:4221", cfg.Addr)
	assert.Equal(t, 500*time.Millisecond, cfg.IdleTimeout)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestLoadDirectory(t *testing.T) {
	cfg, err := Load([]string{"--directory", "/tmp/data/"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data/", cfg.FilesDirectory)

	cfg, err = Load([]string{"-directory=/srv"})
	require.NoError(t, err)
	assert.Equal(t, "/srv", cfg.FilesDirectory)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load([]string{
		"--addr", "127.0.0.1:0",
		"--idle-timeout", "50ms",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", cfg.Addr)
	assert.Equal(t, 50*time.Millisecond, cfg.IdleTimeout)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadRejects(t *testing.T) {
	_, err := Load([]string{"--unknown"})
	assert.Error(t, err)

	_, err = Load([]string{"--log-level", "loud"})
	assert.Error(t, err)

	_, err = Load([]string{"--directory", ""})
	assert.Error(t, err)

	_, err = Load([]string{"--idle-timeout", "0s"})
	assert.Error(t, err)
}
