package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "device.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	require := require.New(t)

	t.Run("File Values", func(t *testing.T) {
		path := writeConfig(t, `
host = "10.78.1.156"
port = 15000
timeout_seconds = 1.5
buffer_size = 2048
verbose = true
`)
		cfg, err := loadConfig(path)
		require.NoError(err)
		require.Equal("10.78.1.156", cfg.Host)
		require.Equal(15000, cfg.Port)
		require.Equal(1500*time.Millisecond, cfg.Timeout)
		require.Equal(2048, cfg.BufferSize)
		require.True(cfg.Verbose)
	})

	t.Run("File Defaults Unset Keys", func(t *testing.T) {
		path := writeConfig(t, `host = "10.78.1.156"`)
		cfg, err := loadConfig(path)
		require.NoError(err)
		require.Equal(14158, cfg.Port)
		require.Equal(3*time.Second, cfg.Timeout)
		require.Equal(1024, cfg.BufferSize)
		require.False(cfg.Verbose)
	})

	t.Run("Env Overrides File", func(t *testing.T) {
		path := writeConfig(t, `
host = "10.78.1.156"
port = 15000
`)
		t.Setenv("PLOC2D_HOST", "10.78.1.200")
		t.Setenv("PLOC2D_PORT", "16000")
		t.Setenv("PLOC2D_TIMEOUT", "500ms")

		cfg, err := loadConfig(path)
		require.NoError(err)
		require.Equal("10.78.1.200", cfg.Host)
		require.Equal(16000, cfg.Port)
		require.Equal(500*time.Millisecond, cfg.Timeout)
	})

	t.Run("Env Only", func(t *testing.T) {
		t.Setenv("PLOC2D_HOST", "10.78.1.156")

		cfg, err := loadConfig("")
		require.NoError(err)
		require.Equal("10.78.1.156", cfg.Host)
		require.Equal(14158, cfg.Port)
	})

	t.Run("Missing Host", func(t *testing.T) {
		_, err := loadConfig("")
		require.Error(err)
		require.EqualError(err, "device host not set (config file or PLOC2D_HOST)")
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(err)
	})
}
