package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "xdriver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, uint16(4444), cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogCategoryFilter)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("full_file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
host: grid.internal
port: 4445
log_level: debug
log_category_filter: "^Session"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "grid.internal", cfg.Host)
		assert.Equal(t, uint16(4445), cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "^Session", cfg.LogCategoryFilter)
	})

	t.Run("partial_file_keeps_defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(writeConfig(t, "log_level: warning\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultHost, cfg.Host)
		assert.Equal(t, uint16(DefaultPort), cfg.Port)
		assert.Equal(t, "warning", cfg.LogLevel)
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeConfig(t, "port: [not a port\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("filter_applies", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		cfg.LogLevel = "debug"
		cfg.LogCategoryFilter = "^Session"

		var buf bytes.Buffer
		logger, err := cfg.NewLogger(&buf)
		require.NoError(t, err)

		logger.Debugf("Session:create", "starting")
		logger.Debugf("Client:do", "ignored")
		out := buf.String()
		assert.Contains(t, out, "starting")
		assert.NotContains(t, out, "ignored")
	})

	t.Run("bad_level", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		cfg.LogLevel = "chatty"
		_, err := cfg.NewLogger(&bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("bad_filter", func(t *testing.T) {
		t.Parallel()

		cfg := Default()
		cfg.LogCategoryFilter = "(["
		_, err := cfg.NewLogger(&bytes.Buffer{})
		require.Error(t, err)
	})
}
