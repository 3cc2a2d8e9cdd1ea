package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional path", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse([]string{"process.hcl"}, &out)
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, "process.hcl", cfg.Path)
		assert.Equal(t, "", cfg.GraphName)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("flags take precedence", func(t *testing.T) {
		var out bytes.Buffer
		cfg, _, err := Parse([]string{
			"-config", "dir/",
			"-name", "pipeline",
			"-log-format", "json",
			"-log-level", "debug",
		}, &out)
		require.NoError(t, err)
		assert.Equal(t, "dir/", cfg.Path)
		assert.Equal(t, "pipeline", cfg.GraphName)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("shorthand flag", func(t *testing.T) {
		var out bytes.Buffer
		cfg, _, err := Parse([]string{"-c", "short.hcl"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "short.hcl", cfg.Path)
	})

	t.Run("no path prints usage and exits cleanly", func(t *testing.T) {
		var out bytes.Buffer
		cfg, exit, err := Parse(nil, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("invalid log format", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"-log-format", "xml", "x.hcl"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "invalid log-format")
	})

	t.Run("invalid log level", func(t *testing.T) {
		var out bytes.Buffer
		_, _, err := Parse([]string{"-log-level", "loud", "x.hcl"}, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Message, "invalid log-level")
	})
}
