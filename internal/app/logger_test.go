package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_LevelFiltersOutput(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{LogLevel: "warn"})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := newLogger(cfg, &buf)

	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{LogFormat: "json"})
	require.NoError(t, err)

	var buf bytes.Buffer
	newLogger(cfg, &buf).Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
