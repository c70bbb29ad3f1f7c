package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerAdapter_KeyValueArgs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Info("Action failed", "name", "get_xpath", "error", "Element not found")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Action failed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "get_xpath", fields["name"])
	assert.Equal(t, "Element not found", fields["error"])
}

func TestLoggerAdapter_WithFieldIsolated(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	child := log.WithField("run_id", "abc")
	child.Warn("child")
	log.Warn("parent")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0].ContextMap()["run_id"])
	_, ok := entries[1].ContextMap()["run_id"]
	assert.False(t, ok, "parent logger must not inherit child fields")
}

func TestLoggerAdapter_WithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.WithFields(map[string]any{"url": "https://example.com", "step": 3}).Debug("step")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "https://example.com", fields["url"])
	assert.EqualValues(t, 3, fields["step"])
}

func TestNewLoggerAdapter_WritesFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false
	cfg.File = filepath.Join(t.TempDir(), "nested", "watcher.log")

	log, err := NewLoggerAdapter(cfg)
	require.NoError(t, err)
	log.Info("hello")
	require.NoError(t, log.Close())

	assert.FileExists(t, cfg.File)
}

func TestNewLoggerAdapter_BadLevelFallsBackToInfo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Console = false
	cfg.File = ""
	cfg.Level = "loud"

	log, err := NewLoggerAdapter(cfg)
	require.NoError(t, err)
	assert.NotNil(t, log)
}
