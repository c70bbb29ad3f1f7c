package di

import (
	"testing"
	"time"

	"watcher/internal/infrastructure/env"
	"watcher/internal/infrastructure/llm/gemini"
	"watcher/internal/infrastructure/logger"
	"watcher/internal/usecase/agent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapConfig map[string]string

func (m mapConfig) Get(key string) string { return m[key] }

func (m mapConfig) MustGet(key string) string { return m[key] }

func (m mapConfig) GetWithDefault(key, def string) string {
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return def
}

func (m mapConfig) GetBool(key string, def bool) bool {
	switch m[key] {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

func (m mapConfig) GetInt(key string, def int) int {
	if m[key] == "7" {
		return 7
	}
	return def
}

func (m mapConfig) GetDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(m[key]); err == nil {
		return d
	}
	return def
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := ConfigFromEnv(mapConfig{"GOOGLE_API_KEY": "key"})

	assert.Equal(t, "key", cfg.GoogleAPIKey)
	assert.Equal(t, gemini.DefaultModel, cfg.LLMModel)
	assert.Equal(t, gemini.DefaultBaseURL, cfg.LLMBaseURL)
	assert.True(t, cfg.BrowserHeadless)
	assert.Equal(t, agent.DefaultMaxSteps, cfg.MaxSteps)
	assert.Equal(t, "screenshots", cfg.ScreenshotDir)
	assert.Equal(t, ":7860", cfg.HTTPAddr)
	assert.Equal(t, DefaultRunTimeout, cfg.RunTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	cfg := ConfigFromEnv(mapConfig{
		"GOOGLE_API_KEY":   "key",
		"LLM_MODEL":        "gemini-2.5-pro",
		"BROWSER_HEADLESS": "false",
		"AGENT_MAX_STEPS":  "7",
		"LLM_TIMEOUT":      "10s",
		"LOG_LEVEL":        "debug",
	})

	assert.Equal(t, "gemini-2.5-pro", cfg.LLMModel)
	assert.False(t, cfg.BrowserHeadless)
	assert.Equal(t, 7, cfg.MaxSteps)
	assert.Equal(t, 10*time.Second, cfg.LLMTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestNewContainer_WiresActions(t *testing.T) {
	cfg := ConfigFromEnv(mapConfig{"GOOGLE_API_KEY": "key"})
	cfg.Log = logger.Config{Level: "error"}
	cfg.ScreenshotDir = t.TempDir()

	c, err := NewContainer(cfg)
	require.NoError(t, err)
	defer c.Close()

	names := make([]string, 0)
	for _, a := range c.Actions.All() {
		names = append(names, a.Name().String())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "perform_element_action")
	assert.Contains(t, names, "done")
	assert.NotNil(t, c.Server)
	assert.NotNil(t, c.Moderator)
}

func TestConfigFromEnv_MissingAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")

	cfg := ConfigFromEnv(&env.EnvService{})
	assert.Empty(t, cfg.GoogleAPIKey)

	cfg.Log = logger.Config{Level: "error"}
	cfg.ScreenshotDir = t.TempDir()
	c, err := NewContainer(cfg)
	require.NoError(t, err)
	defer c.Close()
	assert.NotNil(t, c.Moderator)
}
