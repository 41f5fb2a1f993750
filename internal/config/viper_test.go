package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	assert.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 0.5, cfg.Matching.Threshold)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
}

func TestInitializeConfigFromEnv(t *testing.T) {
	t.Setenv("PENSION_LOG_LEVEL", "debug")
	t.Setenv("PENSION_MATCHING_THRESHOLD", "0.7")
	t.Setenv("PENSION_TAXONOMY_FILE", "custom.yaml")

	cfg, err := InitializeConfig()
	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0.7, cfg.Matching.Threshold)
	assert.Equal(t, "custom.yaml", cfg.Taxonomy.File)
}

func TestInitializeConfigBindsGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	assert.NoError(t, err)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Matching.Threshold = 0.5
		cfg.CSV.Delimiter = ","
		return cfg
	}

	assert.NoError(t, validateConfig(valid()))

	cfg := valid()
	cfg.Log.Level = "nope"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Log.Format = "xml"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Matching.Threshold = 1.5
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Matching.Threshold = -0.1
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.CSV.Delimiter = ";;"
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.AI.Enabled = true
	assert.Error(t, validateConfig(cfg), "AI without an API key is rejected")
	cfg.AI.APIKey = "key"
	assert.NoError(t, validateConfig(cfg))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "debug", logger.GetLevel().String())

	// Invalid level degrades to info instead of failing
	cfg.Log.Level = "bogus"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, "info", logger.GetLevel().String())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PENSION_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("PENSION_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PENSION_TEST_MISSING", "fallback"))
}
