package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, validateConfig(&cfg))
	})

	t.Run("nil config", func(t *testing.T) {
		err := validateConfig(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgNilConfig)
	})

	invalid := map[string]func(c *Config){
		"unknown level":        func(c *Config) { c.Level = "verbose" },
		"negative size":        func(c *Config) { c.JournalMaxSizeMB = -1 },
		"negative backups":     func(c *Config) { c.JournalMaxBackups = -2 },
		"negative age":         func(c *Config) { c.JournalMaxAgeDays = -3 },
		"package with a slash": func(c *Config) { c.PackageName = "hpp/core" },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			err := validateConfig(&cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), errMsgConfigInvalid)
		})
	}

	t.Run("empty level and package are allowed", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Level = ""
		cfg.PackageName = ""
		require.NoError(t, validateConfig(&cfg))
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(envMaxSizeMB, "5")
	t.Setenv(envMaxBackups, "7")
	t.Setenv(envMaxAgeDays, "not-a-number")
	t.Setenv(envCompress, "true")
	t.Setenv(envLevel, "debug")

	cfg := DefaultConfig()
	ConfigFromEnv(&cfg)

	assert.Equal(t, 5, cfg.JournalMaxSizeMB)
	assert.Equal(t, 7, cfg.JournalMaxBackups)
	assert.Equal(t, DefaultConfig().JournalMaxAgeDays, cfg.JournalMaxAgeDays, "malformed values are ignored")
	assert.True(t, cfg.JournalCompress)
	assert.Equal(t, "debug", cfg.Level)

	assert.NotPanics(t, func() { ConfigFromEnv(nil) })
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, "warn", l.String())

	l, err = parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", l.String())

	_, err = parseLevel("nope")
	require.Error(t, err)
}
