package logging

import (
	"io"
	"os"
	"strconv"
)

// Config holds the settings of a logging Service.
type Config struct {
	// Dir, when set, replaces the logging prefix for the journals.
	Dir string `json:"dir"`
	// PackageName is appended to DefaultLoggingDir when resolving the prefix.
	PackageName string `json:"packageName" validate:"omitempty,excludesall=/\\"`
	// Level is the minimum level of the service's own diagnostics.
	Level string `json:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	JournalMaxSizeMB  int  `json:"journalMaxSizeMB" validate:"gte=0"`
	JournalMaxBackups int  `json:"journalMaxBackups" validate:"gte=0"`
	JournalMaxAgeDays int  `json:"journalMaxAgeDays" validate:"gte=0"`
	JournalCompress   bool `json:"journalCompress"`

	// Console receives the console output. Defaults to os.Stderr.
	Console io.Writer `json:"-" validate:"-"`
	// Diagnostics receives the service's own diagnostics. Defaults to os.Stderr.
	Diagnostics io.Writer `json:"-" validate:"-"`
}

// DefaultConfig returns built-in defaults.
func DefaultConfig() Config {
	return Config{
		PackageName:       JournalPackage,
		Level:             "warn",
		JournalMaxSizeMB:  100,
		JournalMaxBackups: 3,
		JournalMaxAgeDays: 28,
	}
}

// ConfigFromEnv overlays HPP_LOGGING_* environment variables onto cfg.
// Malformed values are ignored.
func ConfigFromEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	if v := os.Getenv(envMaxSizeMB); v != emptyString {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.JournalMaxSizeMB = n
		}
	}
	if v := os.Getenv(envMaxBackups); v != emptyString {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.JournalMaxBackups = n
		}
	}
	if v := os.Getenv(envMaxAgeDays); v != emptyString {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.JournalMaxAgeDays = n
		}
	}
	if v := os.Getenv(envCompress); v != emptyString {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.JournalCompress = b
		}
	}
	if v := os.Getenv(envLevel); v != emptyString {
		cfg.Level = v
	}
}

func (c *Config) console() io.Writer {
	if c.Console != nil {
		return c.Console
	}
	return os.Stderr
}

func (c *Config) diagnostics() io.Writer {
	if c.Diagnostics != nil {
		return c.Diagnostics
	}
	return os.Stderr
}
