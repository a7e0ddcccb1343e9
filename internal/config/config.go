// Package config defines roster configuration structures and loading hooks.
package config

import (
	"golang.org/x/text/language"
)

// Config contains process configuration for the roster core.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir is the directory the file-backed KV keeps snapshots in.
	DataDir string `koanf:"data_dir"`

	// RosterKey is the KV key the employee collection is stored under.
	RosterKey string `koanf:"roster_key"`

	// SessionKey is the KV key the current viewer is stored under.
	SessionKey string `koanf:"session_key"`

	// TagSeparator joins a record's tags into one CSV export cell.
	TagSeparator string `koanf:"tag_separator"`

	// CollationLang is the BCP 47 tag for locale-aware name sorting.
	CollationLang string `koanf:"collation_lang"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		DataDir:       "data",
		RosterKey:     "employees",
		SessionKey:    "auth_user",
		TagSeparator:  ";",
		CollationLang: "en",
	}
}

// Language parses the configured collation language.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.CollationLang)
	if err != nil {
		return language.Und, err
	}
	return tag, nil
}
