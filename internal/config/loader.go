package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TALENTPULSE_CONFIG is set
//  3. env (prefix TALENTPULSE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TALENTPULSE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Env keys like TALENTPULSE_ROSTER_KEY map to roster_key.
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("TALENTPULSE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "talentpulse_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	if cfg.RosterKey == "" {
		return nil, fmt.Errorf("%w: roster_key must not be empty", ErrInvalidConfig)
	}
	if cfg.SessionKey == "" {
		return nil, fmt.Errorf("%w: session_key must not be empty", ErrInvalidConfig)
	}
	if _, err := cfg.Language(); err != nil {
		return nil, fmt.Errorf("%w: collation_lang: %v", ErrInvalidConfig, err)
	}
	return &cfg, nil
}
