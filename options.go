package talentpulse

import (
	"context"

	"golang.org/x/text/language"

	persistence "github.com/okian/talentpulse/internal/adapters/persistence"
	config "github.com/okian/talentpulse/internal/config"
	"github.com/okian/talentpulse/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithKV sets the persistence collaborator. Both the roster snapshot
// and the viewer session live in it.
func WithKV(kv persistence.KV) Option {
	return func(s *Service) {
		if kv != nil {
			s.kv = kv
		}
	}
}

// WithDataDir stores snapshots as files under dir instead of in
// memory.
func WithDataDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.kv = persistence.NewFileStore(dir)
		}
	}
}

// WithRosterKey sets the KV key the collection is stored under.
func WithRosterKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.rosterKey = key
		}
	}
}

// WithSessionKey sets the KV key the viewer session is stored under.
func WithSessionKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.sessionKey = key
		}
	}
}

// WithTagSeparator sets the separator joining tags in CSV exports.
func WithTagSeparator(sep string) Option {
	return func(s *Service) {
		if sep != "" {
			s.tagSeparator = sep
		}
	}
}

// WithQueryLanguage sets the collation language for name sorting.
func WithQueryLanguage(tag language.Tag) Option {
	return func(s *Service) {
		s.lang = tag
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewFromConfig loads configuration (defaults -> optional file -> env)
// and builds a Service from it, with file-backed persistence under the
// configured data directory.
func NewFromConfig(ctx context.Context, opts ...Option) (*Service, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, err
	}
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithDataDir(cfg.DataDir),
		WithRosterKey(cfg.RosterKey),
		WithSessionKey(cfg.SessionKey),
		WithTagSeparator(cfg.TagSeparator),
		WithQueryLanguage(tag),
	}
	return New(append(base, opts...)...), nil
}
