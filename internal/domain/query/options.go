package query

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLanguage sets the collation language used for name ordering.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) {
		e.coll = collate.New(tag)
	}
}
