package identity

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNoViewer      = errors.New("no viewer logged in")
	ErrInvalidViewer = errors.New("invalid viewer")
)
