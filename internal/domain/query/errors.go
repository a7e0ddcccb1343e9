package query

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrUnknownSortKey marks a sort key the engine does not support.
	ErrUnknownSortKey = errors.New("unknown sort key")
)
