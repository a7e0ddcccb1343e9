package persistence

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidKey = errors.New("invalid key")
	ErrLoad       = errors.New("load failed")
	ErrSave       = errors.New("save failed")
)
