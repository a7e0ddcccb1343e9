package repository

import "errors"

// Sentinel kinds for roster store errors.
var (
	ErrNotFound     = errors.New("record not found")
	ErrMissingField = errors.New("required field missing")
)
