package talentpulse

import "errors"

// ErrNotStarted is returned when an operation is invoked before
// Start.
var ErrNotStarted = errors.New("service not started")
