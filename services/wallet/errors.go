package wallet

import "errors"

// ErrInvalidEvent means a consumed event is structurally invalid
// (missing correlation id, non-positive amount). Redelivering such a
// message can never succeed, so the consumer logs and drops it instead
// of requeueing.
var ErrInvalidEvent = errors.New("invalid completion event")
