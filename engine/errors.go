package engine

import "fmt"

// IllegalEventError is returned when a guard rejects an event. The input
// State is left unchanged — the caller may retry with a different event.
type IllegalEventError struct {
	Reason string
}

func (e *IllegalEventError) Error() string {
	return fmt.Sprintf("illegal event: %s", e.Reason)
}

func illegal(format string, args ...interface{}) error {
	return &IllegalEventError{Reason: fmt.Sprintf(format, args...)}
}

// InvariantViolation indicates an engine bug: a precondition that a passing
// guard should have already guaranteed was violated anyway (e.g. PopFront
// on an empty deck, RevealRole on a role the player doesn't hold). It is
// raised as a panic rather than an error return — it is fatal and not meant
// to be recovered from in normal operation.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Reason)
}
