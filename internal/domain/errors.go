package domain

import "errors"

// Error taxonomy shared across the bot. Callers classify failures with
// errors.Is and decide whether to abort a whole scheduler tick or only
// skip one item.
var (
	// ErrDataUnavailable marks the external race data feed as unreachable
	// or returning something unparseable.
	ErrDataUnavailable = errors.New("race data unavailable")

	// ErrDeliveryFailed marks a message-channel rejection or timeout for a
	// single notification.
	ErrDeliveryFailed = errors.New("notification delivery failed")

	// ErrStorage marks a persistence-layer failure.
	ErrStorage = errors.New("storage failure")

	// ErrNotFound is returned by lookups that found no row.
	ErrNotFound = errors.New("not found")
)
