package storage

import "errors"

var (
	// ErrUnavailable reports that the storage backend is missing,
	// disabled, or failed for a reason other than capacity.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrQuotaExceeded reports that a write was rejected because the
	// value does not fit in the store's remaining capacity.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Adapter wraps a quota-bounded key-value store. Implementations report
// failures to the caller rather than swallowing them: a rejected write
// is always distinguishable as quota (recoverable by shrinking the
// value) or unavailability (not recoverable).
type Adapter interface {
	// Probe reports whether the backend is usable. The verdict is
	// computed once and cached for the process lifetime; a store that
	// fails its probe stays unusable even if the underlying fault
	// clears later.
	Probe() bool

	// Read returns the value for key. The second result is false when
	// the key is absent.
	Read(key string) (string, bool, error)

	// Write stores value under key, fully replacing any prior value or
	// failing before touching it. Returns ErrQuotaExceeded when value
	// does not fit, ErrUnavailable for any other fault.
	Write(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
