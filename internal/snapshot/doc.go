// Package snapshot converts the application state to and from its
// persisted text form.
//
// The encoding is JSON inside a small envelope carrying a format name
// and version number, so a stored blob is self-describing: Decode can
// reject foreign or stale data as ErrCorrupt instead of deserializing
// garbage into live state. Key order is not canonicalized; the only
// contract is round-trip fidelity: Decode(Encode(s)) always yields s.
//
// Corruption is a recoverable condition by design. The startup path
// treats ErrCorrupt the same as an absent snapshot and rehydrates from
// the default state rather than crashing the process over a bad blob.
package snapshot
