// Package storage provides the quota-bounded key-value stores that hold
// the persisted state snapshot.
//
// # Overview
//
// The Adapter interface models a small local byte-store with a hard
// capacity limit. Two implementations exist:
//
//   - FileStore: one file per key under a data directory, quota on the
//     total stored bytes. This is the production backend.
//   - MemStore: same semantics in memory, with fault-injection knobs
//     for tests (disable the store, force write failures).
//
// # Failure Taxonomy
//
// Adapters distinguish exactly two failure classes, as errors.Is-able
// sentinels:
//
//   - ErrQuotaExceeded: the value does not fit in remaining capacity.
//     Recoverable: the persistence loop reacts by trimming the state
//     and retrying with a smaller snapshot.
//   - ErrUnavailable: everything else (missing directory, permission
//     denied, injected fault). Not recoverable; the caller abandons
//     the attempt.
//
// Failures are always reported, never swallowed: the caller decides
// what a failed write means.
//
// # Probing
//
// Probe answers "is this backend usable at all" by attempting a marker
// write once and caching the verdict for the process lifetime. A store
// that fails its probe behaves as permanently unavailable; callers use
// this to disable the whole persistence subsystem up front (headless
// and test environments) instead of failing on every write.
//
// # Atomicity
//
// A Write either fully replaces the previous value or fails leaving it
// intact. FileStore gets this from the temp-file-plus-rename dance;
// MemStore from assigning after all checks pass. Readers therefore
// never observe a torn snapshot.
package storage
