// Package persist implements the size-bounded persistence loop.
//
// # Overview
//
// The Saver is the bridge between the state container and durable
// storage. Every state change is serialized and written to a single
// quota-limited slot; when the write is rejected for size, the saver
// shrinks a copy of the state one eviction step at a time and retries
// until the snapshot fits or a fixed retry budget is spent.
//
// # Write Cycle
//
// Save moves through three phases:
//
//	Idle ──change──> Writing ──quota──> Trimming ──fits/exhausted──> Idle
//
//   - Writing: encode the state and attempt the write. Success or any
//     non-quota failure ends the cycle immediately.
//   - Trimming: deep-copy the state, then loop {trim once, encode,
//     write} up to 100 times. The first successful write ends the
//     cycle; so does any non-quota failure.
//
// The 100-iteration bound exists to guarantee forward progress: the
// whole cycle runs synchronously on the dispatch path, so an unbounded
// loop against a broken backend would stall every later state change.
//
// # Failure Policy
//
// Persistence is best-effort and invisible to the rest of the app:
//
//   - Quota rejections are retried locally and never surfaced.
//   - Unavailability, encode failures, and retry exhaustion are logged
//     and dropped. The durable copy goes stale; the in-memory state is
//     unaffected.
//   - Save never mutates the state it was handed. Trimming always
//     works on a clone, so the live application state and the shrinking
//     persistence copy share nothing.
//
// # Startup
//
// Load runs once, before the store exists: read the slot, decode, and
// on an absent key or a corrupt blob fall back to the default state.
// By the time any action is dispatched the initial state is fully
// resolved.
package persist
