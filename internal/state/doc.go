// Package state defines the matchbook application state and the store
// that owns it.
//
// # Overview
//
// All client data lives in a single App value: the game-variant specs,
// the ordered match list, the phone-number contact index, the current
// user, and the last observed window dimensions. The Store holds the
// current App and is the only place it changes.
//
// # State Shape
//
// App is a plain value with three rules:
//
//   - Deep-copyable: Clone produces an independent copy; no component
//     ever hands out an aliased map or slice.
//   - JSON-serializable: no cycles, no handles, nothing that cannot
//     round-trip through the snapshot codec.
//   - Referential integrity is soft: every Match.SpecID should name an
//     entry in GameSpecs, but orphaned specs are tolerated and reclaimed
//     by the trimmer rather than rejected here.
//
// # Actions
//
// State changes are expressed as a tagged union. Each Action carries a
// Kind discriminant and a typed payload, and is built only through the
// package's constructor functions:
//
//	store.Dispatch(state.SetWindowDimensions(state.Dimensions{Width: 80, Height: 24}))
//	store.Dispatch(state.UpsertMatch(state.NewMatch(specID, "nadia", time.Now())))
//
// Constructors validate payloads and panic on malformed input (empty
// match ID, negative dimensions). An invalid action is a programming
// bug upstream, not a runtime condition to recover from, so it fails
// loudly at the construction site where the bug is.
//
// # Dispatch and Notification
//
// Dispatch runs the reducer, replaces the stored state, and invokes the
// single subscribed listener synchronously with a copy of the new
// state, all under the store's mutex. Consequences:
//
//   - Exactly one notification per state change.
//   - Notifications never overlap; the listener (the persistence loop,
//     including its full trim-and-retry cycle) always runs to
//     completion before the next change is observed.
//   - The listener must not dispatch; that would self-deadlock, and is
//     again a programming bug rather than a supported pattern.
//
// The reducer is pure: it never mutates the previous state, so a
// listener's copy and the live state share nothing.
//
// # Subscription
//
// Subscribe registers the one change listener at process start. The
// persistence subsystem only subscribes when the storage probe
// succeeds; in headless environments the store simply runs without a
// listener and Dispatch skips notification.
package state
