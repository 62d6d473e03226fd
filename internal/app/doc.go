// Package app provides the orchestration layer for matchbook.
//
// # Overview
//
// This package is the composition root: it loads configuration and
// preferences, probes durable storage, rehydrates the persisted state
// snapshot, constructs the state store, wires the persistence loop to
// the store's change notifications, and starts the TUI.
//
// # Startup Sequence
//
//  1. config.Load()            read TOML + env overrides
//  2. prefs.Load()             cosmetic preferences, never fatal
//  3. storage.NewFileStore()   quota-bounded slot under the data dir
//  4. adapter.Probe()          one cached usability check
//  5. saver.Load()             rehydrate snapshot, or default state on
//     absence/corruption (skipped entirely when the probe fails)
//  6. state.New()              store constructed with resolved state
//  7. notify.Attach()          persistence listener, probe permitting
//  8. ui.Run()                 blocks until quit or ctx cancellation
//
// The ordering matters: the snapshot is read and decoded before the
// store exists, so every dispatched action operates on fully resolved
// state, and the change listener is registered before the UI can emit
// its first action.
//
// # Headless Environments
//
// When the probe fails (read-only filesystem, tests), the persistence
// subsystem is disabled up front: no listener is registered and no
// write is ever attempted. The app still runs; state is simply
// ephemeral for that process.
//
// # Error Handling
//
// Fatal at startup: unreadable or malformed config. Everything else -
// missing prefs, missing snapshot, corrupt snapshot, unusable storage -
// degrades to defaults, because a companion app that refuses to start
// over bad cached data would be worse than one that starts empty.
package app
