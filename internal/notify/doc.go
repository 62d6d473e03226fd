// Package notify glues host events to the state container.
//
// It owns two pieces of wiring, both registered once at process start:
//
//   - Attach: subscribes the persistence loop to the store's change
//     notifications, but only when the storage backend probes as
//     usable. The store notifies synchronously: every persistence
//     attempt (including its full trim-and-retry cycle) completes
//     before the next state change can be observed, and no two
//     attempts ever overlap.
//
//   - ResizeThrottle: converts window resize and orientation signals
//     into set-window-dimensions actions, leading+trailing throttled.
//     A signal matching the stored dimensions is a no-op, the first
//     real change dispatches immediately, and at most one trailing
//     update fires per quiet window. The host event loop supplies the
//     timer (bubbletea's tea.Tick in the production UI), keeping the
//     throttle itself a deterministic state machine.
package notify
