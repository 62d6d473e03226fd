// Package ui implements the matchbook terminal interface on Bubble Tea.
//
// The Model is intentionally thin: all durable data lives in the state
// store, and the UI only reads snapshots and dispatches actions. Window
// size messages are forwarded to the resize throttle, which decides
// whether a dimension update reaches the store; the trailing edge of
// the throttle window arrives back as a tea.Tick message. Theme and
// startup-view choices persist through the prefs package, outside the
// quota-managed state slot.
package ui
