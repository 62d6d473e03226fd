// Package trim shrinks an application state that no longer fits the
// storage quota. Each call evicts one priority tier of data; repeated
// calls converge on the default state with only the user preserved.
package trim
