package state

import (
	"sync"
)

// Store is the application state container. Dispatch applies an action
// and synchronously notifies the single subscribed listener before
// returning, so no two notifications ever overlap and every state
// change produces exactly one notification.
type Store struct {
	mu       sync.Mutex
	state    App
	listener func(App)
}

// New creates a store holding a copy of initial.
func New(initial App) *Store {
	return &Store{state: initial.Clone()}
}

// State returns a deep copy of the current state.
func (s *Store) State() App {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers the change listener. The store supports exactly
// one listener, registered once at startup; a second registration is a
// programming error. The listener must not call back into Dispatch.
func (s *Store) Subscribe(fn func(App)) {
	if fn == nil {
		panic("state: Subscribe with nil listener")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		panic("state: Subscribe called twice")
	}
	s.listener = fn
}

// Dispatch applies a and notifies the listener with a copy of the new
// state. The lock is held through the notification: the listener always
// runs to completion before the next change can be observed.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, a)
	if s.listener != nil {
		s.listener(s.state.Clone())
	}
}
