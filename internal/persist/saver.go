package persist

import (
	"errors"
	"log"

	"github.com/matchbook-tui/matchbook/internal/snapshot"
	"github.com/matchbook-tui/matchbook/internal/state"
	"github.com/matchbook-tui/matchbook/internal/storage"
	"github.com/matchbook-tui/matchbook/internal/trim"
)

// Key is the single storage slot holding the persisted snapshot.
const Key = "matchbook/state"

// maxTrims bounds the trim-and-retry loop so a pathological quota can
// never stall the dispatch path indefinitely.
const maxTrims = 100

// Phase is the saver's position in its write cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWriting
	PhaseTrimming
)

// Saver owns the persistence loop: serialize the state after every
// change, and when the storage quota rejects the snapshot, shrink a
// copy until it fits or the retry budget runs out. Persistence is
// best-effort: Save never returns an error and never touches the live
// state it was handed.
type Saver struct {
	store storage.Adapter
	phase Phase
	logf  func(format string, args ...any)
}

// NewSaver creates a saver writing through the given adapter.
func NewSaver(store storage.Adapter) *Saver {
	return &Saver{store: store, logf: log.Printf}
}

// Phase reports where the saver is in its cycle. Outside a Save call
// this is always PhaseIdle.
func (s *Saver) Phase() Phase { return s.phase }

// Save persists app under Key. On quota rejection it repeatedly trims
// a deep copy and retries, up to maxTrims attempts; exhaustion and all
// non-quota failures are logged and dropped, leaving the durable copy
// stale but the in-memory state untouched.
func (s *Saver) Save(app state.App) {
	s.phase = PhaseWriting
	defer func() { s.phase = PhaseIdle }()

	encoded, err := snapshot.Encode(app)
	if err != nil {
		s.logf("persist: encode failed, dropping snapshot: %v", err)
		return
	}
	err = s.store.Write(Key, encoded)
	if err == nil {
		return
	}
	if !errors.Is(err, storage.ErrQuotaExceeded) {
		s.logf("persist: write failed, dropping snapshot: %v", err)
		return
	}

	// Quota path: recovery operates on a copy so the live state is
	// never mutated by trimming.
	s.phase = PhaseTrimming
	trimmed := app.Clone()
	for attempt := 1; attempt <= maxTrims; attempt++ {
		trimmed = trim.Once(trimmed)
		encoded, err = snapshot.Encode(trimmed)
		if err != nil {
			s.logf("persist: encode failed after %d trims, dropping snapshot: %v", attempt, err)
			return
		}
		err = s.store.Write(Key, encoded)
		if err == nil {
			s.logf("persist: snapshot stored after %d trims (%d bytes)", attempt, len(encoded))
			return
		}
		if !errors.Is(err, storage.ErrQuotaExceeded) {
			s.logf("persist: write failed after %d trims, dropping snapshot: %v", attempt, err)
			return
		}
	}
	s.logf("persist: quota still exceeded after %d trims, dropping snapshot", maxTrims)
}

// Load rehydrates the persisted snapshot. An absent key, a read
// failure, or a corrupt blob all fall back to the default state; the
// startup path never crashes over bad persisted data.
func (s *Saver) Load() state.App {
	raw, ok, err := s.store.Read(Key)
	if err != nil {
		s.logf("persist: startup read failed, using default state: %v", err)
		return state.Default()
	}
	if !ok {
		return state.Default()
	}
	app, err := snapshot.Decode(raw)
	if err != nil {
		s.logf("persist: discarding corrupt snapshot: %v", err)
		return state.Default()
	}
	return app
}
