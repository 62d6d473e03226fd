package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/matchbook-tui/matchbook/internal/state"
)

// ErrCorrupt reports that a persisted snapshot could not be decoded.
var ErrCorrupt = errors.New("corrupt snapshot")

const (
	format  = "matchbook-state"
	version = 1
)

// envelope wraps the state so that a persisted blob is self-describing:
// a reader can tell a matchbook snapshot (and its format revision) from
// arbitrary junk before trusting the payload.
type envelope struct {
	Format  string    `json:"format"`
	Version int       `json:"version"`
	State   state.App `json:"state"`
}

// Encode serializes s to its persisted text form.
func Encode(s state.App) (string, error) {
	data, err := json.Marshal(envelope{Format: format, Version: version, State: s})
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted snapshot. Malformed JSON, a foreign
// envelope, or an unknown version all fail with ErrCorrupt; callers on
// the startup path discard the blob and fall back to the default state.
func Decode(raw string) (state.App, error) {
	if strings.TrimSpace(raw) == "" {
		return state.App{}, fmt.Errorf("empty snapshot: %w", ErrCorrupt)
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return state.App{}, fmt.Errorf("parse snapshot: %v: %w", err, ErrCorrupt)
	}
	if env.Format != format {
		return state.App{}, fmt.Errorf("snapshot format %q: %w", env.Format, ErrCorrupt)
	}
	if env.Version != version {
		return state.App{}, fmt.Errorf("snapshot version %d: %w", env.Version, ErrCorrupt)
	}
	return env.State, nil
}

// EncodedSize reports the persisted size of s in bytes.
func EncodedSize(s state.App) (int, error) {
	encoded, err := Encode(s)
	if err != nil {
		return 0, err
	}
	return len(encoded), nil
}
