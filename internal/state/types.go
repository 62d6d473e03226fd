package state

import (
	"time"

	"github.com/google/uuid"
)

// Dimensions records the host window size in character cells.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// User identifies the local player.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Contact is an address-book entry, keyed by phone number in App.Contacts.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// GameSpec describes a game variant that matches reference by SpecID.
type GameSpec struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BoardSize  int    `json:"boardSize"`
	Dictionary string `json:"dictionary"`
}

// Match is one ongoing or finished game against an opponent.
type Match struct {
	ID            string `json:"id"`
	SpecID        string `json:"specId"`
	Opponent      string `json:"opponent"`
	MyScore       int    `json:"myScore"`
	TheirScore    int    `json:"theirScore"`
	LastUpdatedOn int64  `json:"lastUpdatedOn"` // unix milliseconds
}

// NewMatch creates a match against opponent under the given spec.
func NewMatch(specID, opponent string, now time.Time) Match {
	return Match{
		ID:            uuid.NewString(),
		SpecID:        specID,
		Opponent:      opponent,
		LastUpdatedOn: now.UnixMilli(),
	}
}

// App is the full application state snapshot. It is a plain value:
// deep-copyable via Clone, JSON-serializable, no cycles.
type App struct {
	GameSpecs map[string]GameSpec `json:"gameSpecs"`
	Matches   []Match             `json:"matches"`
	Contacts  map[string]Contact  `json:"contactsByPhone"`
	MyUser    User                `json:"myUser"`
	Window    Dimensions          `json:"windowDimensions"`
}

// Default returns the fallback state used when no snapshot exists and as
// the base for the trimmer's last-resort step.
func Default() App {
	return App{
		GameSpecs: map[string]GameSpec{},
		Contacts:  map[string]Contact{},
	}
}

// Clone returns a deep copy. Nil-ness of maps and slices is preserved so
// a clone compares equal to its source.
func (a App) Clone() App {
	dup := a
	if a.GameSpecs != nil {
		dup.GameSpecs = make(map[string]GameSpec, len(a.GameSpecs))
		for id, spec := range a.GameSpecs {
			dup.GameSpecs[id] = spec
		}
	}
	if a.Matches != nil {
		dup.Matches = make([]Match, len(a.Matches))
		copy(dup.Matches, a.Matches)
	}
	if a.Contacts != nil {
		dup.Contacts = make(map[string]Contact, len(a.Contacts))
		for phone, c := range a.Contacts {
			dup.Contacts[phone] = c
		}
	}
	return dup
}
