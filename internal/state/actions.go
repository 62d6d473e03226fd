package state

import (
	"fmt"
	"strings"
)

// Kind discriminates the action union.
type Kind string

const (
	KindReplaceState        Kind = "replaceState"
	KindSetWindowDimensions Kind = "setWindowDimensions"
	KindUpsertMatch         Kind = "upsertMatch"
	KindRemoveMatch         Kind = "removeMatch"
	KindAddGameSpec         Kind = "addGameSpec"
	KindSetContacts         Kind = "setContacts"
	KindSetUser             Kind = "setUser"
)

// Action is a tagged state update. Actions are only built through the
// constructors below, which validate their payloads up front; a
// malformed action is a programming bug and panics immediately rather
// than surfacing later as silent state corruption.
type Action struct {
	kind    Kind
	payload any
}

// Kind reports the action's discriminant.
func (a Action) Kind() Kind { return a.kind }

// ReplaceState swaps in a whole new application state. Used by the
// startup path to install the rehydrated snapshot.
func ReplaceState(next App) Action {
	return Action{kind: KindReplaceState, payload: next.Clone()}
}

// SetWindowDimensions records a new window size.
func SetWindowDimensions(d Dimensions) Action {
	if d.Width < 0 || d.Height < 0 {
		panic(fmt.Sprintf("state: negative window dimensions %dx%d", d.Width, d.Height))
	}
	return Action{kind: KindSetWindowDimensions, payload: d}
}

// UpsertMatch inserts m or replaces the match with the same ID in place.
func UpsertMatch(m Match) Action {
	if strings.TrimSpace(m.ID) == "" {
		panic("state: match has empty ID")
	}
	return Action{kind: KindUpsertMatch, payload: m}
}

// RemoveMatch deletes the match with the given ID; unknown IDs are a no-op.
func RemoveMatch(id string) Action {
	if strings.TrimSpace(id) == "" {
		panic("state: remove match with empty ID")
	}
	return Action{kind: KindRemoveMatch, payload: id}
}

// AddGameSpec registers a game variant.
func AddGameSpec(spec GameSpec) Action {
	if strings.TrimSpace(spec.ID) == "" {
		panic("state: game spec has empty ID")
	}
	return Action{kind: KindAddGameSpec, payload: spec}
}

// SetContacts replaces the phone-number index wholesale.
func SetContacts(contacts map[string]Contact) Action {
	dup := make(map[string]Contact, len(contacts))
	for phone, c := range contacts {
		dup[phone] = c
	}
	return Action{kind: KindSetContacts, payload: dup}
}

// SetUser replaces the current user record.
func SetUser(u User) Action {
	return Action{kind: KindSetUser, payload: u}
}

// reduce applies a to s and returns the next state. s is not mutated.
func reduce(s App, a Action) App {
	switch a.kind {
	case KindReplaceState:
		return a.payload.(App).Clone()

	case KindSetWindowDimensions:
		next := s.Clone()
		next.Window = a.payload.(Dimensions)
		return next

	case KindUpsertMatch:
		m := a.payload.(Match)
		next := s.Clone()
		for i := range next.Matches {
			if next.Matches[i].ID == m.ID {
				next.Matches[i] = m
				return next
			}
		}
		next.Matches = append(next.Matches, m)
		return next

	case KindRemoveMatch:
		id := a.payload.(string)
		next := s.Clone()
		for i := range next.Matches {
			if next.Matches[i].ID == id {
				next.Matches = append(next.Matches[:i], next.Matches[i+1:]...)
				break
			}
		}
		return next

	case KindAddGameSpec:
		spec := a.payload.(GameSpec)
		next := s.Clone()
		if next.GameSpecs == nil {
			next.GameSpecs = map[string]GameSpec{}
		}
		next.GameSpecs[spec.ID] = spec
		return next

	case KindSetContacts:
		contacts := a.payload.(map[string]Contact)
		next := s.Clone()
		next.Contacts = make(map[string]Contact, len(contacts))
		for phone, c := range contacts {
			next.Contacts[phone] = c
		}
		return next

	case KindSetUser:
		next := s.Clone()
		next.MyUser = a.payload.(User)
		return next
	}

	panic(fmt.Sprintf("state: dispatch of unknown action kind %q", a.kind))
}
