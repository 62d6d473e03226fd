package trim

import (
	"reflect"
	"testing"

	"github.com/matchbook-tui/matchbook/internal/snapshot"
	"github.com/matchbook-tui/matchbook/internal/state"
)

func TestOnce_DeletesAllOrphanedSpecsInOnePass(t *testing.T) {
	s := state.Default()
	s.GameSpecs["used"] = state.GameSpec{ID: "used", Name: "Classic"}
	s.GameSpecs["orphan-a"] = state.GameSpec{ID: "orphan-a"}
	s.GameSpecs["orphan-b"] = state.GameSpec{ID: "orphan-b"}
	s.Matches = []state.Match{{ID: "m1", SpecID: "used", LastUpdatedOn: 5}}

	got := Once(s)

	if len(got.GameSpecs) != 1 {
		t.Fatalf("specs after trim = %d, want 1", len(got.GameSpecs))
	}
	if _, ok := got.GameSpecs["used"]; !ok {
		t.Fatal("referenced spec was deleted")
	}
	if !reflect.DeepEqual(got.Matches, s.Matches) {
		t.Fatalf("match list changed: %+v", got.Matches)
	}
}

func TestOnce_RemovesOldestMatch(t *testing.T) {
	s := state.Default()
	s.Matches = []state.Match{
		{ID: "newer", SpecID: "s", LastUpdatedOn: 200},
		{ID: "older", SpecID: "s", LastUpdatedOn: 100},
	}
	s.GameSpecs["s"] = state.GameSpec{ID: "s"}

	got := Once(s)

	if len(got.Matches) != 1 || got.Matches[0].ID != "newer" {
		t.Fatalf("matches after trim = %+v, want only newer", got.Matches)
	}
}

func TestOnce_OldestTieBreaksOnFirstOccurrence(t *testing.T) {
	s := state.Default()
	s.Matches = []state.Match{
		{ID: "first", SpecID: "s", LastUpdatedOn: 100},
		{ID: "second", SpecID: "s", LastUpdatedOn: 100},
	}
	s.GameSpecs["s"] = state.GameSpec{ID: "s"}

	got := Once(s)

	if len(got.Matches) != 1 || got.Matches[0].ID != "second" {
		t.Fatalf("matches after trim = %+v, want first occurrence removed", got.Matches)
	}
}

func TestOnce_ClearsContactsWhenNothingElseLeft(t *testing.T) {
	s := state.Default()
	s.Contacts["+15550001"] = state.Contact{Name: "Nadia", Phone: "+15550001"}
	s.Contacts["+15550002"] = state.Contact{Name: "Bo", Phone: "+15550002"}
	s.MyUser = state.User{ID: "u1", Name: "Ada"}
	s.Window = state.Dimensions{Width: 80, Height: 24}

	got := Once(s)

	if len(got.Contacts) != 0 {
		t.Fatalf("contacts after trim = %d, want 0", len(got.Contacts))
	}
	if got.MyUser != s.MyUser || got.Window != s.Window {
		t.Fatal("trim of contacts touched unrelated fields")
	}
}

func TestOnce_FloorKeepsOnlyUser(t *testing.T) {
	s := state.Default()
	s.MyUser = state.User{ID: "u1", Name: "Ada", Phone: "+15550009"}
	s.Window = state.Dimensions{Width: 80, Height: 24}

	got := Once(s)

	want := state.Default()
	want.MyUser = s.MyUser
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("floor state = %+v, want default + user", got)
	}

	// The floor is a fixed point.
	if again := Once(got); !reflect.DeepEqual(again, got) {
		t.Fatalf("floor is not idempotent: %+v", again)
	}
}

func TestOnce_DoesNotMutateInput(t *testing.T) {
	s := state.Default()
	s.GameSpecs["orphan"] = state.GameSpec{ID: "orphan"}
	s.Matches = []state.Match{{ID: "m1", SpecID: "other", LastUpdatedOn: 1}}
	before := s.Clone()

	Once(s)

	if !reflect.DeepEqual(s, before) {
		t.Fatal("Once mutated its input")
	}
}

func TestOnce_ShrinksEncodedSize(t *testing.T) {
	s := state.Default()
	s.GameSpecs["used"] = state.GameSpec{ID: "used", Name: "Classic", Dictionary: "sowpods"}
	s.GameSpecs["orphan"] = state.GameSpec{ID: "orphan", Name: "Blitz", Dictionary: "twl"}
	s.Matches = []state.Match{
		{ID: "m1", SpecID: "used", Opponent: "nadia", LastUpdatedOn: 100},
		{ID: "m2", SpecID: "used", Opponent: "bo", LastUpdatedOn: 200},
	}
	s.Contacts["+15550001"] = state.Contact{Name: "Nadia", Phone: "+15550001"}

	floor := state.Default()
	floor.MyUser = s.MyUser

	// Every step before the floor strictly shrinks the snapshot. The
	// floor step itself is exempt: it is idempotent, not shrinking.
	for step := 0; ; step++ {
		before, err := snapshot.EncodedSize(s)
		if err != nil {
			t.Fatalf("EncodedSize: %v", err)
		}
		next := Once(s)
		if reflect.DeepEqual(next, floor) {
			break
		}
		after, err := snapshot.EncodedSize(next)
		if err != nil {
			t.Fatalf("EncodedSize: %v", err)
		}
		if after >= before {
			t.Fatalf("step %d grew snapshot: %d -> %d bytes", step, before, after)
		}
		s = next
	}
}

func TestOnce_ReachesFixedPointWithinBound(t *testing.T) {
	s := state.Default()
	for _, id := range []string{"a", "b", "c"} {
		s.GameSpecs[id] = state.GameSpec{ID: id}
	}
	s.Matches = []state.Match{
		{ID: "m1", SpecID: "a", LastUpdatedOn: 3},
		{ID: "m2", SpecID: "a", LastUpdatedOn: 1},
		{ID: "m3", SpecID: "b", LastUpdatedOn: 2},
	}
	s.Contacts["+1"] = state.Contact{Name: "x", Phone: "+1"}
	s.MyUser = state.User{ID: "u1"}

	want := state.Default()
	want.MyUser = s.MyUser

	// |specs| + |matches| + 1 (contacts) + 1 (floor) steps at most.
	bound := len(s.GameSpecs) + len(s.Matches) + 2
	for i := 0; i < bound; i++ {
		s = Once(s)
	}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("state after %d trims = %+v, want floor", bound, s)
	}
}
