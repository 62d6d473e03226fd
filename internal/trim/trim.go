package trim

import (
	"github.com/matchbook-tui/matchbook/internal/state"
)

// Once applies a single eviction step to s and returns the reduced
// state. The input is never mutated; callers loop until the result
// fits their budget.
//
// Eviction order, cheapest loss first:
//
//  1. Game specs referenced by no match are cache-like derived data:
//     delete all orphans in one pass.
//  2. Otherwise drop the match with the oldest LastUpdatedOn (first
//     occurrence wins ties).
//  3. Otherwise clear the contact index wholesale.
//  4. Otherwise fall back to the default state with only the current
//     user carried over. This step is idempotent, so it is a safe
//     fixed point for unbounded trim loops.
func Once(s state.App) state.App {
	next := s.Clone()

	if len(next.GameSpecs) > 0 {
		referenced := make(map[string]bool, len(next.Matches))
		for _, m := range next.Matches {
			referenced[m.SpecID] = true
		}
		orphaned := false
		for id := range next.GameSpecs {
			if !referenced[id] {
				delete(next.GameSpecs, id)
				orphaned = true
			}
		}
		if orphaned {
			return next
		}
	}

	if len(next.Matches) > 0 {
		oldest := 0
		for i, m := range next.Matches {
			if m.LastUpdatedOn < next.Matches[oldest].LastUpdatedOn {
				oldest = i
			}
		}
		next.Matches = append(next.Matches[:oldest], next.Matches[oldest+1:]...)
		return next
	}

	if len(next.Contacts) > 0 {
		next.Contacts = map[string]state.Contact{}
		return next
	}

	floor := state.Default()
	floor.MyUser = next.MyUser
	return floor
}
