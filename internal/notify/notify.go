package notify

import (
	"github.com/matchbook-tui/matchbook/internal/persist"
	"github.com/matchbook-tui/matchbook/internal/state"
	"github.com/matchbook-tui/matchbook/internal/storage"
)

// Attach registers the saver as the store's one change listener, but
// only when the storage backend probes as usable. In headless or
// test environments the probe fails, nothing is registered, and no
// write is ever attempted. Reports whether persistence is active.
func Attach(store *state.Store, adapter storage.Adapter, saver *persist.Saver) bool {
	if !adapter.Probe() {
		return false
	}
	store.Subscribe(saver.Save)
	return true
}
