package notify

import (
	"sync"
	"time"

	"github.com/matchbook-tui/matchbook/internal/state"
)

// ResizeThrottle rate-limits window-dimension updates: the first signal
// dispatches immediately (leading edge), further signals are ignored
// for one throttle window, and when the window expires a single
// trailing update is applied if the dimensions are still stale.
//
// The throttle only decides; the host event loop owns the timer. When
// Observe reports armTimer, the host schedules Expire after Window().
// The throttled flag guarantees at most one pending timer.
type ResizeThrottle struct {
	mu        sync.Mutex
	store     *state.Store
	window    time.Duration
	throttled bool
}

// NewResizeThrottle creates a throttle dispatching into store with the
// given quiet window.
func NewResizeThrottle(store *state.Store, window time.Duration) *ResizeThrottle {
	if window <= 0 {
		window = 250 * time.Millisecond
	}
	return &ResizeThrottle{store: store, window: window}
}

// Window returns the quiet window the host should schedule Expire after.
func (r *ResizeThrottle) Window() time.Duration { return r.window }

// Observe handles one resize signal. Dimensions identical to the stored
// ones are dropped outright so redundant host events cause no state
// churn. Otherwise the update is dispatched unless a window is open;
// armTimer reports whether the caller must schedule an Expire call.
func (r *ResizeThrottle) Observe(d state.Dimensions) (armTimer bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d == r.store.State().Window {
		return false
	}
	if r.throttled {
		return false
	}
	r.store.Dispatch(state.SetWindowDimensions(d))
	r.throttled = true
	return true
}

// Expire closes the quiet window. current is the most recent dimensions
// the host observed; if they drifted from the stored ones while the
// window was open, one trailing update is dispatched.
func (r *ResizeThrottle) Expire(current state.Dimensions) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.throttled = false
	if current != r.store.State().Window {
		r.store.Dispatch(state.SetWindowDimensions(current))
	}
}
