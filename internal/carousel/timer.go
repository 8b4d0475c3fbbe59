// pattern: Imperative Shell

package carousel

import (
	"sync"
	"time"
)

// DwellTimer is a cancellable single-slot timer: at most one callback is
// scheduled at a time, and starting a new dwell cancels the previous one.
// Cancel stops the underlying timer rather than letting a stale callback
// fire into the generation check.
type DwellTimer struct {
	mu sync.Mutex
	t  *time.Timer
}

// NewDwellTimer returns an empty timer slot.
func NewDwellTimer() *DwellTimer {
	return &DwellTimer{}
}

// Start schedules fn after delay, cancelling any previously scheduled
// callback. fn runs on a background goroutine owned by the runtime timer.
func (d *DwellTimer) Start(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.t != nil {
		d.t.Stop()
	}
	d.t = time.AfterFunc(delay, fn)
}

// Cancel stops the pending callback, if any.
func (d *DwellTimer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.t != nil {
		d.t.Stop()
		d.t = nil
	}
}
