// pattern: Functional Core

package carousel

import "time"

// DwellDelay is the hover duration before an entry's description is
// disclosed.
const DwellDelay = 1000 * time.Millisecond

// HoverPhase is the disclosure state of the table of contents.
type HoverPhase int

const (
	HoverIdle HoverPhase = iota
	HoverPending
	HoverRevealed
)

func (p HoverPhase) String() string {
	switch p {
	case HoverPending:
		return "pending"
	case HoverRevealed:
		return "revealed"
	default:
		return "idle"
	}
}

// Hover tracks the dwell-to-disclose state machine. At most one entry is
// pending or revealed at a time; entering a new entry supersedes any
// previous dwell. Generation tokens guarantee that a timer armed for a
// superseded dwell can never reveal, even if the host environment delivers
// the fire after cancellation.
type Hover struct {
	phase HoverPhase
	index int
	gen   uint64
}

// NewHover returns an idle hover machine.
func NewHover() Hover {
	return Hover{index: -1}
}

// Enter begins a dwell on the given entry, superseding any previous
// pending or revealed entry. It returns the generation token the caller
// must pass back when the dwell timer fires.
func (h *Hover) Enter(index int) uint64 {
	h.gen++
	h.phase = HoverPending
	h.index = index
	return h.gen
}

// Leave clears any pending or revealed disclosure.
func (h *Hover) Leave() {
	h.gen++
	h.phase = HoverIdle
	h.index = -1
}

// TimerFired transitions a pending dwell to revealed and reports whether
// the transition happened. Fires carrying a stale generation are
// discarded.
func (h *Hover) TimerFired(gen uint64) bool {
	if gen != h.gen || h.phase != HoverPending {
		return false
	}
	h.phase = HoverRevealed
	return true
}

// Phase returns the current disclosure phase.
func (h Hover) Phase() HoverPhase { return h.phase }

// Index returns the entry currently pending or revealed, or -1.
func (h Hover) Index() int { return h.index }

// Revealed returns the revealed entry index, if any.
func (h Hover) Revealed() (int, bool) {
	if h.phase != HoverRevealed {
		return -1, false
	}
	return h.index, true
}
