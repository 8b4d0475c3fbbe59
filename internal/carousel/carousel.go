// pattern: Functional Core

package carousel

// State is the single source of truth for the carousel's interaction
// state: layout metrics, the raw scroll offset, the derived focused
// index, and the hover machine. Data flows one way: scroll writes feed
// the tracker, navigation produces scroll targets only, and rendering
// reads the derived values.
type State struct {
	metrics      Metrics
	count        int
	scrollOffset float64
	focusedIndex int
	hover        Hover
}

// NewState builds carousel state for count columns in a viewport of the
// given width. Focus defaults to 0 before any scroll occurs.
func NewState(count int, viewportWidth float64, c Constants) *State {
	return &State{
		metrics: ComputeMetrics(viewportWidth, c),
		count:   count,
		hover:   NewHover(),
	}
}

// Resize recomputes the layout metrics for a new viewport width and
// re-derives focus from the unchanged scroll offset.
func (s *State) Resize(viewportWidth float64) {
	s.metrics = ComputeMetrics(viewportWidth, s.metrics.Constants)
	s.focusedIndex = FocusedColumn(s.scrollOffset, s.metrics, s.count)
}

// SetCount replaces the column count (wholesale category reload) and
// re-clamps the focused index so downstream consumers never see an
// out-of-range value.
func (s *State) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	s.count = count
	s.focusedIndex = FocusedColumn(s.scrollOffset, s.metrics, s.count)
}

// Scroll records a new scroll offset and re-derives the focused index.
// Negative offsets clamp to zero.
func (s *State) Scroll(offset float64) {
	if offset < 0 {
		offset = 0
	}
	s.scrollOffset = offset
	s.focusedIndex = FocusedColumn(offset, s.metrics, s.count)
}

// Select returns the scroll offset that centers the column at index,
// clamping the index into range. It does not touch the focused index;
// focus follows from the Scroll calls the caller makes on the way to the
// target.
func (s *State) Select(index int) float64 {
	if s.count == 0 {
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index >= s.count {
		index = s.count - 1
	}
	return ScrollTarget(index, s.metrics)
}

// ScrollOffset returns the current raw scroll offset.
func (s *State) ScrollOffset() float64 { return s.scrollOffset }

// FocusedIndex returns the index of the column nearest the viewport
// center.
func (s *State) FocusedIndex() int { return s.focusedIndex }

// Count returns the column count.
func (s *State) Count() int { return s.count }

// Metrics returns the current layout metrics.
func (s *State) Metrics() Metrics { return s.metrics }

// FocusStateFor returns the derived focus state of column i.
func (s *State) FocusStateFor(i int) FocusState {
	return FocusStateFor(i, s.focusedIndex)
}

// HoverEnter begins a dwell on a table-of-contents entry and returns the
// timer generation the caller must arm.
func (s *State) HoverEnter(index int) uint64 {
	return s.hover.Enter(index)
}

// HoverLeave clears any pending or revealed disclosure.
func (s *State) HoverLeave() {
	s.hover.Leave()
}

// HoverFired delivers a dwell timer fire; stale generations are
// discarded.
func (s *State) HoverFired(gen uint64) bool {
	return s.hover.TimerFired(gen)
}

// Hover returns a copy of the hover machine for rendering.
func (s *State) Hover() Hover { return s.hover }
