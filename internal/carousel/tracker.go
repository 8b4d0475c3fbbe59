// pattern: Functional Core

package carousel

import "math"

// FocusState describes a column's rendering tier relative to the focused
// column. It is derived from index distance and never stored per column.
type FocusState int

const (
	FocusFocused FocusState = iota
	FocusAdjacent
	FocusFar
)

func (f FocusState) String() string {
	switch f {
	case FocusFocused:
		return "focused"
	case FocusAdjacent:
		return "adjacent"
	default:
		return "far"
	}
}

// FocusStateFor returns the focus state of column i given the currently
// focused index.
func FocusStateFor(i, focused int) FocusState {
	d := i - focused
	if d < 0 {
		d = -d
	}
	switch d {
	case 0:
		return FocusFocused
	case 1:
		return FocusAdjacent
	default:
		return FocusFar
	}
}

// FocusedColumn returns the index of the column whose center is nearest
// the viewport's horizontal center at the given scroll offset. Ties
// resolve to the lowest index encountered during the scan. The result is
// always a valid index into the column sequence; a non-positive count
// yields 0.
func FocusedColumn(scrollOffset float64, m Metrics, count int) int {
	if count <= 0 {
		return 0
	}
	viewCenter := m.ViewportWidth / 2
	best := 0
	bestDist := math.Inf(1)
	for i := 0; i < count; i++ {
		columnCenter := m.ColumnStart(i) - scrollOffset + m.ColumnWidth/2
		if d := math.Abs(columnCenter - viewCenter); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
