// pattern: Functional Core

package carousel

// ScrollTarget returns the scroll offset that horizontally centers the
// column at index. Negative targets (low indices on narrow viewports)
// clamp to zero.
//
// Navigation never writes the focused index directly: the caller scrolls
// toward the returned target and focus is re-derived from the actual
// offset, so focus matches visual position even when an animated scroll
// is interrupted mid-flight.
func ScrollTarget(index int, m Metrics) float64 {
	target := m.ColumnStart(index) - (m.ViewportWidth-m.ColumnWidth)/2
	if target < 0 {
		target = 0
	}
	return target
}
