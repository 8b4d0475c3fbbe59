// pattern: Functional Core

// Package carousel implements the interaction state of a horizontally
// scrollable column carousel: layout metrics, scroll-position to
// focus-index tracking, centering navigation, and hover disclosure.
// All computation is pure; the rendering layer owns events and timers.
package carousel

// Constants are the fixed horizontal layout inputs. Units are abstract:
// the defaults below are browser-scale pixels, the TUI supplies terminal
// cell counts instead.
type Constants struct {
	ColumnWidth float64
	Gap         float64
	TOCWidth    float64
	PaddingLeft float64
}

// DefaultConstants returns the reference layout constants.
func DefaultConstants() Constants {
	return Constants{
		ColumnWidth: 400,
		Gap:         32,
		TOCWidth:    280,
		PaddingLeft: 32,
	}
}

// Metrics holds offsets derived from the viewport width and the layout
// constants. Metrics are recomputed wholesale on every resize and never
// mutated in place.
type Metrics struct {
	Constants
	ViewportWidth float64
	InitialOffset float64
	SpacerWidth   float64
}

// ComputeMetrics derives layout metrics for the given viewport width.
// The spacer pads the column strip so that the first column sits centered
// in the viewport at scroll offset zero. On viewports too narrow for
// centering the spacer clamps to zero and the first column starts right
// after the table of contents.
func ComputeMetrics(viewportWidth float64, c Constants) Metrics {
	targetStart := (viewportWidth - c.ColumnWidth) / 2
	currentStart := c.PaddingLeft + c.TOCWidth + c.Gap
	spacer := targetStart - currentStart
	if spacer < 0 {
		spacer = 0
	}
	return Metrics{
		Constants:     c,
		ViewportWidth: viewportWidth,
		InitialOffset: c.PaddingLeft,
		SpacerWidth:   spacer,
	}
}

// ContentBefore returns the distance from the viewport's left edge to the
// start of the first column at scroll offset zero.
func (m Metrics) ContentBefore() float64 {
	return m.PaddingLeft + m.TOCWidth + m.Gap + m.SpacerWidth
}

// EffectiveColumnWidth is the horizontal stride between column starts.
func (m Metrics) EffectiveColumnWidth() float64 {
	return m.ColumnWidth + m.Gap
}

// ColumnStart returns the unscrolled start position of column i.
func (m Metrics) ColumnStart(i int) float64 {
	return m.ContentBefore() + float64(i)*m.EffectiveColumnWidth()
}
