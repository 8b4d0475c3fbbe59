// pattern: Functional Core

package tui

import "feeddeck/internal/carousel"

// Region defines a rectangular area within the terminal.
type Region struct {
	X      int // Left position (0-indexed)
	Y      int // Top position (0-indexed)
	Width  int // Width in cells
	Height int // Height in lines
}

// Layout holds computed regions for all UI components.
type Layout struct {
	Header    Region // App title + web address (2 lines)
	TOC       Region // Table of contents (left side, fixed width)
	Feeds     Region // Scrollable column strip (right of the TOC)
	Content   Region // TOC + feeds together
	StatusBar Region // Status bar (1 line)
}

// Fixed heights for chrome elements
const (
	headerHeight    = 2 // Title + web address
	statusBarHeight = 1 // Status bar
)

// Horizontal layout constants in terminal cells. These feed the carousel
// metrics, which treat units as abstract.
const (
	columnWidth = 36
	columnGap   = 2
	tocWidth    = 24
	paddingLeft = 2
)

// CellConstants returns the carousel layout constants in terminal cells.
func CellConstants() carousel.Constants {
	return carousel.Constants{
		ColumnWidth: columnWidth,
		Gap:         columnGap,
		TOCWidth:    tocWidth,
		PaddingLeft: paddingLeft,
	}
}

// ComputeLayout calculates regions based on terminal dimensions.
func ComputeLayout(width, height int) Layout {
	contentHeight := height - headerHeight - statusBarHeight
	if contentHeight < 4 {
		contentHeight = 4
	}

	feedsX := paddingLeft + tocWidth + columnGap
	feedsWidth := width - feedsX
	if feedsWidth < 1 {
		feedsWidth = 1
	}

	y := 0
	header := Region{X: 0, Y: y, Width: width, Height: headerHeight}
	y += headerHeight

	content := Region{X: 0, Y: y, Width: width, Height: contentHeight}
	toc := Region{X: paddingLeft, Y: y, Width: tocWidth, Height: contentHeight}
	feeds := Region{X: feedsX, Y: y, Width: feedsWidth, Height: contentHeight}
	y += contentHeight

	statusBar := Region{X: 0, Y: y, Width: width, Height: statusBarHeight}

	return Layout{
		Header:    header,
		TOC:       toc,
		Feeds:     feeds,
		Content:   content,
		StatusBar: statusBar,
	}
}

// Contains reports whether the cell (x, y) falls inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
