package tui

import "testing"

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(120, 40)

	if l.Header.Height != headerHeight || l.Header.Y != 0 {
		t.Errorf("Header = %+v", l.Header)
	}
	if l.Content.Y != headerHeight {
		t.Errorf("Content.Y = %d, want %d", l.Content.Y, headerHeight)
	}
	if l.Content.Height != 40-headerHeight-statusBarHeight {
		t.Errorf("Content.Height = %d", l.Content.Height)
	}
	if l.StatusBar.Y != l.Content.Y+l.Content.Height {
		t.Errorf("StatusBar.Y = %d", l.StatusBar.Y)
	}

	if l.TOC.X != paddingLeft || l.TOC.Width != tocWidth {
		t.Errorf("TOC = %+v", l.TOC)
	}
	if l.Feeds.X != paddingLeft+tocWidth+columnGap {
		t.Errorf("Feeds.X = %d", l.Feeds.X)
	}
	if l.Feeds.X+l.Feeds.Width != 120 {
		t.Errorf("Feeds should extend to the right edge: %+v", l.Feeds)
	}
}

func TestComputeLayout_TinyTerminal(t *testing.T) {
	l := ComputeLayout(20, 5)
	if l.Content.Height < 4 {
		t.Errorf("Content.Height = %d, want >= 4", l.Content.Height)
	}
	if l.Feeds.Width < 1 {
		t.Errorf("Feeds.Width = %d, want >= 1", l.Feeds.Width)
	}
}

func TestCellConstants(t *testing.T) {
	c := CellConstants()
	if c.ColumnWidth != columnWidth || c.Gap != columnGap {
		t.Errorf("constants = %+v", c)
	}
	if c.TOCWidth != tocWidth || c.PaddingLeft != paddingLeft {
		t.Errorf("constants = %+v", c)
	}
}

func TestRegionContains(t *testing.T) {
	r := Region{X: 2, Y: 2, Width: 24, Height: 10}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 10, 5, true},
		{"top-left corner", 2, 2, true},
		{"right edge exclusive", 26, 5, false},
		{"bottom edge exclusive", 10, 12, false},
		{"left of region", 1, 5, false},
		{"above region", 10, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
