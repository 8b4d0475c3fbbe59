package carousel

import "testing"

func TestFocusedColumn(t *testing.T) {
	m := ComputeMetrics(1600, DefaultConstants())

	tests := []struct {
		name   string
		offset float64
		count  int
		want   int
	}{
		{"zero offset focuses first column", 0, 5, 0},
		{"offset centering column 3", 1296, 5, 3},
		{"offset past last column clamps to last", 99999, 5, 4},
		{"half a stride keeps nearer column", 215, 5, 0},
		{"just past half a stride flips", 217, 5, 1},
		{"single column regardless of offset", 5000, 1, 0},
		{"empty sequence defaults to zero", 400, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FocusedColumn(tt.offset, m, tt.count); got != tt.want {
				t.Errorf("FocusedColumn(%v) = %d, want %d", tt.offset, got, tt.want)
			}
		})
	}
}

func TestFocusedColumn_AlwaysInRange(t *testing.T) {
	m := ComputeMetrics(1280, DefaultConstants())
	for count := 1; count <= 12; count++ {
		for offset := float64(-500); offset < 8000; offset += 61.5 {
			got := FocusedColumn(offset, m, count)
			if got < 0 || got >= count {
				t.Fatalf("FocusedColumn(%v, count=%d) = %d, out of range", offset, count, got)
			}
		}
	}
}

func TestFocusedColumn_Idempotent(t *testing.T) {
	m := ComputeMetrics(1600, DefaultConstants())
	for offset := float64(0); offset < 4000; offset += 97 {
		first := FocusedColumn(offset, m, 7)
		second := FocusedColumn(offset, m, 7)
		if first != second {
			t.Fatalf("offset %v: got %d then %d", offset, first, second)
		}
	}
}

func TestFocusedColumn_TieBreaksToLowestIndex(t *testing.T) {
	m := ComputeMetrics(1600, DefaultConstants())
	// Exactly halfway between columns 0 and 1 both centers are 216 away
	// from the viewport center; the scan keeps the first minimum.
	if got := FocusedColumn(216, m, 5); got != 0 {
		t.Errorf("FocusedColumn at exact tie = %d, want 0", got)
	}
}

func TestFocusStateFor(t *testing.T) {
	tests := []struct {
		i, focused int
		want       FocusState
	}{
		{3, 3, FocusFocused},
		{2, 3, FocusAdjacent},
		{4, 3, FocusAdjacent},
		{0, 3, FocusFar},
		{6, 3, FocusFar},
	}
	for _, tt := range tests {
		if got := FocusStateFor(tt.i, tt.focused); got != tt.want {
			t.Errorf("FocusStateFor(%d, %d) = %v, want %v", tt.i, tt.focused, got, tt.want)
		}
	}
}
