// package events contains message and snapshot types shared between the
// web and tui packages.
package events

// ArchiveChangedMsg is sent when the categories file changes on disk.
type ArchiveChangedMsg struct{ Path string }

// WebListenURLMsg is sent when the web server starts listening.
type WebListenURLMsg struct{ URL string }

// CategoryStatus summarizes one column for the state mirror.
type CategoryStatus struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	ItemCount int    `json:"item_count"`
	Focus     string `json:"focus"` // focused | adjacent | far
}

// Snapshot is the read-only carousel state published to the web mirror
// after every focus or offset change.
type Snapshot struct {
	ScrollOffset float64          `json:"scroll_offset"`
	FocusedIndex int              `json:"focused_index"`
	Categories   []CategoryStatus `json:"categories"`
}
