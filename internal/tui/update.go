// pattern: Imperative Shell

package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"feeddeck/internal/carousel"
	"feeddeck/internal/events"
	"feeddeck/internal/feed"
)

// Scroll animation tuning. Each frame moves a fixed fraction of the
// remaining distance and snaps when close enough.
const (
	animFrameInterval = 33 * time.Millisecond
	animEaseFactor    = 0.35
	animSnapDistance  = 0.5
)

// wheelStep is the scroll distance in cells per wheel tick.
const wheelStep = 4

// animFrameMsg drives one step of the eased scroll animation.
type animFrameMsg struct{}

// hoverDwellMsg is sent by the dwell timer. The generation token is
// checked against the hover machine so a superseded dwell never reveals.
type hoverDwellMsg struct {
	gen uint64
}

// categoriesReloadedMsg delivers the result of a categories file reload.
type categoriesReloadedMsg struct {
	categories []feed.Category
	err        error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.Resize(float64(msg.Width))

		layout := ComputeLayout(m.width, m.height)
		if m.readerReady {
			m.reader.Width = layout.Content.Width - 4
			m.reader.Height = layout.Content.Height - 2
		}

		m.publishSnapshot()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case animFrameMsg:
		return m.handleAnimFrame()

	case hoverDwellMsg:
		if m.state.HoverFired(msg.gen) {
			m.logger.Debug("hover revealed", "index", m.state.Hover().Index())
		}
		return m, nil

	case events.ArchiveChangedMsg:
		m.logger.Info("categories file changed", "path", msg.Path)
		return m, m.reloadCategories(msg.Path)

	case categoriesReloadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.categories = msg.categories
		m.state.SetCount(len(msg.categories))
		m.state.HoverLeave()
		m.dwell.Cancel()
		m.stopAnimation()
		m.publishSnapshot()
		return m, nil

	case events.WebListenURLMsg:
		m.webURL = msg.URL
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// The reader overlay captures everything except close and quit.
	if m.readerOpen {
		if key.Matches(msg, m.keys.Close) || key.Matches(msg, m.keys.Reader) {
			m.readerOpen = false
			return m, nil
		}
		var cmd tea.Cmd
		m.reader, cmd = m.reader.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return m.navigateTo(m.state.FocusedIndex() - 1)

	case key.Matches(msg, m.keys.Next):
		return m.navigateTo(m.state.FocusedIndex() + 1)

	case key.Matches(msg, m.keys.First):
		return m.navigateTo(0)

	case key.Matches(msg, m.keys.Last):
		return m.navigateTo(m.state.Count() - 1)

	case key.Matches(msg, m.keys.Reader):
		return m.openReader(), nil

	case key.Matches(msg, m.keys.Close):
		m.state.HoverLeave()
		m.dwell.Cancel()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCategories(m.cfg.Categories)
	}

	// Digits jump straight to a column.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return m.navigateTo(int(s[0] - '1'))
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.readerOpen {
		var cmd tea.Cmd
		m.reader, cmd = m.reader.Update(msg)
		return m, cmd
	}

	layout := ComputeLayout(m.width, m.height)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		// Manual scrolling takes over from any running animation.
		m.stopAnimation()
		m.state.Scroll(m.state.ScrollOffset() - wheelStep)
		m.publishSnapshot()
		return m, nil

	case tea.MouseButtonWheelDown:
		m.stopAnimation()
		m.state.Scroll(m.state.ScrollOffset() + wheelStep)
		m.publishSnapshot()
		return m, nil
	}

	hit := m.tocHitTest(layout, msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		return m.handleHoverMotion(hit)

	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			if hit >= 0 {
				return m.navigateTo(hit)
			}
			if col := m.columnHitTest(layout, msg.X, msg.Y); col >= 0 {
				return m.navigateTo(col)
			}
		}
	}

	return m, nil
}

// columnHitTest maps a terminal cell inside the feeds region to the
// column rendered there, or -1 for the spacer and the gaps between
// columns.
func (m Model) columnHitTest(layout Layout, x, y int) int {
	if !layout.Feeds.Contains(x, y) {
		return -1
	}
	metrics := m.state.Metrics()
	stripX := float64(x-layout.Feeds.X) + m.state.ScrollOffset() - metrics.SpacerWidth
	if stripX < 0 {
		return -1
	}
	i := int(stripX / metrics.EffectiveColumnWidth())
	if i >= m.state.Count() {
		return -1
	}
	if stripX-float64(i)*metrics.EffectiveColumnWidth() >= metrics.ColumnWidth {
		return -1 // gap between columns
	}
	return i
}

// handleHoverMotion feeds pointer position into the dwell machine. A new
// entry restarts the dwell timer; leaving cancels the pending timer
// outright so a stale fire cannot arrive at all.
func (m Model) handleHoverMotion(hit int) (tea.Model, tea.Cmd) {
	current := m.state.Hover().Index()
	if hit == current {
		return m, nil
	}

	if hit < 0 {
		m.state.HoverLeave()
		m.dwell.Cancel()
		return m, nil
	}

	gen := m.state.HoverEnter(hit)
	sink := m.sink
	m.dwell.Start(carousel.DwellDelay, func() {
		sink.Send(hoverDwellMsg{gen: gen})
	})
	return m, nil
}

// tocHitTest maps a terminal cell to a table-of-contents entry index, or
// -1 when the cell is outside the TOC or on a non-entry line.
func (m Model) tocHitTest(layout Layout, x, y int) int {
	if !layout.TOC.Contains(x, y) {
		return -1
	}
	lines := buildTOCLines(m.categories, m.state.FocusedIndex(), m.state.Hover(), layout.TOC.Width, layout.TOC.Height)
	row := y - layout.TOC.Y
	if row < 0 || row >= len(lines) {
		return -1
	}
	return lines[row].catIndex
}

// navigateTo starts an eased scroll toward the column at index. Focus is
// not written here; it follows from the offsets the animation produces.
func (m Model) navigateTo(index int) (tea.Model, tea.Cmd) {
	if m.state.Count() == 0 {
		return m, nil
	}
	target := m.state.Select(index)
	if target == m.state.ScrollOffset() {
		return m, nil
	}
	m.animTarget = target
	m.animating = true
	return m, m.animTick()
}

func (m Model) handleAnimFrame() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}

	diff := m.animTarget - m.state.ScrollOffset()
	if math.Abs(diff) < animSnapDistance {
		m.state.Scroll(m.animTarget)
		m.stopAnimation()
		m.publishSnapshot()
		return m, nil
	}

	m.state.Scroll(m.state.ScrollOffset() + diff*animEaseFactor)
	m.publishSnapshot()
	return m, m.animTick()
}

func (m *Model) stopAnimation() {
	m.animating = false
}

func (m Model) animTick() tea.Cmd {
	return tea.Tick(animFrameInterval, func(time.Time) tea.Msg {
		return animFrameMsg{}
	})
}

// openReader opens the focused category in a scrollable overlay.
func (m Model) openReader() Model {
	idx := m.state.FocusedIndex()
	if idx < 0 || idx >= len(m.categories) {
		return m
	}

	layout := ComputeLayout(m.width, m.height)
	if !m.readerReady {
		m.reader = viewport.New(layout.Content.Width-4, layout.Content.Height-2)
		m.readerReady = true
	} else {
		m.reader.Width = layout.Content.Width - 4
		m.reader.Height = layout.Content.Height - 2
	}

	m.reader.SetContent(m.renderReaderContent(m.categories[idx], m.reader.Width))
	m.reader.GotoTop()
	m.readerOpen = true
	return m
}

// reloadCategories re-reads the categories file off the update loop.
func (m Model) reloadCategories(path string) tea.Cmd {
	logger := m.logger
	return func() tea.Msg {
		categories, err := feed.LoadCategories(path)
		if err != nil {
			logger.Error("reload categories", "path", path, "error", err)
			return categoriesReloadedMsg{err: err}
		}
		logger.Info("categories reloaded", "path", path, "count", len(categories))
		return categoriesReloadedMsg{categories: categories}
	}
}
