// pattern: Imperative Shell

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"feeddeck/internal/carousel"
	"feeddeck/internal/feed"
)

// tocLine is one rendered row of the table of contents, tagged with the
// category it belongs to so mouse hit-testing and rendering agree.
type tocLine struct {
	text     string
	catIndex int // -1 for non-interactive rows
	isDesc   bool
}

// buildTOCLines lays out the table of contents: one row per category,
// plus a description row under the entry whose hover dwell has revealed.
func buildTOCLines(cats []feed.Category, focused int, hover carousel.Hover, width, maxRows int) []tocLine {
	revealed, hasRevealed := hover.Revealed()

	var lines []tocLine
	for i, c := range cats {
		if len(lines) >= maxRows {
			break
		}
		label := fmt.Sprintf("%s (%d)", c.Label, len(c.Items))
		lines = append(lines, tocLine{
			text:     ansi.Truncate(label, width, "…"),
			catIndex: i,
		})
		if hasRevealed && revealed == i && c.Description != "" && len(lines) < maxRows {
			lines = append(lines, tocLine{
				text:     ansi.Truncate(c.Description, width, "…"),
				catIndex: i,
				isDesc:   true,
			})
		}
	}
	return lines
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.readerOpen {
		return m.renderReader()
	}

	layout := ComputeLayout(m.width, m.height)

	header := m.renderHeader(layout)
	content := m.renderContent(layout)
	statusBar := m.renderStatusBar(layout.StatusBar.Width)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader(layout Layout) string {
	title := m.styles.TitleStyle().Render("FeedDeck")
	sub := ""
	if m.webURL != "" {
		sub = m.styles.SubtitleStyle().Render("mirror: " + m.webURL)
	}
	return lipgloss.NewStyle().Width(layout.Header.Width).Render(title + "\n" + sub)
}

// renderContent composes the TOC and the scrolled column strip row by
// row. The TOC is fixed; the strip is sliced at the current scroll offset.
func (m Model) renderContent(layout Layout) string {
	if len(m.categories) == 0 {
		empty := m.styles.SubtitleStyle().Render("no categories loaded, run \"feeddeck import <archive>\" first")
		return lipgloss.NewStyle().
			Width(layout.Content.Width).
			Height(layout.Content.Height).
			Padding(1, 0, 0, paddingLeft).
			Render(empty)
	}

	tocRows := m.renderTOCRows(layout)
	stripRows := m.renderStripRows(layout)

	pad := strings.Repeat(" ", paddingLeft)
	gap := strings.Repeat(" ", columnGap)

	rows := make([]string, layout.Content.Height)
	for i := 0; i < layout.Content.Height; i++ {
		toc := ""
		if i < len(tocRows) {
			toc = tocRows[i]
		}
		toc += strings.Repeat(" ", max(0, tocWidth-lipgloss.Width(toc)))

		strip := ""
		if i < len(stripRows) {
			strip = stripRows[i]
		}
		rows[i] = pad + toc + gap + strip
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderTOCRows(layout Layout) []string {
	lines := buildTOCLines(m.categories, m.state.FocusedIndex(), m.state.Hover(), layout.TOC.Width, layout.TOC.Height)
	hoverIdx := m.state.Hover().Index()

	rows := make([]string, len(lines))
	for i, ln := range lines {
		switch {
		case ln.isDesc:
			rows[i] = m.styles.TOCDescriptionStyle().Render("  " + ln.text)
		case ln.catIndex == m.state.FocusedIndex():
			rows[i] = m.styles.TOCFocusedStyle().Render("▸ " + ln.text)
		case ln.catIndex == hoverIdx:
			rows[i] = m.styles.TOCHoverStyle().Render("  " + ln.text)
		default:
			rows[i] = m.styles.TOCStyle().Render("  " + ln.text)
		}
	}
	return rows
}

// renderStripRows builds the full column strip (spacer plus all columns)
// and slices each row to the window the scroll offset exposes.
func (m Model) renderStripRows(layout Layout) []string {
	metrics := m.state.Metrics()

	parts := make([]string, 0, len(m.categories)*2+1)
	if spacer := int(metrics.SpacerWidth); spacer > 0 {
		parts = append(parts, strings.Repeat(" ", spacer))
	}
	gap := strings.Repeat(" ", columnGap)
	for i := range m.categories {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, m.renderColumn(i, layout.Content.Height))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	offset := int(math.Round(m.state.ScrollOffset()))

	rows := strings.Split(strip, "\n")
	for i, row := range rows {
		row = ansi.TruncateLeft(row, offset, "")
		rows[i] = ansi.Truncate(row, layout.Feeds.Width, "")
	}
	return rows
}

// renderColumn renders one category as a bordered box of exactly
// columnWidth cells.
func (m Model) renderColumn(i, height int) string {
	c := m.categories[i]
	state := m.state.FocusStateFor(i)

	innerW := columnWidth - 2
	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}

	title := m.styles.ColumnTitleStyle(state).Render(ansi.Truncate(c.Label, innerW, "…"))
	count := m.styles.SubtitleStyle().Render(fmt.Sprintf("%d items", len(c.Items)))

	lines := []string{title, count, ""}
	for _, item := range c.Items {
		if len(lines) >= innerH {
			break
		}
		meta := fmt.Sprintf("@%s · %s", item.Author, item.CreatedAt.Format("Jan 2, 2006"))
		lines = append(lines, m.styles.SubtitleStyle().Render(ansi.Truncate(meta, innerW, "…")))
		body := ansi.Wrap(item.Text, innerW, "")
		lines = append(lines, strings.Split(body, "\n")...)
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return m.styles.ColumnStyle(state).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderReader() string {
	idx := m.state.FocusedIndex()
	label := ""
	if idx >= 0 && idx < len(m.categories) {
		label = m.categories[idx].Label
	}

	title := m.styles.TitleStyle().Render("Reading: " + label)
	help := m.styles.HelpStyle().Render("↑/↓ scroll · esc close")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.reader.View(), help)
}

// renderReaderContent renders a category's items for the reader overlay.
func (m Model) renderReaderContent(c feed.Category, width int) string {
	var sb strings.Builder
	if c.Description != "" {
		sb.WriteString(m.styles.SubtitleStyle().Render(c.Description))
		sb.WriteString("\n\n")
	}
	for _, item := range c.Items {
		meta := fmt.Sprintf("@%s · %s · ♥ %d · ⇄ %d",
			item.Author, item.CreatedAt.Format("Jan 2, 2006 15:04"), item.Favorites, item.Retweets)
		sb.WriteString(m.styles.AccentStyle().Render(meta))
		sb.WriteString("\n")
		sb.WriteString(ansi.Wrap(item.Text, width, ""))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (m Model) renderStatusBar(width int) string {
	var parts []string

	if m.state.Count() > 0 {
		idx := m.state.FocusedIndex()
		label := ""
		if idx < len(m.categories) {
			label = m.categories[idx].Label
		}
		parts = append(parts, m.styles.StatusBarStyle().Render(fmt.Sprintf("%s (%d/%d)", label, idx+1, m.state.Count())))
		parts = append(parts, m.styles.StatusBarStyle().Render(fmt.Sprintf("offset %.0f", m.state.ScrollOffset())))
	}

	if m.err != nil {
		parts = append(parts, m.styles.ErrorStyle().Render("error: "+m.err.Error()))
	}

	parts = append(parts, m.styles.HelpStyle().Render("←/→ navigate · 1-9 jump · enter read · r reload · q quit"))

	bar := strings.Join(parts, m.styles.HelpStyle().Render(" · "))
	return ansi.Truncate(bar, width, "…")
}
