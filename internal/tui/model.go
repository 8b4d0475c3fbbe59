package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"feeddeck/internal/carousel"
	"feeddeck/internal/config"
	"feeddeck/internal/events"
	"feeddeck/internal/feed"
	"feeddeck/internal/logging"
)

// msgSink delivers messages into the running Bubble Tea program from
// outside the update loop (dwell timer fires, file watcher events). It is
// attached after tea.NewProgram; sends before attachment are dropped.
type msgSink struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (s *msgSink) Attach(fn func(tea.Msg)) {
	s.mu.Lock()
	s.send = fn
	s.mu.Unlock()
}

func (s *msgSink) Send(msg tea.Msg) {
	s.mu.Lock()
	fn := s.send
	s.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

// keyMap defines the key bindings for the carousel.
type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	First  key.Binding
	Last   key.Binding
	Reader key.Binding
	Close  key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Reader: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model represents the TUI application state.
type Model struct {
	width  int
	height int
	styles *Styles
	keys   keyMap

	cfg    *config.Config
	logger *logging.ScopedLogger

	categories []feed.Category
	state      *carousel.State
	dwell      *carousel.DwellTimer

	// Eased scroll animation toward a navigation target.
	animTarget float64
	animating  bool

	readerOpen  bool
	readerReady bool
	reader      viewport.Model

	sink    *msgSink
	publish func(events.Snapshot)
	webURL  string

	err error
}

// NewModel creates a new TUI model with the given configuration and
// categories. publish receives a state snapshot after every focus or
// offset change; pass nil to disable the mirror.
func NewModel(cfg *config.Config, categories []feed.Category, logProvider logging.LoggerProvider, publish func(events.Snapshot)) Model {
	return Model{
		styles:     NewStyles(cfg.Theme),
		keys:       defaultKeyMap(),
		cfg:        cfg,
		logger:     logProvider.For("tui"),
		categories: categories,
		state:      carousel.NewState(len(categories), 0, CellConstants()),
		dwell:      carousel.NewDwellTimer(),
		sink:       &msgSink{},
		publish:    publish,
	}
}

// Attach wires the model's message sink to a running program's Send.
func (m Model) Attach(send func(tea.Msg)) {
	m.sink.Attach(send)
}

// Init returns the initial command to run.
func (m Model) Init() tea.Cmd {
	return nil
}

// publishSnapshot mirrors the current state to the web server.
func (m Model) publishSnapshot() {
	if m.publish == nil {
		return
	}
	statuses := make([]events.CategoryStatus, len(m.categories))
	for i, c := range m.categories {
		statuses[i] = events.CategoryStatus{
			ID:        c.ID,
			Label:     c.Label,
			ItemCount: len(c.Items),
			Focus:     m.state.FocusStateFor(i).String(),
		}
	}
	m.publish(events.Snapshot{
		ScrollOffset: m.state.ScrollOffset(),
		FocusedIndex: m.state.FocusedIndex(),
		Categories:   statuses,
	})
}
