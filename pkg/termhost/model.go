package termhost

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/tabscroll/pkg/graphics"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
)

// DefaultFrameInterval is how often Model pumps the view's loop.
const DefaultFrameInterval = time.Second / 60

// wheelVelocity is the release speed, in columns per second, of the fling a
// wheel notch performs. It clears the paging threshold so each notch moves
// one page.
const wheelVelocity = 600

// footerRows is the number of rows below the view.
const footerRows = 1

// FrameMsg asks Model to pump the loop and schedule the next frame.
type FrameMsg time.Time

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces DefaultKeyMap.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithStyles replaces DefaultStyles.
func WithStyles(styles Styles) Option {
	return func(m *Model) { m.styles = styles }
}

// WithFrameInterval sets the pump interval. Non-positive values keep
// DefaultFrameInterval.
func WithFrameInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// Model is a tea.Model hosting one tab scroll view. The view must not be
// used from other goroutines while the program runs.
type Model struct {
	view     *tabscroll.View
	keys     KeyMap
	help     help.Model
	styles   Styles
	interval time.Duration

	width  int
	height int
}

// NewModel wraps view. The view's loop is pumped by the model, so create the
// view with a loop nothing else pumps.
func NewModel(view *tabscroll.View, opts ...Option) *Model {
	m := &Model{
		view:     view,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   DefaultStyles(),
		interval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Widget returns the hosted view.
func (m *Model) Widget() *tabscroll.View {
	return m.view
}

// Init starts the frame ticks.
func (m *Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.view.Layout(m.layoutSize())
	case FrameMsg:
		m.view.Loop().Pump()
		return m, m.nextFrame()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) layoutSize() graphics.Size {
	return graphics.Size{
		Width:  float64(max(m.width, 0)),
		Height: float64(max(m.height-footerRows, 0)),
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.First):
		m.view.ChangePage(0, true)
	case key.Matches(msg, m.keys.Last):
		m.view.ChangePage(m.view.PageCount()-1, true)
	case key.Matches(msg, m.keys.Jump):
		if n, err := strconv.Atoi(msg.String()); err == nil {
			m.view.TapTab(n - 1)
		}
	}
	return nil
}

func (m *Model) step(delta int) {
	current := m.view.CurrentIndex()
	if current < 0 {
		return
	}
	m.view.ChangePage(current+delta, true)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		if float64(msg.Y) < m.view.TabSectionFrame().Height() {
			// Aim at the middle of the clicked column.
			m.view.TapTabStrip(float64(msg.X) + 0.5)
		}
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		m.fling(1)
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		m.fling(-1)
	}
}

func (m *Model) fling(direction float64) {
	m.view.BeginDrag(tabscroll.RegionContent)
	m.view.DragBy(tabscroll.RegionContent, direction)
	m.view.EndDrag(tabscroll.RegionContent, direction*wheelVelocity)
}

// View implements tea.Model.
func (m *Model) View() string {
	body := Render(m.view, m.styles)
	if body == "" {
		return "\n"
	}
	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	return b.String()
}
