package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/bwbar/internal/config"
	"github.com/tonhe/bwbar/internal/engine"
	"github.com/tonhe/bwbar/internal/logging"
	"github.com/tonhe/bwbar/tui/components"
	"github.com/tonhe/bwbar/tui/keys"
	"github.com/tonhe/bwbar/tui/styles"
	"github.com/tonhe/bwbar/tui/views"
)

var log = logging.Logger("tui")

// AppState represents the current screen of the watch view.
type AppState int

const (
	StateTable AppState = iota
	StateDetail
)

// TickMsg triggers one sample of every adapter.
type TickMsg time.Time

// AppModel is the root Bubble Tea model for `bwbar watch`.
type AppModel struct {
	state   AppState
	theme   styles.Theme
	version string
	poller  *engine.Poller
	history *History

	table  views.TableView
	detail views.DetailView
	help   views.HelpView

	readings   []engine.Reading
	lastSample time.Time
	width      int
	height     int
}

// NewAppModel creates an AppModel sampling through poller. The poller's
// adapters must already carry their initial baselines.
func NewAppModel(cfg *config.Config, poller *engine.Poller, version string) AppModel {
	theme := styles.ThemeOrDefault(cfg.Theme)
	opts := cfg.RenderOptions()

	h := NewHistory(cfg.MaxHistory, cfg.Refresh)
	h.Seed(poller.Aggregate())

	m := AppModel{
		state:   StateTable,
		theme:   theme,
		version: version,
		poller:  poller,
		history: h,
		table:   views.NewTableView(theme, opts),
		detail:  views.NewDetailView(theme, opts),
		help:    views.NewHelpView(theme, opts),
	}
	for _, a := range poller.Adapters() {
		m.readings = append(m.readings, engine.Reading{Name: a.Name, Wireless: a.Wireless, State: a.State})
	}
	m.table.SetRows(m.rows())
	return m
}

// Run starts the watch view on the alternate screen and blocks until quit.
func Run(cfg *config.Config, poller *engine.Poller, version string) error {
	p := tea.NewProgram(NewAppModel(cfg, poller, version), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init schedules the first sample one interval after the baselines.
func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.poller.Interval())
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages and dispatches to the active view.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Body height = total - 1 (header) - 2 (status bar lines)
		m.table.SetSize(msg.Width, msg.Height-3)
		m.detail.SetSize(msg.Width, msg.Height-3)
		m.help.SetSize(msg.Width, msg.Height-3)
		return m, nil

	case TickMsg:
		m.sample(time.Time(msg))
		return m, tickCmd(m.poller.Interval())

	case tea.KeyMsg:
		if key.Matches(msg, keys.DefaultKeyMap.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, keys.DefaultKeyMap.Help) {
			m.help.Toggle()
			return m, nil
		}
		if m.help.IsVisible() {
			if key.Matches(msg, keys.DefaultKeyMap.Escape) {
				m.help.Toggle()
			}
			return m, nil
		}

		switch m.state {
		case StateTable:
			if key.Matches(msg, keys.DefaultKeyMap.Enter) {
				if row, ok := m.table.Selected(); ok {
					m.detail.SetRow(row)
					m.state = StateDetail
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		case StateDetail:
			var cmd tea.Cmd
			var back bool
			m.detail, cmd, back = m.detail.Update(msg)
			if back {
				m.state = StateTable
			}
			return m, cmd
		}
	}
	return m, nil
}

// sample runs one tick of the poller and folds it into the history.
func (m *AppModel) sample(now time.Time) {
	m.readings = m.poller.Sample()
	total, ok := m.poller.Aggregate()
	if !ok {
		log.Debug("aggregate counters unreadable")
	}
	m.history.Record(m.readings, total, ok, now)
	m.lastSample = now

	m.table.SetRows(m.rows())
	if m.state == StateDetail {
		if row, ok := m.table.Selected(); ok {
			m.detail.SetRow(row)
		}
	}
}

// rows builds the table rows: adapters in configuration order, then total.
func (m AppModel) rows() []views.Row {
	rows := make([]views.Row, 0, len(m.readings)+1)
	for _, r := range m.readings {
		rows = append(rows, views.Row{Reading: r, History: m.history.For(r.Name)})
	}
	total := m.history.Total()
	rows = append(rows, views.Row{
		Reading: engine.Reading{
			Name:      TotalName,
			Rate:      m.history.TotalRate(),
			RateValid: total.Len() > 0,
			Timestamp: m.lastSample,
		},
		History: total,
		Total:   true,
	})
	return rows
}

// connected counts adapters currently Connected.
func (m AppModel) connected() int {
	n := 0
	for _, r := range m.readings {
		if r.State == engine.StateConnected {
			n++
		}
	}
	return n
}

// View renders the full UI by composing header, body, and status bar.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := components.RenderHeader(m.theme, len(m.readings), m.poller.Interval(), m.width, m.version)

	var body string
	switch {
	case m.help.IsVisible():
		body = m.help.View()
	case m.state == StateDetail:
		body = m.detail.View()
	default:
		body = m.table.View()
	}

	statusBar := components.RenderStatusBar(m.theme, m.lastSample, m.connected(), len(m.readings), m.width)

	// Fill body to the available height between header and status bar
	bodyHeight := m.height - 1 - 2 // 1 header line, 2 status bar lines
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}
