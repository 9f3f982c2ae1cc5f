package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/bwbar/internal/engine"
	"github.com/tonhe/bwbar/internal/render"
	"github.com/tonhe/bwbar/tui/components"
	"github.com/tonhe/bwbar/tui/keys"
	"github.com/tonhe/bwbar/tui/styles"
)

// DetailView is a split-screen view showing adapter information at the top
// and RX/TX rate charts at the bottom.
type DetailView struct {
	theme  styles.Theme
	sty    *styles.Styles
	opts   render.Options
	row    *Row
	width  int
	height int
}

// NewDetailView creates a new DetailView with the given theme.
func NewDetailView(theme styles.Theme, opts render.Options) DetailView {
	return DetailView{
		theme: theme,
		sty:   styles.NewStyles(theme),
		opts:  opts,
	}
}

// SetRow updates the detail view with the latest data for the shown row.
func (v *DetailView) SetRow(r Row) {
	v.row = &r
}

// SetSize updates the available dimensions for the view.
func (v *DetailView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Update handles key messages for the detail view. The third return value
// indicates whether the user wants to go back (Esc pressed).
func (v DetailView) Update(msg tea.Msg) (DetailView, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Escape):
			return v, nil, true
		}
	}
	return v, nil, false
}

// View renders the detail view with an info panel and rate charts.
func (v DetailView) View() string {
	if v.row == nil {
		return v.renderEmpty()
	}
	return v.renderDetail()
}

func (v DetailView) renderEmpty() string {
	msg := lipgloss.NewStyle().
		Foreground(v.theme.Base04).
		Align(lipgloss.Center).
		Render("No interface selected")
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, msg)
}

func (v DetailView) renderDetail() string {
	infoPanel := v.renderInfoPanel()

	infoPanelHeight := 10
	chartHeight := v.height - infoPanelHeight
	if chartHeight < 6 {
		chartHeight = 6
	}
	chartWidth := (v.width - 3) / 2 // 3 chars for separator and padding
	if chartWidth < 15 {
		chartWidth = 15
	}

	rxData, txData := v.extractRateData()
	label := func(bps float64) string {
		return components.CompactRate(bps, v.opts.Unit, v.opts.Divisor)
	}
	th := v.opts.Thresholds
	rx := components.RateChart{
		Title: "RX", Samples: rxData, Warn: th.WarnRx, Crit: th.CritRx, Label: label,
		Bar: v.sty.SparklineRx, Warning: v.sty.RateWarn, Critical: v.sty.RateCrit,
	}
	tx := components.RateChart{
		Title: "TX", Samples: txData, Warn: th.WarnTx, Crit: th.CritTx, Label: label,
		Bar: v.sty.SparklineTx, Warning: v.sty.RateWarn, Critical: v.sty.RateCrit,
	}
	rxChart := rx.Render(chartWidth, chartHeight)
	txChart := tx.Render(chartWidth, chartHeight)

	sep := lipgloss.NewStyle().
		Foreground(v.theme.Base03).
		Render(strings.Repeat(" | \n", chartHeight))
	chartsSection := lipgloss.JoinHorizontal(lipgloss.Top, rxChart, sep, txChart)

	return lipgloss.JoinVertical(lipgloss.Left, infoPanel, "", chartsSection, v.renderHelp())
}

// renderInfoPanel renders the adapter information section at the top.
func (v DetailView) renderInfoPanel() string {
	r := v.row.Reading
	labelStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base04).
		Width(16)
	valueStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base05)
	highlightStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base0D).
		Bold(true)

	field := func(label, value string, st lipgloss.Style) string {
		return fmt.Sprintf("  %s%s", labelStyle.Render(label), st.Render(value))
	}

	rows := []string{"", field("Interface:", r.Name, highlightStyle)}
	if !v.row.Total {
		class := "wired"
		if r.Wireless {
			class = "wireless"
		}
		ssid := r.SSID
		if ssid == "" {
			ssid = "-"
		}
		rows = append(rows,
			field("Class:", class, valueStyle),
			field("State:", r.State.String(), stateStyle(v.sty, r.State)),
			field("SSID:", ssid, valueStyle),
		)
	}

	rx, tx := "-", "-"
	if r.RateValid {
		th := v.opts.Thresholds
		rx = strings.TrimSpace(render.FormatRate(r.Rate.Rx, v.opts.Unit, v.opts.Divisor, th.WarnRx, th.CritRx))
		tx = strings.TrimSpace(render.FormatRate(r.Rate.Tx, v.opts.Unit, v.opts.Divisor, th.WarnTx, th.CritTx))
	}
	last := "-"
	if v.row.History != nil {
		if s, ok := v.row.History.Last(); ok {
			last = s.Timestamp.Format("15:04:05")
		}
	}
	rows = append(rows,
		field("Current RX:", rx, valueStyle),
		field("Current TX:", tx, valueStyle),
		field("Samples:", fmt.Sprintf("%d", historyLen(v.row.History)), valueStyle),
		field("Last sample:", last, valueStyle),
	)

	return strings.Join(rows, "\n")
}

// renderHelp renders a help line at the bottom of the detail view.
func (v DetailView) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(v.theme.Base04)
	keyStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)
	return helpStyle.Render(fmt.Sprintf("  %s to go back", keyStyle.Render("[esc]")))
}

// extractRateData pulls rx and tx slices from the row history.
func (v DetailView) extractRateData() (rxData, txData []float64) {
	if v.row == nil || v.row.History == nil {
		return nil, nil
	}
	rxData = engine.Series(v.row.History, func(s engine.RateSample) float64 { return s.Rx })
	txData = engine.Series(v.row.History, func(s engine.RateSample) float64 { return s.Tx })
	return rxData, txData
}

func historyLen(h *engine.RingBuffer[engine.RateSample]) int {
	if h == nil {
		return 0
	}
	return h.Len()
}
