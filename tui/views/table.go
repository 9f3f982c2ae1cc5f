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

// Column width constants (minimum widths).
const (
	colInterface = 16
	colClass     = 10
	colState     = 14
	colSSID      = 18
	colRx        = 14
	colTx        = 14
	colSparkMin  = 12
)

// Row is one line of the adapter table.
type Row struct {
	Reading engine.Reading
	History *engine.RingBuffer[engine.RateSample]
	// Total marks the aggregate row, which has no link state.
	Total   bool
}

// TableView is the main monitoring table, one row per adapter followed by
// the aggregate total.
type TableView struct {
	theme  styles.Theme
	sty    *styles.Styles
	opts   render.Options
	rows   []Row
	cursor int
	width  int
	height int
	offset int // scroll offset for vertical scrolling
}

// NewTableView creates a new TableView with the given theme and rate
// formatting options.
func NewTableView(theme styles.Theme, opts render.Options) TableView {
	return TableView{
		theme: theme,
		sty:   styles.NewStyles(theme),
		opts:  opts,
	}
}

// Update handles key messages for cursor navigation within the table.
func (v TableView) Update(msg tea.Msg) (TableView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			if v.cursor > 0 {
				v.cursor--
				v.ensureVisible()
			}
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			if v.cursor < len(v.rows)-1 {
				v.cursor++
				v.ensureVisible()
			}
		}
	}
	return v, nil
}

// SetRows replaces the table contents and clamps the cursor if needed.
func (v *TableView) SetRows(rows []Row) {
	v.rows = rows
	if v.cursor >= len(v.rows) && len(v.rows) > 0 {
		v.cursor = len(v.rows) - 1
	}
}

// Selected returns the row under the cursor.
func (v TableView) Selected() (Row, bool) {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return Row{}, false
	}
	return v.rows[v.cursor], true
}

// Cursor returns the selected row index.
func (v TableView) Cursor() int {
	return v.cursor
}

// SetSize updates the available dimensions for the view.
func (v *TableView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the table view.
func (v TableView) View() string {
	if len(v.rows) == 0 {
		return v.renderEmpty()
	}
	return v.renderTable()
}

// ensureVisible adjusts the scroll offset so the cursor row is visible.
func (v *TableView) ensureVisible() {
	// Account for the table header row in available space.
	visible := v.height - 1
	if visible < 1 {
		visible = 1
	}
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+visible {
		v.offset = v.cursor - visible + 1
	}
}

// sparkWidth gives the trend column all remaining space.
func (v TableView) sparkWidth() int {
	fixed := colInterface + colClass + colState + colSSID + colRx + colTx
	spark := v.width - fixed
	if spark < colSparkMin {
		spark = colSparkMin
	}
	return spark
}

func (v TableView) renderTable() string {
	wSpark := v.sparkWidth()

	headerStyle := v.sty.TableHeader
	header := fmt.Sprintf(
		"%s%s%s%s%s%s%s",
		headerStyle.Render(padRight("Interface", colInterface)),
		headerStyle.Render(padRight("Class", colClass)),
		headerStyle.Render(padRight("State", colState)),
		headerStyle.Render(padRight("SSID", colSSID)),
		headerStyle.Render(padLeft("RX", colRx)),
		headerStyle.Render(padLeft("TX", colTx)),
		headerStyle.Render(padRight("  Trend", wSpark)),
	)
	lines := []string{header}

	visible := v.height - 1
	if visible < 1 {
		visible = 1
	}
	end := v.offset + visible
	if end > len(v.rows) {
		end = len(v.rows)
	}
	for i := v.offset; i < end; i++ {
		lines = append(lines, v.renderRow(v.rows[i], wSpark, i == v.cursor))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders a single adapter or total row.
func (v TableView) renderRow(r Row, wSpark int, selected bool) string {
	rowStyle := v.sty.TableRow
	if r.Total {
		rowStyle = v.sty.TotalRow
	}
	withBg := func(st lipgloss.Style) lipgloss.Style {
		if selected {
			return st.Background(v.theme.Base02)
		}
		return st
	}
	rowStyle = withBg(rowStyle)

	name := rowStyle.Render(padRight(truncate(r.Reading.Name, colInterface-1), colInterface))

	class, state, ssid := "", "", ""
	stStyle := rowStyle
	if !r.Total {
		class = "wired"
		if r.Reading.Wireless {
			class = "wireless"
		}
		state = r.Reading.State.String()
		stStyle = withBg(stateStyle(v.sty, r.Reading.State))
		ssid = r.Reading.SSID
	}
	classStr := rowStyle.Render(padRight(class, colClass))
	stateStr := stStyle.Render(padRight(state, colState))
	ssidStr := rowStyle.Render(padRight(truncate(ssid, colSSID-1), colSSID))

	th := v.opts.Thresholds
	rxStr := v.rateCell(r.Reading, r.Reading.Rate.Rx, th.WarnRx, th.CritRx, colRx, withBg, rowStyle)
	txStr := v.rateCell(r.Reading, r.Reading.Rate.Tx, th.WarnTx, th.CritTx, colTx, withBg, rowStyle)

	sparkStr := withBg(v.sty.SparklineRx).Render("  " + components.Sparkline(extractSparkData(r.History, wSpark-2), wSpark-2))

	return name + classStr + stateStr + ssidStr + rxStr + txStr + sparkStr
}

func (v TableView) rateCell(r engine.Reading, rate float64, warn, crit uint64, width int,
	withBg func(lipgloss.Style) lipgloss.Style, rowStyle lipgloss.Style) string {
	if !r.RateValid {
		return withBg(v.sty.TableCellDim).Render(padLeft("-", width))
	}
	text := padLeft(render.FormatRate(rate, v.opts.Unit, v.opts.Divisor, warn, crit), width)
	switch render.Classify(rate, warn, crit) {
	case render.SeverityCritical:
		return withBg(v.sty.RateCrit).Render(text)
	case render.SeverityWarning:
		return withBg(v.sty.RateWarn).Render(text)
	default:
		return rowStyle.Render(text)
	}
}

func stateStyle(sty *styles.Styles, state engine.IfState) lipgloss.Style {
	switch state {
	case engine.StateConnected:
		return sty.StateConnected
	case engine.StateDisconnected:
		return sty.StateDisconnected
	case engine.StateDisabled:
		return sty.StateDisabled
	default:
		return sty.StateUnknown
	}
}

// renderEmpty renders a centered message when no adapter survived filtering.
func (v TableView) renderEmpty() string {
	msgStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base04).
		Align(lipgloss.Center)

	keyStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base0D).
		Bold(true)

	msg := lipgloss.JoinVertical(lipgloss.Center,
		"",
		msgStyle.Render("No adapters to monitor"),
		"",
		msgStyle.Render(fmt.Sprintf(
			"Check %s or the class filters",
			keyStyle.Render("-i"),
		)),
		"",
	)

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, msg)
}

// extractSparkData pulls the larger of rx and tx from the history for
// sparkline rendering.
func extractSparkData(history *engine.RingBuffer[engine.RateSample], maxWidth int) []float64 {
	if history == nil {
		return nil
	}
	data := engine.Series(history, func(s engine.RateSample) float64 {
		return max(s.Rx, s.Tx)
	})
	if len(data) > maxWidth {
		data = data[len(data)-maxWidth:]
	}
	return data
}

// padRight pads s with spaces on the right to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads s with spaces on the left to the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncate shortens s to maxLen characters, adding an ellipsis if needed.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
