package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/bwbar/internal/render"
)

// axisWidth is the label gutter left of the plot, trailing space included.
const axisWidth = 8

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const ruleRune = '╌'

// RateChart plots one direction of an adapter's rate history. Samples over a
// limit take that band's style, and each configured limit is drawn as a
// horizontal rule labelled on the axis.
type RateChart struct {
	Title string
	// Samples are bytes per second, oldest first.
	Samples []float64
	// Warn and Crit are byte-per-second limits; zero disables one.
	Warn, Crit uint64
	Label      func(bytesPerSec float64) string

	Bar      lipgloss.Style
	Warning  lipgloss.Style
	Critical lipgloss.Style
}

// Render draws the chart into width columns and height rows, the title row
// included. Only the newest samples that fit are plotted.
func (c RateChart) Render(width, height int) string {
	width = max(width, axisWidth+2)
	height = max(height, 3)
	plotWidth, rows := width-axisWidth, height-1

	samples := c.Samples
	if len(samples) > plotWidth {
		samples = samples[len(samples)-plotWidth:]
	}
	ceiling := c.ceiling(samples)
	warnRow := limitRow(c.Warn, ceiling, rows)
	critRow := limitRow(c.Crit, ceiling, rows)

	lines := make([]string, 0, height)
	lines = append(lines, c.titleRow(samples, width))
	for row := rows - 1; row >= 0; row-- {
		var axis string
		switch row {
		case critRow:
			axis = c.Label(float64(c.Crit))
		case warnRow:
			axis = c.Label(float64(c.Warn))
		case rows - 1:
			axis = c.Label(ceiling)
		case 0:
			axis = "0"
		}
		rule := bandBlank
		switch row {
		case critRow:
			rule = bandCrit
		case warnRow:
			rule = bandWarn
		}
		lines = append(lines, gutter(axis)+c.plotRow(samples, row, rows, ceiling, plotWidth, rule))
	}
	return strings.Join(lines, "\n")
}

// ceiling is the value of the top row: the peak sample or the highest
// enabled limit, whichever is larger.
func (c RateChart) ceiling(samples []float64) float64 {
	top := math.Max(peak(samples), math.Max(float64(c.Warn), float64(c.Crit)))
	if top <= 0 {
		return 1
	}
	return top
}

func (c RateChart) titleRow(samples []float64, width int) string {
	title := c.Title
	if len(samples) > 0 {
		title += "  peak " + c.Label(peak(samples))
	}
	return fit(title, width)
}

// band indexes the styles a cell can take.
type band int

const (
	bandBlank band = iota
	bandBar
	bandWarn
	bandCrit
)

// plotRow renders one row of cells. Empty cells on a limit row show the rule.
func (c RateChart) plotRow(samples []float64, row, rows int, ceiling float64, plotWidth int, rule band) string {
	out := runs{styles: [...]lipgloss.Style{bandBar: c.Bar, bandWarn: c.Warning, bandCrit: c.Critical}}
	blank := func() {
		if rule != bandBlank {
			out.add(rule, ruleRune)
		} else {
			out.add(bandBlank, ' ')
		}
	}
	for i := len(samples); i < plotWidth; i++ {
		blank()
	}
	for _, v := range samples {
		filled := v/ceiling*float64(rows*8) - float64(row*8)
		idx := int(math.Round(math.Min(math.Max(filled, 0), 8)))
		if idx == 0 {
			blank()
			continue
		}
		out.add(c.bandOf(v), eighths[idx])
	}
	return out.String()
}

func (c RateChart) bandOf(bytesPerSec float64) band {
	switch render.Classify(bytesPerSec, c.Warn, c.Crit) {
	case render.SeverityCritical:
		return bandCrit
	case render.SeverityWarning:
		return bandWarn
	default:
		return bandBar
	}
}

// limitRow returns the row a limit falls in, or -1 when the limit is off.
func limitRow(limit uint64, ceiling float64, rows int) int {
	if limit == 0 {
		return -1
	}
	row := int(math.Ceil(float64(limit)/ceiling*float64(rows))) - 1
	return min(max(row, 0), rows-1)
}

func peak(samples []float64) float64 {
	var p float64
	for _, v := range samples {
		p = math.Max(p, v)
	}
	return p
}

func gutter(label string) string {
	return fit(fmt.Sprintf("%*s ", axisWidth-1, label), axisWidth)
}

// fit pads or cuts s to exactly width runes.
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

// runs groups consecutive cells of one band so each run is styled once.
type runs struct {
	styles [4]lipgloss.Style
	sb     strings.Builder
	band   band
	cur    []rune
}

func (r *runs) add(b band, cell rune) {
	if len(r.cur) > 0 && b != r.band {
		r.flush()
	}
	r.band = b
	r.cur = append(r.cur, cell)
}

func (r *runs) flush() {
	if len(r.cur) == 0 {
		return
	}
	if r.band == bandBlank {
		r.sb.WriteString(string(r.cur))
	} else {
		r.sb.WriteString(r.styles[r.band].Render(string(r.cur)))
	}
	r.cur = r.cur[:0]
}

func (r *runs) String() string {
	r.flush()
	return r.sb.String()
}
