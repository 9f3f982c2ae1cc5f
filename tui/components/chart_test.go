package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainLabel(v float64) string { return fmt.Sprintf("%.0f", v) }

// tagged wraps each styled run so tests can see which band it took.
func tagged(tag string) lipgloss.Style {
	return lipgloss.NewStyle().Transform(func(s string) string { return tag + "(" + s + ")" })
}

func TestRateChartDimensions(t *testing.T) {
	c := RateChart{Title: "RX", Samples: []float64{0, 1024, 2048}, Label: plainLabel}
	lines := strings.Split(c.Render(20, 5), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "RX  peak 2048"))
	for _, l := range lines {
		assert.Len(t, []rune(l), 20)
	}
}

func TestRateChartEmpty(t *testing.T) {
	c := RateChart{Title: "TX", Label: plainLabel}
	lines := strings.Split(c.Render(20, 4), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "TX", strings.TrimSpace(lines[0]))
	assert.Equal(t, "      0 ", lines[3][:axisWidth])
}

func TestRateChartLimitRules(t *testing.T) {
	c := RateChart{
		Title:   "RX",
		Samples: []float64{100, 100},
		Warn:    400,
		Crit:    800,
		Label:   plainLabel,
	}
	// Eight plot rows over a ceiling of 800: crit on the top row, warn on row 3.
	lines := strings.Split(c.Render(12, 9), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "    800 ╌╌╌╌", lines[1])
	assert.Equal(t, "    400 ╌╌╌╌", lines[5])
	assert.Equal(t, "      0   ██", lines[8])
	assert.Equal(t, "            ", lines[7])
}

func TestRateChartBandColours(t *testing.T) {
	c := RateChart{
		Title:    "TX",
		Samples:  []float64{10, 50, 90},
		Warn:     40,
		Crit:     80,
		Label:    plainLabel,
		Bar:      tagged("ok"),
		Warning:  tagged("warn"),
		Critical: tagged("crit"),
	}
	lines := strings.Split(c.Render(axisWidth+3, 2), "\n")
	require.Len(t, lines, 2)

	// A single plot row holds every limit; the critical rule wins it.
	assert.Equal(t, "     80 ok(▁)warn(▄)crit(█)", lines[1])
}

func TestRateChartKeepsNewest(t *testing.T) {
	c := RateChart{Title: "R", Samples: []float64{1000, 0, 0, 10}, Label: plainLabel}
	lines := strings.Split(c.Render(axisWidth+2, 2), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "R  peak 10", lines[0])
	assert.Equal(t, "     10  █", lines[1])
}

func TestLimitRow(t *testing.T) {
	assert.Equal(t, -1, limitRow(0, 100, 4))
	assert.Equal(t, 3, limitRow(100, 100, 4))
	assert.Equal(t, 0, limitRow(1, 100, 4))
	assert.Equal(t, 1, limitRow(50, 100, 4))
}
