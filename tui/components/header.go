package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/bwbar/tui/styles"
)

// RenderHeader renders the top header bar with app name, monitored adapter
// count, refresh interval and version.
func RenderHeader(theme styles.Theme, adapterCount int, interval time.Duration, width int, ver string) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(theme.Base01).
		Bold(true).
		Render("bwbar")

	status := "LIVE"
	statusColor := theme.Base0B
	if adapterCount == 0 {
		status = "IDLE"
		statusColor = theme.Base08
	}
	center := lipgloss.NewStyle().
		Foreground(statusColor).
		Background(theme.Base01).
		Render(status)

	adapters := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(theme.Base01).
		Render(fmt.Sprintf("%d adapters every %s", adapterCount, interval))

	versionSeg := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(theme.Base01).
		Render("v" + ver)

	content := fmt.Sprintf(" %s  |  %s  |  %s  |  %s ", left, center, adapters, versionSeg)

	return lipgloss.NewStyle().
		Background(theme.Base01).
		Width(width).
		Render(content)
}
