package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all themed lipgloss styles for the watch view.
type Styles struct {
	// Table
	TableHeader  lipgloss.Style
	TableRow     lipgloss.Style
	TableRowSel  lipgloss.Style
	TableCellDim lipgloss.Style
	TotalRow     lipgloss.Style

	// Link state
	StateConnected    lipgloss.Style
	StateDisconnected lipgloss.Style
	StateDisabled     lipgloss.Style
	StateUnknown      lipgloss.Style

	// Threshold bands
	RateWarn lipgloss.Style
	RateCrit lipgloss.Style

	// Sparkline
	SparklineRx lipgloss.Style
	SparklineTx lipgloss.Style

	// Modal / overlay
	ModalBorder lipgloss.Style
	ModalTitle  lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme Theme) *Styles {
	return &Styles{
		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		TableRow: lipgloss.NewStyle().
			Foreground(theme.Base05),
		TableRowSel: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base02),
		TableCellDim: lipgloss.NewStyle().
			Foreground(theme.Base03),
		TotalRow: lipgloss.NewStyle().
			Foreground(theme.Base0E).
			Bold(true),

		StateConnected: lipgloss.NewStyle().
			Foreground(theme.Base0B),
		StateDisconnected: lipgloss.NewStyle().
			Foreground(theme.Base0A),
		StateDisabled: lipgloss.NewStyle().
			Foreground(theme.Base03),
		StateUnknown: lipgloss.NewStyle().
			Foreground(theme.Base08),

		RateWarn: lipgloss.NewStyle().
			Foreground(theme.Base0A),
		RateCrit: lipgloss.NewStyle().
			Foreground(theme.Base08).
			Bold(true),

		SparklineRx: lipgloss.NewStyle().
			Foreground(theme.Base0B),
		SparklineTx: lipgloss.NewStyle().
			Foreground(theme.Base0C),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base0D).
			BorderBackground(theme.Base00).
			Background(theme.Base00).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
	}
}
