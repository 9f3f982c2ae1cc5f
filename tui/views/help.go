package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/bwbar/internal/engine"
	"github.com/tonhe/bwbar/internal/render"
	"github.com/tonhe/bwbar/tui/keys"
	"github.com/tonhe/bwbar/tui/styles"
)

// HelpView is a modal listing the key bindings, the state glyphs, and the
// active rate limits with the marker each one adds.
type HelpView struct {
	theme   styles.Theme
	sty     *styles.Styles
	opts    render.Options
	width   int
	height  int
	visible bool
}

// NewHelpView creates a HelpView describing the given formatting options.
func NewHelpView(theme styles.Theme, opts render.Options) HelpView {
	return HelpView{
		theme: theme,
		sty:   styles.NewStyles(theme),
		opts:  opts,
	}
}

// Toggle flips the overlay.
func (v *HelpView) Toggle() {
	v.visible = !v.visible
}

// IsVisible reports whether the overlay is shown.
func (v HelpView) IsVisible() bool {
	return v.visible
}

// SetSize updates the available dimensions for the overlay.
func (v *HelpView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// helpEntry is one two-column line of the modal.
type helpEntry struct {
	left, right string
	style       lipgloss.Style
}

type helpSection struct {
	title   string
	entries []helpEntry
}

func (v HelpView) sections() []helpSection {
	km := keys.DefaultKeyMap
	bindings := func(bs ...key.Binding) []helpEntry {
		out := make([]helpEntry, 0, len(bs))
		for _, b := range bs {
			h := b.Help()
			out = append(out, helpEntry{left: h.Key, right: h.Desc, style: v.sty.TableRow})
		}
		return out
	}

	states := []helpEntry{
		{render.StateGlyph(false, engine.StateConnected), "wired, connected", v.sty.StateConnected},
		{render.StateGlyph(true, engine.StateConnected), "wireless, connected", v.sty.StateConnected},
		{render.StateGlyph(false, engine.StateDisconnected), "no link", v.sty.StateDisconnected},
		{render.StateGlyph(false, engine.StateDisabled), "disabled", v.sty.StateDisabled},
		{render.StateGlyph(false, engine.StateUnknown), "unreadable", v.sty.StateUnknown},
	}

	th := v.opts.Thresholds
	limits := []helpEntry{
		v.limit(render.SeverityWarning, "RX", th.WarnRx),
		v.limit(render.SeverityWarning, "TX", th.WarnTx),
		v.limit(render.SeverityCritical, "RX", th.CritRx),
		v.limit(render.SeverityCritical, "TX", th.CritTx),
	}

	return []helpSection{
		{"Keys", bindings(km.Up, km.Down, km.Enter, km.Escape, km.Help, km.Quit)},
		{"States", states},
		{"Limits", limits},
	}
}

// limit describes one threshold as "<marker> <dir> above <rate>".
func (v HelpView) limit(sev render.Severity, dir string, bytesPerSec uint64) helpEntry {
	style := v.sty.RateWarn
	if sev == render.SeverityCritical {
		style = v.sty.RateCrit
	}
	desc := dir + " off"
	if bytesPerSec > 0 {
		rate := render.FormatRate(float64(bytesPerSec), v.opts.Unit, v.opts.Divisor, 0, 0)
		desc = dir + " above " + strings.TrimSpace(rate)
	}
	return helpEntry{left: sev.Marker(), right: desc, style: style}
}

// View renders the overlay centred in the body area.
func (v HelpView) View() string {
	width := min(max(v.width/2, 38), 56)

	title := lipgloss.NewStyle().Foreground(v.theme.Base0E).Bold(true)
	desc := lipgloss.NewStyle().Foreground(v.theme.Base05)

	var b strings.Builder
	for i, s := range v.sections() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(title.Render(s.title) + "\n")
		for _, e := range s.entries {
			b.WriteString("  " + e.style.Width(8).Render(e.left) + desc.Render(e.right) + "\n")
		}
	}
	b.WriteString(lipgloss.NewStyle().Foreground(v.theme.Base04).Render("[?] close"))

	box := v.sty.ModalBorder.Width(width - 6).Render(b.String())
	header := v.sty.ModalTitle.Render(" bwbar watch ")
	modal := lipgloss.JoinVertical(lipgloss.Center, header, box)
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}
