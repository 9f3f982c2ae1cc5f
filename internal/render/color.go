package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tonhe/bwbar/internal/engine"
	"github.com/tonhe/bwbar/tui/styles"
	"golang.org/x/term"
)

// ColorMode selects how severity and state are coloured.
type ColorMode string

const (
	ColorNone    ColorMode = "none"
	ColorANSI    ColorMode = "ansi"
	ColorPolybar ColorMode = "polybar"
	ColorAuto    ColorMode = "auto"
)

// ParseColorMode validates a colour mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorNone, ColorANSI, ColorPolybar, ColorAuto:
		return m, nil
	case "":
		return ColorNone, nil
	default:
		return ColorNone, fmt.Errorf("unknown color mode %q", s)
	}
}

// ResolveColorMode turns ColorAuto into ColorANSI when f is a terminal and
// ColorNone otherwise.
func ResolveColorMode(mode ColorMode, f *os.File) ColorMode {
	if mode != ColorAuto {
		return mode
	}
	if f != nil && term.IsTerminal(int(f.Fd())) {
		return ColorANSI
	}
	return ColorNone
}

// Styler decorates rate figures and state glyphs.
type Styler interface {
	Rate(sev Severity, text string) string
	Glyph(state engine.IfState, text string) string
}

// NewStyler builds the Styler for a resolved colour mode.
func NewStyler(mode ColorMode, theme styles.Theme, w io.Writer) Styler {
	switch mode {
	case ColorANSI:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.TrueColor)
		return ansiStyler{r: r, theme: theme}
	case ColorPolybar:
		return polybarStyler{theme: theme}
	default:
		return plainStyler{}
	}
}

func severityColor(theme styles.Theme, sev Severity) (lipgloss.Color, bool) {
	switch sev {
	case SeverityCritical:
		return theme.Base08, true
	case SeverityWarning:
		return theme.Base0A, true
	default:
		return "", false
	}
}

func stateColor(theme styles.Theme, state engine.IfState) lipgloss.Color {
	switch state {
	case engine.StateConnected:
		return theme.Base0B
	case engine.StateDisconnected:
		return theme.Base0A
	case engine.StateDisabled:
		return theme.Base03
	default:
		return theme.Base08
	}
}

type plainStyler struct{}

func (plainStyler) Rate(_ Severity, text string) string        { return text }
func (plainStyler) Glyph(_ engine.IfState, text string) string { return text }

type ansiStyler struct {
	r     *lipgloss.Renderer
	theme styles.Theme
}

func (s ansiStyler) Rate(sev Severity, text string) string {
	c, ok := severityColor(s.theme, sev)
	if !ok {
		return text
	}
	return s.r.NewStyle().Foreground(c).Bold(sev == SeverityCritical).Render(text)
}

func (s ansiStyler) Glyph(state engine.IfState, text string) string {
	return s.r.NewStyle().Foreground(stateColor(s.theme, state)).Render(text)
}

// polybarStyler emits %{F#rrggbb}...%{F-} format tags.
type polybarStyler struct {
	theme styles.Theme
}

func (s polybarStyler) Rate(sev Severity, text string) string {
	c, ok := severityColor(s.theme, sev)
	if !ok {
		return text
	}
	return polybarColor(c, text)
}

func (s polybarStyler) Glyph(state engine.IfState, text string) string {
	return polybarColor(stateColor(s.theme, state), text)
}

func polybarColor(c lipgloss.Color, text string) string {
	return "%{F" + string(c) + "}" + text + "%{F-}"
}
