package render

import (
	"strings"

	"github.com/tonhe/bwbar/internal/engine"
)

// Separator joins adapter segments on one line.
const Separator = " | "

// Thresholds are byte-per-second limits; zero disables a band.
type Thresholds struct {
	WarnRx uint64
	WarnTx uint64
	CritRx uint64
	CritTx uint64
}

// Options controls rate formatting.
type Options struct {
	Unit       Unit
	Divisor    uint
	Thresholds Thresholds
}

// Formatter renders rate pairs and glyphs with a Styler.
type Formatter struct {
	opts   Options
	styler Styler
}

// NewFormatter creates a Formatter. A nil styler leaves text undecorated.
func NewFormatter(opts Options, styler Styler) *Formatter {
	if styler == nil {
		styler = plainStyler{}
	}
	return &Formatter{opts: opts, styler: styler}
}

// Rates renders "<rx> <tx>" with markers and colour.
func (f *Formatter) Rates(rate engine.Rate) string {
	th := f.opts.Thresholds
	return f.rate(rate.Rx, th.WarnRx, th.CritRx) + " " + f.rate(rate.Tx, th.WarnTx, th.CritTx)
}

func (f *Formatter) rate(bytesPerSec float64, warn, crit uint64) string {
	sev := Classify(bytesPerSec, warn, crit)
	return f.styler.Rate(sev, sev.Marker()+formatValue(bytesPerSec, f.opts.Unit, f.opts.Divisor))
}

// Glyph renders the coloured state icon.
func (f *Formatter) Glyph(wireless bool, state engine.IfState) string {
	return f.styler.Glyph(state, StateGlyph(wireless, state))
}

// Presenter decides whether and how one adapter class is shown.
type Presenter interface {
	Segment(r engine.Reading) (string, bool)
}

// PresenterFor selects the presenter for an adapter class.
func PresenterFor(wireless bool, f *Formatter) Presenter {
	if wireless {
		return wirelessPresenter{f: f}
	}
	return wiredPresenter{f: f}
}

// wiredPresenter shows an adapter only while it is connected.
type wiredPresenter struct {
	f *Formatter
}

func (p wiredPresenter) Segment(r engine.Reading) (string, bool) {
	if r.State != engine.StateConnected {
		return "", false
	}
	return "[ " + p.f.Glyph(false, r.State) + " | " + p.f.Rates(r.Rate) + " ]", true
}

// wirelessPresenter hides only disabled adapters and explains the rest.
type wirelessPresenter struct {
	f *Formatter
}

func (p wirelessPresenter) Segment(r engine.Reading) (string, bool) {
	var sb strings.Builder
	switch r.State {
	case engine.StateDisabled:
		return "", false
	case engine.StateConnected:
		sb.WriteString("[ " + p.f.Glyph(true, r.State))
		if r.SSID != "" {
			sb.WriteString(" " + r.SSID)
		}
		sb.WriteString(" | " + p.f.Rates(r.Rate))
	case engine.StateDisconnected:
		sb.WriteString("[ " + p.f.Glyph(true, r.State) + " | [no-link]")
	default:
		sb.WriteString("[ " + p.f.Glyph(true, r.State) + " | [err]")
	}
	sb.WriteString(" ]")
	return sb.String(), true
}

// StatusLine renders one tick into a single line. The presenter for each
// adapter is chosen the first time the adapter is seen.
type StatusLine struct {
	f          *Formatter
	presenters map[string]Presenter
}

// NewStatusLine creates a StatusLine using f.
func NewStatusLine(f *Formatter) *StatusLine {
	return &StatusLine{f: f, presenters: make(map[string]Presenter)}
}

// Line joins every emitted segment with Separator, or returns "".
func (s *StatusLine) Line(readings []engine.Reading) string {
	segments := make([]string, 0, len(readings))
	for _, r := range readings {
		p, ok := s.presenters[r.Name]
		if !ok {
			p = PresenterFor(r.Wireless, s.f)
			s.presenters[r.Name] = p
		}
		if seg, ok := p.Segment(r); ok {
			segments = append(segments, seg)
		}
	}
	return strings.Join(segments, Separator)
}
