package render

import "github.com/tonhe/bwbar/internal/engine"

// Nerd Font glyphs.
const (
	glyphWired        = "\uf0e8"
	glyphWireless     = "\uf1eb"
	glyphDisconnected = "⚠"
	glyphDisabled     = "✗"
	glyphUnknown      = "\ufffd"
)

// StateGlyph returns the icon for an adapter class and state.
func StateGlyph(wireless bool, state engine.IfState) string {
	switch state {
	case engine.StateConnected:
		if wireless {
			return glyphWireless
		}
		return glyphWired
	case engine.StateDisconnected:
		return glyphDisconnected
	case engine.StateDisabled:
		return glyphDisabled
	default:
		return glyphUnknown
	}
}
