// Package render turns engine readings into status-bar text: fixed-width
// rate figures with threshold markers, and per-adapter segments.
package render

import "fmt"

// Unit selects how rates are displayed.
type Unit byte

const (
	UnitBytes Unit = 'B'
	UnitBits  Unit = 'b'
)

// Scaling divisors.
const (
	DivisorIEC uint = 1024
	DivisorSI  uint = 1000
)

// Severity is the threshold band a rate falls into.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityCritical
)

// Marker returns the single character printed before a rate in this band.
func (s Severity) Marker() string {
	switch s {
	case SeverityCritical:
		return "!"
	case SeverityWarning:
		return "?"
	default:
		return ""
	}
}

var prefixes = []string{"", "K", "M", "G", "T"}

// Classify compares a byte rate against thresholds. A zero threshold
// disables that band.
func Classify(bytesPerSec float64, warn, crit uint64) Severity {
	switch {
	case crit != 0 && bytesPerSec > float64(crit):
		return SeverityCritical
	case warn != 0 && bytesPerSec > float64(warn):
		return SeverityWarning
	default:
		return SeverityOK
	}
}

// Scale converts a byte rate into the display unit and divides it down by
// divisor at most four times. It returns the scaled value and the prefix.
func Scale(bytesPerSec float64, unit Unit, divisor uint) (float64, string) {
	v := bytesPerSec
	if unit == UnitBits {
		v *= 8
	}
	if divisor < 2 {
		divisor = DivisorIEC
	}
	d := float64(divisor)
	i := 0
	for v >= d && i < len(prefixes)-1 {
		v /= d
		i++
	}
	return v, prefixes[i]
}

// FormatRate renders a byte rate as "<marker>%7.1f <prefix><unit>/s".
// Thresholds are always in bytes per second regardless of unit.
func FormatRate(bytesPerSec float64, unit Unit, divisor uint, warn, crit uint64) string {
	return Classify(bytesPerSec, warn, crit).Marker() + formatValue(bytesPerSec, unit, divisor)
}

func formatValue(bytesPerSec float64, unit Unit, divisor uint) string {
	v, prefix := Scale(bytesPerSec, unit, divisor)
	return fmt.Sprintf("%7.1f %s%s", v, prefix, unitSuffix(unit))
}

func unitSuffix(unit Unit) string {
	if unit == UnitBits {
		return "b/s"
	}
	return "B/s"
}
