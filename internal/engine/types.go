package engine

import "time"

// IfState classifies the link state of a single adapter.
type IfState int

const (
	StateDisabled IfState = iota
	StateDisconnected
	StateConnected
	StateUnknown
)

// String returns the lowercase name used in logs and the list command.
func (s IfState) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Kernel name limits. IFNAMSIZ includes the terminating NUL.
const (
	MaxIfNameLen = 15
	MaxSSIDLen   = 32
)

// CounterSnapshot holds cumulative kernel byte counters at one instant.
type CounterSnapshot struct {
	RxBytes uint64
	TxBytes uint64
}

// Rate holds per-second throughput derived from two snapshots.
type Rate struct {
	Rx float64
	Tx float64
}

// Reading is the result of sampling one adapter during a tick.
type Reading struct {
	Name     string
	Wireless bool
	State    IfState
	SSID     string
	Rate     Rate
	Counters CounterSnapshot
	// RateValid is false when the tick produced no usable rate.
	RateValid bool
	Timestamp time.Time
}

// InterfaceInfo describes a device found in the counter table.
type InterfaceInfo struct {
	Name     string
	Wireless bool
	State    IfState
	Counters CounterSnapshot
}

// RateSample is one point of rate history kept by the watch view.
type RateSample struct {
	Timestamp time.Time
	Rx        float64
	Tx        float64
}
