package engine

// Adapter is one monitored network interface. It is owned by a single
// Poller and mutated in place on every tick.
type Adapter struct {
	Name string
	// Wireless is evaluated once at creation and never re-derived.
	Wireless bool
	State    IfState
	// Prev is the baseline for the next rate; only meaningful when HavePrev.
	Prev     CounterSnapshot
	HavePrev bool
	// SSID is non-empty only while Wireless and State == StateConnected.
	SSID string
}

// NewAdapter creates an Adapter and seeds its baseline with an initial
// counter read. The state starts as StateUnknown until the first tick.
func NewAdapter(name string, detector *StateDetector, reader *StatsReader) *Adapter {
	name = boundIfName(name)
	a := &Adapter{
		Name:     name,
		Wireless: detector.IsWireless(name),
		State:    StateUnknown,
	}
	a.Prev, a.HavePrev = reader.ReadInterfaceStats(name)
	return a
}

// ClassFilter restricts adapters by class at startup.
type ClassFilter int

const (
	FilterNone ClassFilter = iota
	FilterWirelessOnly
	FilterWiredOnly
)

// Accepts reports whether an adapter of the given class passes the filter.
func (f ClassFilter) Accepts(wireless bool) bool {
	switch f {
	case FilterWirelessOnly:
		return wireless
	case FilterWiredOnly:
		return !wireless
	default:
		return true
	}
}
