package engine

import "fmt"

// DiscoverInterfaces lists every device in the counter table with its class,
// current state, and cumulative counters, plus the all-but-loopback total.
func DiscoverInterfaces(paths Paths) ([]InterfaceInfo, CounterSnapshot, error) {
	reader := NewStatsReader(paths)
	detector := NewStateDetector(paths)

	recs, err := reader.devices()
	if err != nil {
		return nil, CounterSnapshot{}, fmt.Errorf("read %s: %w", paths.netDev(), err)
	}

	result := make([]InterfaceInfo, 0, len(recs))
	for _, rec := range recs {
		wireless := detector.IsWireless(rec.name)
		result = append(result, InterfaceInfo{
			Name:     rec.name,
			Wireless: wireless,
			State:    detector.InterfaceState(rec.name, wireless),
			Counters: rec.counters,
		})
	}

	total, ok := reader.ReadAggregateStats(nil)
	if !ok {
		return result, CounterSnapshot{}, fmt.Errorf("aggregate %s failed", paths.netDev())
	}
	return result, total, nil
}
