package engine

import (
	"context"
	"fmt"
	"path/filepath"

	psnet "github.com/shirou/gopsutil/v4/net"
)

const loopbackName = "lo"

// Paths locates the kernel pseudo-filesystems. Tests point these at
// temporary directories.
type Paths struct {
	Proc string
	Sys  string
}

// DefaultPaths returns the standard Linux mount points.
func DefaultPaths() Paths {
	return Paths{Proc: "/proc", Sys: "/sys"}
}

func (p Paths) netDev() string      { return filepath.Join(p.Proc, "net", "dev") }
func (p Paths) netWireless() string { return filepath.Join(p.Proc, "net", "wireless") }
func (p Paths) classNet(name string, elem ...string) string {
	return filepath.Join(append([]string{p.Sys, "class", "net", name}, elem...)...)
}

// devRecord is one device row of the counter table.
type devRecord struct {
	name     string
	counters CounterSnapshot
}

// StatsReader extracts byte counters from the kernel's device counter table.
type StatsReader struct {
	paths Paths
}

// NewStatsReader creates a StatsReader rooted at the given paths.
func NewStatsReader(paths Paths) *StatsReader {
	return &StatsReader{paths: paths}
}

// ReadInterfaceStats returns the counters for the named device. The boolean
// is false when the table is unreadable or the device is absent from it.
func (r *StatsReader) ReadInterfaceStats(name string) (CounterSnapshot, bool) {
	recs, err := r.devices()
	if err != nil {
		log.Debug("counter table unreadable", "path", r.paths.netDev(), "err", err)
		return CounterSnapshot{}, false
	}
	for _, rec := range recs {
		if rec.name == name {
			return rec.counters, true
		}
	}
	return CounterSnapshot{}, false
}

// ReadAggregateStats sums counters over every device in names. An empty
// names slice selects every device except the loopback device.
func (r *StatsReader) ReadAggregateStats(names []string) (CounterSnapshot, bool) {
	recs, err := r.devices()
	if err != nil {
		log.Debug("counter table unreadable", "path", r.paths.netDev(), "err", err)
		return CounterSnapshot{}, false
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var total CounterSnapshot
	for _, rec := range recs {
		if (len(names) == 0 && rec.name != loopbackName) || wanted[rec.name] {
			total.RxBytes += rec.counters.RxBytes
			total.TxBytes += rec.counters.TxBytes
		}
	}
	return total, true
}

// devices returns every device row in table order. Rows without a name are
// skipped; a row whose counters do not parse fails the whole read.
func (r *StatsReader) devices() (recs []devRecord, err error) {
	// gopsutil indexes counter fields without a length check.
	defer func() {
		if p := recover(); p != nil {
			recs, err = nil, fmt.Errorf("malformed counter table: %v", p)
		}
	}()

	stats, err := psnet.IOCountersByFileWithContext(context.Background(), true, r.paths.netDev())
	if err != nil {
		return nil, err
	}
	recs = make([]devRecord, 0, len(stats))
	for _, s := range stats {
		recs = append(recs, devRecord{
			name:     s.Name,
			counters: CounterSnapshot{RxBytes: s.BytesRecv, TxBytes: s.BytesSent},
		})
	}
	return recs, nil
}
