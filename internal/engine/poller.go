package engine

import (
	"bufio"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/tonhe/bwbar/internal/logging"
)

var log = logging.Logger("engine")

// LineRenderer turns one tick's readings into a status line. An empty
// string means nothing is printable this tick.
type LineRenderer interface {
	Line(readings []Reading) string
}

// PollerOptions configures a Poller.
type PollerOptions struct {
	Interfaces []string
	// Interval is the sampling period in whole seconds.
	Interval uint
	Filter   ClassFilter
	Paths    Paths
	// SSID defaults to the platform resolver.
	SSID SSIDResolver
	// Clock defaults to the wall clock.
	Clock clock.Clock
}

// Poller runs the sampling loop over a fixed set of adapters. One tick runs
// to completion before the next begins; nothing executes concurrently
// except Stop.
type Poller struct {
	adapters []*Adapter
	reader   *StatsReader
	detector *StateDetector
	ssid     SSIDResolver
	clock    clock.Clock
	interval uint
	renderer LineRenderer
	out      *bufio.Writer
	stop     chan struct{}
	stopOnce sync.Once
}

// NewPoller builds adapters for the configured interfaces, seeding each
// baseline, and returns a Poller that prints lines to w.
func NewPoller(opts PollerOptions, renderer LineRenderer, w io.Writer) *Poller {
	p := &Poller{
		reader:   NewStatsReader(opts.Paths),
		detector: NewStateDetector(opts.Paths),
		ssid:     opts.SSID,
		clock:    opts.Clock,
		interval: opts.Interval,
		renderer: renderer,
		out:      bufio.NewWriter(w),
		stop:     make(chan struct{}),
	}
	if p.ssid == nil {
		p.ssid = NewSSIDResolver()
	}
	if p.clock == nil {
		p.clock = clock.New()
	}

	for _, name := range opts.Interfaces {
		a := NewAdapter(name, p.detector, p.reader)
		if !opts.Filter.Accepts(a.Wireless) {
			log.Info("adapter excluded by class filter", "iface", a.Name, "wireless", a.Wireless)
			continue
		}
		if !a.HavePrev {
			log.Debug("initial counter read failed", "iface", a.Name)
		}
		p.adapters = append(p.adapters, a)
	}
	if len(p.adapters) == 0 {
		log.Warn("no adapters left to monitor", "configured", len(opts.Interfaces))
	}
	return p
}

// Adapters returns the monitored adapters in configuration order.
func (p *Poller) Adapters() []*Adapter {
	return p.adapters
}

// Aggregate reads the summed counters of every device except loopback.
func (p *Poller) Aggregate() (CounterSnapshot, bool) {
	return p.reader.ReadAggregateStats(nil)
}

// Interval returns the sampling period.
func (p *Poller) Interval() time.Duration {
	return time.Duration(p.interval) * time.Second
}

// Sample performs one tick over every adapter and returns the readings.
func (p *Poller) Sample() []Reading {
	now := p.clock.Now()
	readings := make([]Reading, 0, len(p.adapters))
	for _, a := range p.adapters {
		readings = append(readings, p.sampleAdapter(a, now))
	}
	return readings
}

// sampleAdapter updates one adapter in place. A rate is produced only when
// both the baseline and the current read succeeded; otherwise the adapter is
// Unknown for this tick.
func (p *Poller) sampleAdapter(a *Adapter, now time.Time) Reading {
	a.State = p.detector.InterfaceState(a.Name, a.Wireless)
	if a.Wireless && a.State == StateConnected {
		a.SSID = p.ssid.Resolve(a.Name)
	} else {
		a.SSID = ""
	}

	cur, ok := p.reader.ReadInterfaceStats(a.Name)
	if !ok || !a.HavePrev {
		if !ok {
			log.Debug("counter read failed", "iface", a.Name)
		}
		a.State = StateUnknown
		a.SSID = ""
		a.Prev, a.HavePrev = cur, ok
		return Reading{Name: a.Name, Wireless: a.Wireless, State: a.State, Counters: cur, Timestamp: now}
	}

	rate, err := CalculateRate(a.Prev, cur, p.interval)
	if errors.Is(err, ErrCounterWrap) {
		// Treat the decreased counter as a new baseline.
		log.Debug("counter decreased, re-baselining", "iface", a.Name,
			"prev_rx", a.Prev.RxBytes, "rx", cur.RxBytes,
			"prev_tx", a.Prev.TxBytes, "tx", cur.TxBytes)
	}
	a.Prev = cur

	return Reading{
		Name:      a.Name,
		Wireless:  a.Wireless,
		State:     a.State,
		SSID:      a.SSID,
		Rate:      rate,
		Counters:  cur,
		RateValid: true,
		Timestamp: now,
	}
}

// Tick samples every adapter, then writes and flushes one line, or writes
// nothing when no adapter produced a segment.
func (p *Poller) Tick() error {
	line := p.renderer.Line(p.Sample())
	if line != "" {
		if _, err := p.out.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return p.out.Flush()
}

// Run waits out the interval and ticks until Stop is called. A Stop during
// the wait returns at once without another tick; a tick already under way
// always finishes its line.
func (p *Poller) Run() error {
	for {
		select {
		case <-p.stop:
			return nil
		case <-p.clock.After(p.Interval()):
		}
		select {
		case <-p.stop:
			return nil
		default:
		}
		if err := p.Tick(); err != nil {
			return err
		}
	}
}

// Stop ends Run. Safe to call more than once and from a signal-handling
// goroutine.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}
