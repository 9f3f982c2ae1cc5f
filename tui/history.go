package tui

import (
	"errors"
	"time"

	"github.com/tonhe/bwbar/internal/engine"
)

// TotalName labels the aggregate row.
const TotalName = "total"

// History keeps the in-memory rate history of every adapter plus the
// aggregate of all non-loopback devices. Nothing is persisted.
type History struct {
	max      int
	interval uint
	adapters map[string]*engine.RingBuffer[engine.RateSample]
	total    *engine.RingBuffer[engine.RateSample]

	prevTotal engine.CounterSnapshot
	haveTotal bool
	lastTotal engine.Rate
}

// NewHistory creates a History holding up to max samples per series. The
// interval is the sampling period used for the aggregate rate.
func NewHistory(max int, interval uint) *History {
	return &History{
		max:      max,
		interval: interval,
		adapters: make(map[string]*engine.RingBuffer[engine.RateSample]),
		total:    engine.NewRingBuffer[engine.RateSample](max),
	}
}

// Seed sets the aggregate baseline before the first tick.
func (h *History) Seed(total engine.CounterSnapshot, ok bool) {
	h.prevTotal, h.haveTotal = total, ok
}

// Record appends one tick. Adapters without a valid rate get no sample.
func (h *History) Record(readings []engine.Reading, total engine.CounterSnapshot, totalOK bool, now time.Time) {
	for _, r := range readings {
		if !r.RateValid {
			continue
		}
		h.For(r.Name).Add(engine.RateSample{Timestamp: now, Rx: r.Rate.Rx, Tx: r.Rate.Tx})
	}

	if !totalOK {
		h.haveTotal = false
		h.lastTotal = engine.Rate{}
		return
	}
	if h.haveTotal {
		rate, err := engine.CalculateRate(h.prevTotal, total, h.interval)
		if errors.Is(err, engine.ErrCounterWrap) {
			log.Debug("aggregate counter decreased, re-baselining")
		}
		h.lastTotal = rate
		h.total.Add(engine.RateSample{Timestamp: now, Rx: rate.Rx, Tx: rate.Tx})
	}
	h.prevTotal, h.haveTotal = total, true
}

// For returns the history of the named adapter, creating it on first use.
func (h *History) For(name string) *engine.RingBuffer[engine.RateSample] {
	rb, ok := h.adapters[name]
	if !ok {
		rb = engine.NewRingBuffer[engine.RateSample](h.max)
		h.adapters[name] = rb
	}
	return rb
}

// Total returns the aggregate history.
func (h *History) Total() *engine.RingBuffer[engine.RateSample] {
	return h.total
}

// TotalRate returns the most recent aggregate rate.
func (h *History) TotalRate() engine.Rate {
	return h.lastTotal
}
