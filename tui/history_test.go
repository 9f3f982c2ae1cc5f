package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonhe/bwbar/internal/engine"
)

func TestHistoryRecordsValidRates(t *testing.T) {
	h := NewHistory(3, 1)
	now := time.Unix(100, 0)

	h.Record([]engine.Reading{
		{Name: "eth0", Rate: engine.Rate{Rx: 10, Tx: 5}, RateValid: true},
		{Name: "wlan0", State: engine.StateUnknown},
	}, engine.CounterSnapshot{}, false, now)

	last, ok := h.For("eth0").Last()
	require.True(t, ok)
	assert.Equal(t, engine.RateSample{Timestamp: now, Rx: 10, Tx: 5}, last)
	assert.Equal(t, 0, h.For("wlan0").Len())
}

func TestHistoryCapsSamples(t *testing.T) {
	h := NewHistory(2, 1)
	for i := 1; i <= 5; i++ {
		h.Record([]engine.Reading{{Name: "eth0", Rate: engine.Rate{Rx: float64(i)}, RateValid: true}},
			engine.CounterSnapshot{}, false, time.Unix(int64(i), 0))
	}
	series := engine.Series(h.For("eth0"), func(s engine.RateSample) float64 { return s.Rx })
	assert.Equal(t, []float64{4, 5}, series)
}

func TestHistoryTotal(t *testing.T) {
	h := NewHistory(10, 2)
	h.Seed(engine.CounterSnapshot{RxBytes: 1000, TxBytes: 100}, true)

	h.Record(nil, engine.CounterSnapshot{RxBytes: 3000, TxBytes: 500}, true, time.Unix(2, 0))
	assert.Equal(t, engine.Rate{Rx: 1000, Tx: 200}, h.TotalRate())
	assert.Equal(t, 1, h.Total().Len())

	// A decrease re-baselines at zero.
	h.Record(nil, engine.CounterSnapshot{RxBytes: 10, TxBytes: 10}, true, time.Unix(4, 0))
	assert.Equal(t, engine.Rate{}, h.TotalRate())

	h.Record(nil, engine.CounterSnapshot{RxBytes: 210, TxBytes: 10}, true, time.Unix(6, 0))
	assert.Equal(t, engine.Rate{Rx: 100}, h.TotalRate())
}

func TestHistoryTotalNeedsBaseline(t *testing.T) {
	h := NewHistory(10, 1)
	h.Seed(engine.CounterSnapshot{}, false)

	h.Record(nil, engine.CounterSnapshot{RxBytes: 500}, true, time.Unix(1, 0))
	assert.Equal(t, 0, h.Total().Len())

	h.Record(nil, engine.CounterSnapshot{}, false, time.Unix(2, 0))
	h.Record(nil, engine.CounterSnapshot{RxBytes: 900}, true, time.Unix(3, 0))
	assert.Equal(t, 0, h.Total().Len(), "unreadable tick drops the baseline")

	h.Record(nil, engine.CounterSnapshot{RxBytes: 1000}, true, time.Unix(4, 0))
	assert.Equal(t, engine.Rate{Rx: 100}, h.TotalRate())
}
