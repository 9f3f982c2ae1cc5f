package engine

import (
	"math"
	"testing"
)

func TestAvgRate(t *testing.T) {
	if got := AvgRate(6000, 4000, 2); got != 1000.0 {
		t.Errorf("AvgRate(6000, 4000, 2) = %f, want 1000", got)
	}
}

func TestAvgRateZeroElapsed(t *testing.T) {
	tests := []struct {
		now, old uint64
	}{
		{10, 10},
		{0, 0},
		{math.MaxUint64, 0},
		{0, math.MaxUint64},
	}
	for _, tt := range tests {
		if got := AvgRate(tt.now, tt.old, 0); got != 0 {
			t.Errorf("AvgRate(%d, %d, 0) = %f, want 0", tt.now, tt.old, got)
		}
	}
}

// A decreasing counter is not corrected by AvgRate; the unsigned delta wraps.
func TestAvgRateCounterDecreaseWraps(t *testing.T) {
	got := AvgRate(100, 200, 1)
	want := float64(uint64(math.MaxUint64) - 99)
	if got != want {
		t.Errorf("AvgRate(100, 200, 1) = %g, want %g", got, want)
	}
	if got < 1e18 {
		t.Errorf("expected a spuriously huge rate, got %g", got)
	}
}

func TestCalculateRate(t *testing.T) {
	prev := CounterSnapshot{RxBytes: 1000, TxBytes: 500}
	curr := CounterSnapshot{RxBytes: 3000, TxBytes: 1500}
	rate, err := CalculateRate(prev, curr, 2)
	if err != nil {
		t.Fatalf("CalculateRate() error: %v", err)
	}
	if rate.Rx != 1000 {
		t.Errorf("expected Rx 1000, got %f", rate.Rx)
	}
	if rate.Tx != 500 {
		t.Errorf("expected Tx 500, got %f", rate.Tx)
	}
}

func TestCalculateRateCounterWrap(t *testing.T) {
	prev := CounterSnapshot{RxBytes: 100, TxBytes: 50}
	curr := CounterSnapshot{RxBytes: 100, TxBytes: 10}
	_, err := CalculateRate(prev, curr, 1)
	if err != ErrCounterWrap {
		t.Errorf("expected ErrCounterWrap, got %v", err)
	}
}

func TestCalculateRateZeroElapsed(t *testing.T) {
	_, err := CalculateRate(CounterSnapshot{}, CounterSnapshot{RxBytes: 5}, 0)
	if err != ErrZeroElapsed {
		t.Errorf("expected ErrZeroElapsed, got %v", err)
	}
}

func TestIfStateDistinct(t *testing.T) {
	states := []IfState{StateDisabled, StateDisconnected, StateConnected, StateUnknown}
	seen := make(map[IfState]bool)
	for _, s := range states {
		if seen[s] {
			t.Errorf("duplicate state value %d (%s)", s, s)
		}
		seen[s] = true
	}
	names := make(map[string]bool)
	for _, s := range states {
		names[s.String()] = true
	}
	if len(names) != 4 {
		t.Errorf("expected 4 distinct state names, got %d", len(names))
	}
}
