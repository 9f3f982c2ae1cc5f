package engine

import "errors"

var (
	// ErrCounterWrap indicates that a kernel counter decreased between samples.
	ErrCounterWrap = errors.New("counter wrap detected")
	// ErrZeroElapsed is returned when no time passed between samples.
	ErrZeroElapsed = errors.New("zero elapsed time")
)

// AvgRate returns the per-second delta between two counter values.
// The subtraction is unsigned, so a counter that went backwards yields a
// very large value. It returns 0 when elapsedSec is 0.
func AvgRate(now, old uint64, elapsedSec uint) float64 {
	if elapsedSec == 0 {
		return 0
	}
	return float64(now-old) / float64(elapsedSec)
}

// CalculateRate computes rx/tx bytes per second between two snapshots.
// Returns ErrCounterWrap if either counter has decreased.
func CalculateRate(prev, curr CounterSnapshot, elapsedSec uint) (Rate, error) {
	if elapsedSec == 0 {
		return Rate{}, ErrZeroElapsed
	}
	if curr.RxBytes < prev.RxBytes || curr.TxBytes < prev.TxBytes {
		return Rate{}, ErrCounterWrap
	}
	return Rate{
		Rx: AvgRate(curr.RxBytes, prev.RxBytes, elapsedSec),
		Tx: AvgRate(curr.TxBytes, prev.TxBytes, elapsedSec),
	}, nil
}
