package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tonhe/bwbar/internal/render"
)

func TestSparkline(t *testing.T) {
	data := []float64{0, 25, 50, 75, 100, 50, 25, 0}
	result := Sparkline(data, 8)
	assert.Len(t, []rune(result), 8)
	assert.Equal(t, '▁', []rune(result)[0])
	assert.Equal(t, '█', []rune(result)[4])
}

func TestSparklineEmpty(t *testing.T) {
	assert.Equal(t, "        ", Sparkline(nil, 8))
}

func TestSparklineSingleValue(t *testing.T) {
	result := Sparkline([]float64{50}, 4)
	assert.Equal(t, "   ▄", result)
}

func TestSparklineKeepsNewest(t *testing.T) {
	result := Sparkline([]float64{100, 0, 0, 0, 10}, 2)
	assert.Equal(t, "▁█", result)
}

func TestCompactRate(t *testing.T) {
	tests := []struct {
		rate     float64
		unit     render.Unit
		divisor  uint
		expected string
	}{
		{0, render.UnitBytes, render.DivisorIEC, "0"},
		{500, render.UnitBytes, render.DivisorIEC, "500"},
		{1536, render.UnitBytes, render.DivisorIEC, "1.5K"},
		{1500, render.UnitBytes, render.DivisorSI, "1.5K"},
		{1500, render.UnitBits, render.DivisorSI, "12.0K"},
		{2.5 * 1024 * 1024 * 1024, render.UnitBytes, render.DivisorIEC, "2.5G"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, CompactRate(tt.rate, tt.unit, tt.divisor))
	}
}
