package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBollingerBands(t *testing.T) {
	bb := NewBollingerBands(20, 2.0)

	assert.NotNil(t, bb)
	assert.Equal(t, 20, bb.period)
	assert.Equal(t, 2.0, bb.stdDev)
}

func TestBollingerBands_Series_InsufficientData(t *testing.T) {
	bb := NewBollingerBands(20, 2.0)
	data := increasingSeries(10, 100, 1)

	upper, middle, lower := bb.Series(data)
	require.Len(t, middle, 10)
	assert.Equal(t, -1, definedFrom(upper))
	assert.Equal(t, -1, definedFrom(middle))
	assert.Equal(t, -1, definedFrom(lower))
}

func TestBollingerBands_Series_WarmupPrefix(t *testing.T) {
	bb := NewBollingerBands(5, 2.0)
	data := increasingSeries(12, 100, 1)

	upper, middle, lower := bb.Series(data)
	assert.Equal(t, 4, definedFrom(upper))
	assert.Equal(t, 4, definedFrom(middle))
	assert.Equal(t, 4, definedFrom(lower))
}

func TestBollingerBands_Series_MatchesManualStdDev(t *testing.T) {
	bb := NewBollingerBands(5, 2.0)
	closes := []float64{100, 104, 98, 103, 101}
	data := closesToSeries(closes)

	upper, middle, lower := bb.Series(data)

	mean := 0.0
	for _, c := range closes {
		mean += c
	}
	mean /= 5

	variance := 0.0
	for _, c := range closes {
		diff := c - mean
		variance += diff * diff
	}
	variance /= 5 // population standard deviation
	sd := math.Sqrt(variance)

	assert.InDelta(t, mean, middle[4], 1e-9)
	assert.InDelta(t, mean+2*sd, upper[4], 1e-9)
	assert.InDelta(t, mean-2*sd, lower[4], 1e-9)
}

func TestBollingerBands_Series_MiddleEqualsSMA(t *testing.T) {
	bb := NewBollingerBands(20, 2.0)
	sma := NewSMA(20)
	data := sawtoothSeries(80, 100, 4)

	_, middle, _ := bb.Series(data)
	smaSeries := sma.Series(data)

	for i := range middle {
		if !IsDefined(middle[i]) {
			assert.False(t, IsDefined(smaSeries[i]), "index %d", i)
			continue
		}
		assert.InDelta(t, smaSeries[i], middle[i], 1e-9, "index %d", i)
	}
}

func TestBollingerBands_Series_Ordering(t *testing.T) {
	bb := NewBollingerBands(20, 2.0)
	data := sawtoothSeries(120, 100, 7)

	upper, middle, lower := bb.Series(data)
	for i := range middle {
		if !IsDefined(middle[i]) {
			continue
		}
		assert.LessOrEqual(t, lower[i], middle[i], "index %d", i)
		assert.LessOrEqual(t, middle[i], upper[i], "index %d", i)
	}
}

func TestBollingerBands_Series_FlatData(t *testing.T) {
	bb := NewBollingerBands(5, 2.0)
	data := flatSeries(8, 100)

	upper, middle, lower := bb.Series(data)
	for i := 4; i < 8; i++ {
		assert.InDelta(t, 100.0, middle[i], 1e-9)
		assert.InDelta(t, 100.0, upper[i], 1e-9)
		assert.InDelta(t, 100.0, lower[i], 1e-9)
	}
}

func TestBollingerBands_Series_NegativeVarianceClamp(t *testing.T) {
	// Large magnitudes with tiny spread provoke floating-point cancellation
	// in the rolling E[X²]-(E[X])² variance; bands must never invert or NaN.
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 1e9 + float64(i%2)*1e-3
	}
	data := closesToSeries(closes)

	upper, middle, lower := NewBollingerBands(20, 2.0).Series(data)
	for i := 19; i < 40; i++ {
		require.True(t, IsDefined(middle[i]), "index %d", i)
		assert.False(t, math.IsNaN(upper[i]), "index %d", i)
		assert.LessOrEqual(t, lower[i], upper[i], "index %d", i)
	}
}

func TestBollingerBands_GetName(t *testing.T) {
	assert.Equal(t, "Bollinger Bands", NewBollingerBands(20, 2.0).GetName())
}

func BenchmarkBollingerBands_Series(b *testing.B) {
	bb := NewBollingerBands(20, 2.0)
	data := sawtoothSeries(1000, 100, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = bb.Series(data)
	}
}
