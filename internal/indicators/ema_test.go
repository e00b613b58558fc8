package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEMA(t *testing.T) {
	ema := NewEMA(20)

	assert.NotNil(t, ema)
	assert.InDelta(t, 2.0/21.0, ema.alpha, 1e-12)
	assert.Equal(t, 20, ema.GetRequiredPeriods())
}

func TestEMA_Series_InsufficientData(t *testing.T) {
	ema := NewEMA(20)
	data := increasingSeries(10, 100, 1)

	series := ema.Series(data)
	require.Len(t, series, 10)
	assert.Equal(t, -1, definedFrom(series))
}

func TestEMA_Series_SeededWithSMA(t *testing.T) {
	ema := NewEMA(5)
	data := increasingSeries(10, 100, 1)

	series := ema.Series(data)

	// Seed at index 4 equals SMA(5) there
	assert.Equal(t, 4, definedFrom(series))
	assert.InDelta(t, 102.0, series[4], 1e-9)
}

func TestEMA_Series_Recursion(t *testing.T) {
	ema := NewEMA(5)
	data := increasingSeries(10, 100, 1)

	series := ema.Series(data)

	alpha := 2.0 / 6.0
	want := 102.0
	for i := 5; i < 10; i++ {
		want = data[i].Close*alpha + want*(1-alpha)
		assert.InDelta(t, want, series[i], 1e-9, "index %d", i)
	}
}

func TestEMA_Series_FlatData(t *testing.T) {
	ema := NewEMA(5)
	data := flatSeries(12, 250)

	series := ema.Series(data)
	for i := 4; i < 12; i++ {
		assert.InDelta(t, 250.0, series[i], 1e-9)
	}
}

func TestEMA_Series_ReactsFasterThanSMA(t *testing.T) {
	// EMA weights recent values more, so it responds to a price jump sooner
	// than the SMA over the same window.
	closes := make([]float64, 40)
	for i := range closes {
		if i < 30 {
			closes[i] = 100
		} else {
			closes[i] = 200
		}
	}
	data := closesToSeries(closes)

	emaSeries := NewEMA(20).Series(data)
	smaSeries := NewSMA(20).Series(data)

	assert.Greater(t, emaSeries[30], smaSeries[30])
}

func TestEMA_GetName(t *testing.T) {
	assert.Equal(t, "EMA", NewEMA(20).GetName())
}

func BenchmarkEMA_Series(b *testing.B) {
	ema := NewEMA(20)
	data := increasingSeries(1000, 100, 0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ema.Series(data)
	}
}
