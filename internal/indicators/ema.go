package indicators

import (
	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// EMA is the Exponential Moving Average over closing prices.
type EMA struct {
	period int
	alpha  float64
}

// NewEMA creates a new EMA indicator with the given window.
func NewEMA(period int) *EMA {
	return &EMA{
		period: period,
		alpha:  2.0 / float64(period+1), // Standard EMA alpha calculation
	}
}

// Series computes the EMA for every index of the input, aligned 1:1.
// The value at index period-1 is seeded with the SMA of the first period
// closes; later samples apply EMA = Close*alpha + Prev*(1-alpha). Samples
// before the seed are undefined.
func (e *EMA) Series(data []types.OHLCV) []float64 {
	out := undefinedSeries(len(data))
	if len(data) < e.period {
		return out
	}

	sum := 0.0
	for i := 0; i < e.period; i++ {
		sum += data[i].Close
	}
	out[e.period-1] = sum / float64(e.period)

	for i := e.period; i < len(data); i++ {
		out[i] = data[i].Close*e.alpha + out[i-1]*(1-e.alpha)
	}

	return out
}

// GetName returns the indicator name.
func (e *EMA) GetName() string {
	return "EMA"
}

// GetRequiredPeriods returns the minimum number of observations needed
// before the series has a defined value.
func (e *EMA) GetRequiredPeriods() int {
	return e.period
}
