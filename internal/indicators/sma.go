package indicators

import (
	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// SMA is the Simple Moving Average over closing prices.
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator with the given trailing window.
func NewSMA(period int) *SMA {
	return &SMA{period: period}
}

// Series computes the SMA for every index of the input, aligned 1:1.
// Samples before period-1 observations exist are undefined. Uses a rolling
// sum, so the whole series costs O(n).
func (s *SMA) Series(data []types.OHLCV) []float64 {
	out := undefinedSeries(len(data))
	if len(data) < s.period {
		return out
	}

	sum := 0.0
	for i, d := range data {
		sum += d.Close
		if i >= s.period {
			sum -= data[i-s.period].Close
		}
		if i >= s.period-1 {
			out[i] = sum / float64(s.period)
		}
	}

	return out
}

// GetName returns the indicator name.
func (s *SMA) GetName() string {
	return "SMA"
}

// GetRequiredPeriods returns the minimum number of observations needed
// before the series has a defined value.
func (s *SMA) GetRequiredPeriods() int {
	return s.period
}
