package indicators

import (
	"math"

	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// BollingerBands is the Bollinger Bands volatility envelope: an SMA middle
// band with upper/lower bands at stdDev population standard deviations.
type BollingerBands struct {
	period int
	stdDev float64
}

// NewBollingerBands creates a new Bollinger Bands indicator with the given
// window and standard deviation multiplier.
func NewBollingerBands(period int, stdDev float64) *BollingerBands {
	return &BollingerBands{
		period: period,
		stdDev: stdDev,
	}
}

// Series computes the three bands for every index of the input, aligned 1:1.
// Samples are undefined wherever the middle band (SMA) is undefined. Rolling
// sum and sum of squares give O(1) variance per index via
// Var = E[X²] - (E[X])².
func (bb *BollingerBands) Series(data []types.OHLCV) (upper, middle, lower []float64) {
	upper = undefinedSeries(len(data))
	middle = undefinedSeries(len(data))
	lower = undefinedSeries(len(data))
	if len(data) < bb.period {
		return upper, middle, lower
	}

	sum := 0.0
	sumSquares := 0.0
	for i, d := range data {
		sum += d.Close
		sumSquares += d.Close * d.Close
		if i >= bb.period {
			old := data[i-bb.period].Close
			sum -= old
			sumSquares -= old * old
		}
		if i < bb.period-1 {
			continue
		}

		mean := sum / float64(bb.period)
		variance := sumSquares/float64(bb.period) - mean*mean
		// Guard against negative variance from floating-point cancellation
		if variance < 0 {
			variance = 0
		}
		sd := math.Sqrt(variance)

		middle[i] = mean
		upper[i] = mean + bb.stdDev*sd
		lower[i] = mean - bb.stdDev*sd
	}

	return upper, middle, lower
}

// GetName returns the indicator name.
func (bb *BollingerBands) GetName() string {
	return "Bollinger Bands"
}

// GetRequiredPeriods returns the minimum number of observations needed
// before the series has a defined value.
func (bb *BollingerBands) GetRequiredPeriods() int {
	return bb.period
}
