package indicators

import (
	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// RSI is the Relative Strength Index using Wilder's smoothing method.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with the given period (typically 14).
func NewRSI(period int) *RSI {
	return &RSI{period: period}
}

// Series computes the RSI for every index of the input, aligned 1:1.
// The first defined sample sits at index == period (one change per pair of
// closes, so `period` changes need period+1 observations). The seed averages
// the first `period` gains and losses; subsequent samples use Wilder's
// smoothing:
//
//	avgGain = (avgGain*(period-1) + gain) / period
//
// avgLoss == 0 is a defined case and yields RSI = 100 exactly.
func (r *RSI) Series(data []types.OHLCV) []float64 {
	out := undefinedSeries(len(data))
	if len(data) < r.period+1 {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= r.period; i++ {
		change := data[i].Close - data[i-1].Close
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(r.period)
	avgLoss /= float64(r.period)
	out[r.period] = rsiValue(avgGain, avgLoss)

	n := float64(r.period)
	for i := r.period + 1; i < len(data); i++ {
		change := data[i].Close - data[i-1].Close
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*(n-1) + gain) / n
		avgLoss = (avgLoss*(n-1) + loss) / n
		out[i] = rsiValue(avgGain, avgLoss)
	}

	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// GetName returns the indicator name.
func (r *RSI) GetName() string {
	return "RSI"
}

// GetRequiredPeriods returns the minimum number of observations needed
// before the series has a defined value.
func (r *RSI) GetRequiredPeriods() int {
	return r.period + 1
}
