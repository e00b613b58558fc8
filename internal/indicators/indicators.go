package indicators

import "math"

// Canonical series names produced by the Engine. Downstream consumers
// (reporting, charting) key on these.
const (
	SMA20    = "sma20"
	SMA50    = "sma50"
	EMA20    = "ema20"
	RSI14    = "rsi14"
	BBUpper  = "bb_upper"
	BBMiddle = "bb_middle"
	BBLower  = "bb_lower"
)

// Names lists every series the Engine produces, in presentation order.
var Names = []string{SMA20, SMA50, EMA20, RSI14, BBUpper, BBMiddle, BBLower}

// Undefined marks warm-up samples where an indicator has no value yet.
// Series are aligned 1:1 with the input, so early entries are NaN until
// enough history exists.
var Undefined = math.NaN()

// IsDefined reports whether a series sample carries a real value.
func IsDefined(v float64) bool {
	return !math.IsNaN(v)
}

// undefinedSeries returns a series of the given length with every sample
// undefined.
func undefinedSeries(length int) []float64 {
	s := make([]float64, length)
	for i := range s {
		s[i] = Undefined
	}
	return s
}

// LastDefined returns the most recent defined sample of a series, scanning
// backwards. The second return is false when the series is entirely
// undefined.
func LastDefined(series []float64) (float64, bool) {
	for i := len(series) - 1; i >= 0; i-- {
		if IsDefined(series[i]) {
			return series[i], true
		}
	}
	return 0, false
}
