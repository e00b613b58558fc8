package indicators

import (
	"time"

	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

var testBase = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// closesToSeries builds a daily candle series from closing prices.
func closesToSeries(closes []float64) []types.OHLCV {
	data := make([]types.OHLCV, len(closes))
	for i, c := range closes {
		data[i] = types.OHLCV{
			Timestamp: testBase.AddDate(0, 0, i),
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    1000,
		}
	}
	return data
}

// increasingSeries returns count daily candles with closes start, start+step, ...
func increasingSeries(count int, start, step float64) []types.OHLCV {
	closes := make([]float64, count)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}
	return closesToSeries(closes)
}

// flatSeries returns count daily candles all closing at price.
func flatSeries(count int, price float64) []types.OHLCV {
	closes := make([]float64, count)
	for i := range closes {
		closes[i] = price
	}
	return closesToSeries(closes)
}

// sawtoothSeries alternates between base-amp and base+amp.
func sawtoothSeries(count int, base, amp float64) []types.OHLCV {
	closes := make([]float64, count)
	for i := range closes {
		if i%2 == 0 {
			closes[i] = base - amp
		} else {
			closes[i] = base + amp
		}
	}
	return closesToSeries(closes)
}

// definedFrom returns the index of the first defined sample, or -1.
func definedFrom(series []float64) int {
	for i, v := range series {
		if IsDefined(v) {
			return i
		}
	}
	return -1
}
