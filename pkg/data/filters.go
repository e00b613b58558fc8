package data

import (
	"time"

	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// FilterByPeriod keeps only the trailing period of a chronologically sorted
// series, measured back from its latest timestamp.
func FilterByPeriod(data []types.OHLCV, period time.Duration) []types.OHLCV {
	if period <= 0 || len(data) == 0 {
		return data
	}

	latestTime := data[len(data)-1].Timestamp
	cutoffTime := latestTime.Add(-period)

	startIdx := len(data)
	for i, candle := range data {
		if !candle.Timestamp.Before(cutoffTime) {
			startIdx = i
			break
		}
	}

	return data[startIdx:]
}

// FilterByDateRange keeps candles with start <= timestamp <= end.
func FilterByDateRange(data []types.OHLCV, start, end time.Time) []types.OHLCV {
	if len(data) == 0 {
		return data
	}

	var filtered []types.OHLCV
	for _, candle := range data {
		if !candle.Timestamp.Before(start) && !candle.Timestamp.After(end) {
			filtered = append(filtered, candle)
		}
	}
	return filtered
}

// RemoveDuplicates drops candles repeating an earlier timestamp, keeping the
// first occurrence. Input is assumed sorted.
func RemoveDuplicates(data []types.OHLCV) []types.OHLCV {
	if len(data) <= 1 {
		return data
	}

	filtered := data[:1]
	for _, candle := range data[1:] {
		if candle.Timestamp.After(filtered[len(filtered)-1].Timestamp) {
			filtered = append(filtered, candle)
		}
	}
	return filtered
}
