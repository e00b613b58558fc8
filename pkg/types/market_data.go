package types

import "time"

// OHLCV is a single price observation on the analyzed series.
// Timestamps within a series are strictly increasing; the low/high envelope
// contains both open and close.
type OHLCV struct {
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Timestamp time.Time
}

// Ticker is the latest quoted price for a symbol.
type Ticker struct {
	Symbol    string
	Price     float64
	Volume    float64
	Timestamp time.Time
}

// Closes extracts the closing prices of a series, preserving order.
func Closes(data []OHLCV) []float64 {
	closes := make([]float64, len(data))
	for i, d := range data {
		closes[i] = d.Close
	}
	return closes
}
