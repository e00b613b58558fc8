package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

var testBase = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func dailyCandles(n int) []types.OHLCV {
	data := make([]types.OHLCV, n)
	for i := range data {
		close := 100 + float64(i)
		data[i] = types.OHLCV{
			Open:      close - 0.5,
			High:      close + 1,
			Low:       close - 1,
			Close:     close,
			Volume:    1000,
			Timestamp: testBase.Add(time.Duration(i) * 24 * time.Hour),
		}
	}
	return data
}

func TestValidateSeries_Valid(t *testing.T) {
	assert.NoError(t, ValidateSeries(dailyCandles(10)))
	assert.NoError(t, ValidateSeries(nil))
}

func TestValidateSeries_LowAboveHigh(t *testing.T) {
	data := dailyCandles(5)
	data[2].Low = data[2].High + 1

	err := ValidateSeries(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 2")
	assert.Contains(t, err.Error(), "low")
}

func TestValidateSeries_OpenOutsideEnvelope(t *testing.T) {
	data := dailyCandles(5)
	data[1].Open = data[1].High + 5

	err := ValidateSeries(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open")
}

func TestValidateSeries_CloseOutsideEnvelope(t *testing.T) {
	data := dailyCandles(5)
	data[3].Close = data[3].Low - 5

	err := ValidateSeries(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close")
}

func TestValidateSeries_NegativeVolume(t *testing.T) {
	data := dailyCandles(5)
	data[4].Volume = -1

	err := ValidateSeries(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume")
}

func TestValidateSeries_DuplicateTimestamp(t *testing.T) {
	data := dailyCandles(5)
	data[3].Timestamp = data[2].Timestamp

	err := ValidateSeries(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out-of-order")
}

func TestValidateSeries_OutOfOrderTimestamps(t *testing.T) {
	data := dailyCandles(5)
	data[1].Timestamp = data[4].Timestamp.Add(time.Hour)

	err := ValidateSeries(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 2")
}

func TestParseTrailingPeriod(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		ok       bool
	}{
		{"7d", 7 * 24 * time.Hour, true},
		{"365d", 365 * 24 * time.Hour, true},
		{"30days", 30 * 24 * time.Hour, true},
		{" 7D ", 7 * 24 * time.Hour, true},
		{"168h", 168 * time.Hour, true},
		{"90m", 90 * time.Minute, true},
		{"d", 0, false},
		{"0d", 0, false},
		{"-3d", 0, false},
		{"sevend", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseTrailingPeriod(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.expected, got, "input %q", tc.input)
		}
	}
}

func TestRequest_CacheKey(t *testing.T) {
	req := Request{
		Symbol:   "BTCUSDT",
		Interval: "1d",
		Category: "spot",
		Start:    testBase,
		End:      testBase.AddDate(0, 0, 30),
	}

	assert.Equal(t, req.CacheKey(), req.CacheKey())

	other := req
	other.End = other.End.Add(24 * time.Hour)
	assert.NotEqual(t, req.CacheKey(), other.CacheKey())

	symbol := req
	symbol.Symbol = "ETHUSDT"
	assert.NotEqual(t, req.CacheKey(), symbol.CacheKey())
}
