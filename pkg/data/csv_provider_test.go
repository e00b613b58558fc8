package data

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candles.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVProvider_GetHistoricalData(t *testing.T) {
	path := writeCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,102,99,101,1000
2024-01-02 00:00:00,101,103,100,102,1100
2024-01-03 00:00:00,102,104,101,103,1200
`)

	provider := NewCSVProvider(path)
	data, err := provider.GetHistoricalData(context.Background(), Request{Symbol: "BTCUSDT"})
	require.NoError(t, err)
	require.Len(t, data, 3)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), data[0].Timestamp)
	assert.Equal(t, 100.0, data[0].Open)
	assert.Equal(t, 102.0, data[0].High)
	assert.Equal(t, 99.0, data[0].Low)
	assert.Equal(t, 101.0, data[0].Close)
	assert.Equal(t, 1000.0, data[0].Volume)
}

func TestCSVProvider_SortsUnorderedRows(t *testing.T) {
	path := writeCSV(t, `timestamp,open,high,low,close,volume
2024-01-03 00:00:00,102,104,101,103,1200
2024-01-01 00:00:00,100,102,99,101,1000
2024-01-02 00:00:00,101,103,100,102,1100
`)

	data, err := NewCSVProvider(path).GetHistoricalData(context.Background(), Request{})
	require.NoError(t, err)
	require.Len(t, data, 3)
	for i := 1; i < len(data); i++ {
		assert.True(t, data[i].Timestamp.After(data[i-1].Timestamp))
	}
}

func TestCSVProvider_ClipsToRequestedRange(t *testing.T) {
	path := writeCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,102,99,101,1000
2024-01-02 00:00:00,101,103,100,102,1100
2024-01-03 00:00:00,102,104,101,103,1200
2024-01-04 00:00:00,103,105,102,104,1300
`)

	req := Request{
		Start: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	data, err := NewCSVProvider(path).GetHistoricalData(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, req.Start, data[0].Timestamp)
	assert.Equal(t, req.End, data[1].Timestamp)
}

func TestCSVProvider_SkipsMalformedRows(t *testing.T) {
	path := writeCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,102,99,101,1000
not-a-date,101,103,100,102,1100
2024-01-02 00:00:00,oops,103,100,102,1100
2024-01-03 00:00:00,102,104
2024-01-04 00:00:00,103,105,102,104,1300
`)

	data, err := NewCSVProvider(path).GetHistoricalData(context.Background(), Request{})
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, 101.0, data[0].Close)
	assert.Equal(t, 104.0, data[1].Close)
}

func TestCSVProvider_EpochTimestamps(t *testing.T) {
	// Bybit exports use millisecond epochs; second epochs also appear.
	path := writeCSV(t, `timestamp,open,high,low,close,volume
1704067200000,100,102,99,101,1000
1704153600,101,103,100,102,1100
`)

	data, err := NewCSVProvider(path).GetHistoricalData(context.Background(), Request{})
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), data[0].Timestamp.UTC())
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), data[1].Timestamp.UTC())
}

func TestCSVProvider_InvalidCandleFailsValidation(t *testing.T) {
	path := writeCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,99,102,101,1000
`)

	_, err := NewCSVProvider(path).GetHistoricalData(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestCSVProvider_MissingFile(t *testing.T) {
	_, err := NewCSVProvider(filepath.Join(t.TempDir(), "nope.csv")).
		GetHistoricalData(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestCSVProvider_CustomFormat(t *testing.T) {
	format := CSVColumnMapping{
		TimestampCol: 5,
		OpenCol:      0,
		HighCol:      1,
		LowCol:       2,
		CloseCol:     3,
		VolumeCol:    4,
		MinColumns:   6,
		DateFormat:   "2006-01-02",
	}
	path := writeCSV(t, `open,high,low,close,volume,date
100,102,99,101,1000,2024-01-01
`)

	data, err := NewCSVProviderWithFormat(path, format).
		GetHistoricalData(context.Background(), Request{})
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, 101.0, data[0].Close)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), data[0].Timestamp)
}

func TestCSVProvider_GetName(t *testing.T) {
	assert.Equal(t, "CSV Provider", NewCSVProvider("x.csv").GetName())
}
