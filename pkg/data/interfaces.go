package data

import (
	"context"
	"fmt"
	"time"

	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// Request identifies one slice of market history to load.
type Request struct {
	Symbol   string    // Trading pair symbol (e.g. "BTCUSDT")
	Interval string    // Candle interval (e.g. "1h", "4h", "1d")
	Category string    // Market category for exchange providers ("spot", "linear")
	Start    time.Time // Zero value means provider default
	End      time.Time // Zero value means "now"
}

// CacheKey returns a deterministic key for this request, used by
// CachedProvider. The key covers symbol, interval, category and range so two
// different ranges of the same symbol never collide.
func (r Request) CacheKey() string {
	return fmt.Sprintf("%s|%s|%s|%d|%d",
		r.Symbol, r.Interval, r.Category, r.Start.UnixMilli(), r.End.UnixMilli())
}

// Provider loads historical price data from some source (exchange API, CSV
// export). Implementations return series already validated and sorted by
// ascending timestamp.
type Provider interface {
	// GetHistoricalData loads the price series described by the request.
	GetHistoricalData(ctx context.Context, req Request) ([]types.OHLCV, error)

	// GetName returns the name of the data provider.
	GetName() string
}

// Cache stores loaded series for reuse within a process.
type Cache interface {
	// Get retrieves data from cache if available.
	Get(key string) ([]types.OHLCV, bool)

	// Set stores data in cache.
	Set(key string, data []types.OHLCV)

	// Clear removes all cached data.
	Clear()

	// Size returns the number of cached entries.
	Size() int
}

// CSVColumnMapping defines the column positions for different CSV formats.
type CSVColumnMapping struct {
	TimestampCol int
	OpenCol      int
	HighCol      int
	LowCol       int
	CloseCol     int
	VolumeCol    int
	MinColumns   int
	DateFormat   string
}

// DefaultCSVFormat matches exports with a leading datetime column followed
// by open, high, low, close, volume.
var DefaultCSVFormat = CSVColumnMapping{
	TimestampCol: 0,
	OpenCol:      1,
	HighCol:      2,
	LowCol:       3,
	CloseCol:     4,
	VolumeCol:    5,
	MinColumns:   6,
	DateFormat:   "2006-01-02 15:04:05",
}
