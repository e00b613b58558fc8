package data

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// ValidateSeries enforces the boundary invariants on a loaded price series:
// strictly increasing timestamps (no duplicates), low <= open,close <= high
// per point, non-negative volume. The analysis core assumes validated input
// and never re-checks these, so every provider runs this before returning.
func ValidateSeries(data []types.OHLCV) error {
	for i, d := range data {
		if d.Low > d.High {
			return fmt.Errorf("invalid candle at index %d (%s): low %.8f above high %.8f",
				i, d.Timestamp.Format(time.RFC3339), d.Low, d.High)
		}
		if d.Open < d.Low || d.Open > d.High {
			return fmt.Errorf("invalid candle at index %d (%s): open %.8f outside low/high envelope",
				i, d.Timestamp.Format(time.RFC3339), d.Open)
		}
		if d.Close < d.Low || d.Close > d.High {
			return fmt.Errorf("invalid candle at index %d (%s): close %.8f outside low/high envelope",
				i, d.Timestamp.Format(time.RFC3339), d.Close)
		}
		if d.Volume < 0 {
			return fmt.Errorf("invalid candle at index %d (%s): negative volume %.8f",
				i, d.Timestamp.Format(time.RFC3339), d.Volume)
		}
		if i > 0 && !data[i-1].Timestamp.Before(d.Timestamp) {
			return fmt.Errorf("out-of-order candle at index %d: %s does not follow %s",
				i, d.Timestamp.Format(time.RFC3339), data[i-1].Timestamp.Format(time.RFC3339))
		}
	}
	return nil
}

// ParseTrailingPeriod parses period strings like "7d", "30d", "365d" into a
// duration. Raw durations (e.g. "168h") are accepted too.
func ParseTrailingPeriod(s string) (time.Duration, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasSuffix(s, "days") {
		s = strings.TrimSuffix(s, "days") + "d"
	}
	if strings.HasSuffix(s, "d") {
		nStr := strings.TrimSuffix(s, "d")
		if nStr == "" {
			return 0, false
		}
		n, err := strconv.Atoi(nStr)
		if err != nil || n <= 0 {
			return 0, false
		}
		return time.Duration(n) * 24 * time.Hour, true
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, true
	}
	return 0, false
}
