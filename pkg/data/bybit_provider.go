package data

import (
	"context"
	"fmt"

	"github.com/ducminhle1904/crypto-analyzer/internal/exchange/bybit"
	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// BybitProvider implements Provider on top of the Bybit kline API.
type BybitProvider struct {
	client *bybit.Client
}

// NewBybitProvider creates a provider fetching from Bybit.
func NewBybitProvider(client *bybit.Client) *BybitProvider {
	return &BybitProvider{client: client}
}

// GetName returns the name of the data provider.
func (p *BybitProvider) GetName() string {
	return "Bybit Provider"
}

// GetHistoricalData fetches klines for the requested range, converts them to
// the analyzer's candle type and validates the series at the boundary.
func (p *BybitProvider) GetHistoricalData(ctx context.Context, req Request) ([]types.OHLCV, error) {
	interval, err := toBybitInterval(req.Interval)
	if err != nil {
		return nil, err
	}

	params := bybit.KlineParams{
		Category: req.Category,
		Symbol:   req.Symbol,
		Interval: interval,
		Limit:    1000,
	}
	if !req.Start.IsZero() {
		start := req.Start
		params.Start = &start
	}
	if !req.End.IsZero() {
		end := req.End
		params.End = &end
	}

	klines, err := p.client.GetKlines(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("bybit fetch for %s failed: %w", req.Symbol, err)
	}

	data := make([]types.OHLCV, len(klines))
	for i, k := range klines {
		data[i] = types.OHLCV{
			Timestamp: k.StartTime,
			Open:      k.OpenPrice,
			High:      k.HighPrice,
			Low:       k.LowPrice,
			Close:     k.ClosePrice,
			Volume:    k.Volume,
		}
	}

	if err := ValidateSeries(data); err != nil {
		return nil, fmt.Errorf("bybit data failed validation: %w", err)
	}
	return data, nil
}

// toBybitInterval maps human interval strings to the Bybit API notation.
func toBybitInterval(interval string) (bybit.KlineInterval, error) {
	switch interval {
	case "1m":
		return bybit.Interval1m, nil
	case "5m":
		return bybit.Interval5m, nil
	case "15m":
		return bybit.Interval15m, nil
	case "30m":
		return bybit.Interval30m, nil
	case "1h":
		return bybit.Interval1h, nil
	case "4h":
		return bybit.Interval4h, nil
	case "1d", "D":
		return bybit.Interval1d, nil
	case "1w", "W":
		return bybit.Interval1w, nil
	default:
		return "", fmt.Errorf("unsupported interval %q", interval)
	}
}
