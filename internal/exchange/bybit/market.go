package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	bybit_api "github.com/bybit-exchange/bybit.go.api"

	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// KlineInterval represents the time interval for kline data.
type KlineInterval string

const (
	Interval1m  KlineInterval = "1"
	Interval5m  KlineInterval = "5"
	Interval15m KlineInterval = "15"
	Interval30m KlineInterval = "30"
	Interval1h  KlineInterval = "60"
	Interval4h  KlineInterval = "240"
	Interval1d  KlineInterval = "D"
	Interval1w  KlineInterval = "W"
)

// maxKlineLimit is the per-request record cap imposed by the Bybit API.
const maxKlineLimit = 1000

// Kline represents a single kline/candlestick data point.
type Kline struct {
	StartTime  time.Time
	OpenPrice  float64
	HighPrice  float64
	LowPrice   float64
	ClosePrice float64
	Volume     float64
	Turnover   float64
}

// KlineParams holds parameters for fetching kline data.
type KlineParams struct {
	Category string        // "spot", "linear", "inverse"
	Symbol   string        // Trading pair symbol (e.g. "BTCUSDT")
	Interval KlineInterval // Time interval
	Start    *time.Time    // Start time (optional)
	End      *time.Time    // End time (optional)
	Limit    int           // Records per request (max 1000, default 200)
}

// GetKlines fetches kline data from Bybit. When a start time is set the
// request is paginated forward until the range is covered or the API stops
// returning new records. The result is sorted by ascending start time;
// Bybit returns newest-first.
func (c *Client) GetKlines(ctx context.Context, params KlineParams) ([]Kline, error) {
	if params.Category == "" {
		params.Category = "spot"
	}
	if params.Limit <= 0 {
		params.Limit = 200
	}
	if params.Limit > maxKlineLimit {
		params.Limit = maxKlineLimit
	}

	var all []Kline
	cursor := params.Start

	for {
		page, err := c.getKlinePage(ctx, params, cursor)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		all = append(all, page...)

		// Single-shot request when no explicit range was asked for
		if params.Start == nil {
			break
		}

		newest := page[0].StartTime // page is newest-first here
		for _, k := range page {
			if k.StartTime.After(newest) {
				newest = k.StartTime
			}
		}
		if params.End != nil && !newest.Before(*params.End) {
			break
		}
		if len(page) < params.Limit {
			break
		}
		next := newest.Add(time.Millisecond)
		cursor = &next
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].StartTime.Before(all[j].StartTime)
	})

	return dedupeKlines(all), nil
}

func (c *Client) getKlinePage(ctx context.Context, params KlineParams, start *time.Time) ([]Kline, error) {
	reqParams := map[string]interface{}{
		"category": params.Category,
		"symbol":   params.Symbol,
		"interval": string(params.Interval),
		"limit":    params.Limit,
	}
	if start != nil {
		reqParams["start"] = start.UnixMilli()
	}
	if params.End != nil {
		reqParams["end"] = params.End.UnixMilli()
	}

	var klines []Kline
	err := c.withRetry(ctx, func() error {
		result, err := c.httpClient.NewUtaBybitServiceWithParams(reqParams).GetMarketKline(ctx)
		if err != nil {
			return fmt.Errorf("failed to get klines: %w", err)
		}
		klines, err = parseKlineResponse(result)
		return err
	})
	if err != nil {
		return nil, err
	}
	return klines, nil
}

// GetLatestTicker gets the latest quote for a symbol.
func (c *Client) GetLatestTicker(ctx context.Context, category, symbol string) (types.Ticker, error) {
	if category == "" {
		category = "spot"
	}

	params := map[string]interface{}{
		"category": category,
		"symbol":   symbol,
	}

	var ticker types.Ticker
	err := c.withRetry(ctx, func() error {
		result, err := c.httpClient.NewUtaBybitServiceWithParams(params).GetMarketTickers(ctx)
		if err != nil {
			return fmt.Errorf("failed to get latest ticker: %w", err)
		}
		ticker, err = parseTickerResponse(result)
		return err
	})
	if err != nil {
		return types.Ticker{}, err
	}
	return ticker, nil
}

// parseKlineResponse parses the API response into Kline structs.
func parseKlineResponse(response interface{}) ([]Kline, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return nil, fmt.Errorf("invalid response type")
	}
	if err := ParseAPIError(serverResp.RetCode, serverResp.RetMsg); err != nil {
		return nil, err
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	var klineResult struct {
		Symbol   string     `json:"symbol"`
		Category string     `json:"category"`
		List     [][]string `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &klineResult); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kline result: %w", err)
	}

	var klines []Kline
	for _, item := range klineResult.List {
		if len(item) < 7 {
			continue // Skip incomplete data
		}

		// Bybit kline format: [startTime, open, high, low, close, volume, turnover]
		klines = append(klines, Kline{
			StartTime:  time.UnixMilli(parseInt64(item[0])),
			OpenPrice:  parseFloat64(item[1]),
			HighPrice:  parseFloat64(item[2]),
			LowPrice:   parseFloat64(item[3]),
			ClosePrice: parseFloat64(item[4]),
			Volume:     parseFloat64(item[5]),
			Turnover:   parseFloat64(item[6]),
		})
	}
	return klines, nil
}

// parseTickerResponse parses the ticker response into a quote.
func parseTickerResponse(response interface{}) (types.Ticker, error) {
	serverResp, ok := response.(*bybit_api.ServerResponse)
	if !ok {
		return types.Ticker{}, fmt.Errorf("invalid response type")
	}
	if err := ParseAPIError(serverResp.RetCode, serverResp.RetMsg); err != nil {
		return types.Ticker{}, err
	}

	resultBytes, err := json.Marshal(serverResp.Result)
	if err != nil {
		return types.Ticker{}, fmt.Errorf("failed to marshal result: %w", err)
	}

	var tickerResult struct {
		Category string `json:"category"`
		List     []struct {
			Symbol    string `json:"symbol"`
			LastPrice string `json:"lastPrice"`
			Volume24h string `json:"volume24h"`
		} `json:"list"`
	}
	if err := json.Unmarshal(resultBytes, &tickerResult); err != nil {
		return types.Ticker{}, fmt.Errorf("failed to unmarshal ticker result: %w", err)
	}
	if len(tickerResult.List) == 0 {
		return types.Ticker{}, fmt.Errorf("no ticker data for symbol")
	}

	item := tickerResult.List[0]
	return types.Ticker{
		Symbol:    item.Symbol,
		Price:     parseFloat64(item.LastPrice),
		Volume:    parseFloat64(item.Volume24h),
		Timestamp: time.Now(),
	}, nil
}

func dedupeKlines(klines []Kline) []Kline {
	if len(klines) < 2 {
		return klines
	}
	out := klines[:1]
	for _, k := range klines[1:] {
		if k.StartTime.After(out[len(out)-1].StartTime) {
			out = append(out, k)
		}
	}
	return out
}

func parseInt64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func parseFloat64(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
