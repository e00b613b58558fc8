package data

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// CSVProvider implements Provider for local CSV exports. The request's
// symbol/interval are informational for CSV files; the range still applies.
type CSVProvider struct {
	path   string
	format CSVColumnMapping
}

// NewCSVProvider creates a CSV data provider reading the given file with
// the default column layout.
func NewCSVProvider(path string) *CSVProvider {
	return NewCSVProviderWithFormat(path, DefaultCSVFormat)
}

// NewCSVProviderWithFormat creates a CSV data provider with a custom format.
func NewCSVProviderWithFormat(path string, format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		path:   path,
		format: format,
	}
}

// GetName returns the name of the data provider.
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// GetHistoricalData loads candles from the CSV file, sorted ascending,
// validated and clipped to the requested range.
func (p *CSVProvider) GetHistoricalData(_ context.Context, req Request) ([]types.OHLCV, error) {
	data, err := p.loadFile()
	if err != nil {
		return nil, err
	}

	sort.Slice(data, func(i, j int) bool {
		return data[i].Timestamp.Before(data[j].Timestamp)
	})

	if !req.Start.IsZero() || !req.End.IsZero() {
		end := req.End
		if end.IsZero() {
			end = time.Now()
		}
		data = FilterByDateRange(data, req.Start, end)
	}

	if err := ValidateSeries(data); err != nil {
		return nil, fmt.Errorf("csv data failed validation: %w", err)
	}
	return data, nil
}

func (p *CSVProvider) loadFile() ([]types.OHLCV, error) {
	file, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, validated per record below

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var data []types.OHLCV
	lineNum := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			log.Printf("⚠️ Insufficient columns at line %d (expected %d, got %d), skipping",
				lineNum, p.format.MinColumns, len(record))
			continue
		}

		candle, err := p.parseRecord(record)
		if err != nil {
			log.Printf("⚠️ Skipping line %d: %v", lineNum, err)
			continue
		}
		data = append(data, candle)
	}

	return data, nil
}

func (p *CSVProvider) parseRecord(record []string) (types.OHLCV, error) {
	timestamp, err := p.parseTimestamp(record[p.format.TimestampCol])
	if err != nil {
		return types.OHLCV{}, fmt.Errorf("invalid timestamp %q: %w", record[p.format.TimestampCol], err)
	}

	fields := [5]float64{}
	cols := []int{p.format.OpenCol, p.format.HighCol, p.format.LowCol, p.format.CloseCol, p.format.VolumeCol}
	names := []string{"open", "high", "low", "close", "volume"}
	for i, col := range cols {
		v, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			return types.OHLCV{}, fmt.Errorf("invalid %s %q: %w", names[i], record[col], err)
		}
		fields[i] = v
	}

	return types.OHLCV{
		Timestamp: timestamp,
		Open:      fields[0],
		High:      fields[1],
		Low:       fields[2],
		Close:     fields[3],
		Volume:    fields[4],
	}, nil
}

// parseTimestamp accepts the configured date format plus unix epoch values
// in seconds or milliseconds, which Bybit CSV exports use.
func (p *CSVProvider) parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(p.format.DateFormat, s); err == nil {
		return ts, nil
	}
	epoch, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if epoch > 1e12 {
		return time.UnixMilli(epoch), nil
	}
	return time.Unix(epoch, 0), nil
}
