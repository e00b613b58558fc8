package data

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ConvertIntervalToMinutes converts interval strings like "5m", "1h", "4h"
// to minute numbers, the unit historical-data directory trees are keyed by.
// Daily and weekly intervals stay symbolic ("1d", "1w") in flat layouts but
// convert here for nested ones.
func ConvertIntervalToMinutes(interval string) string {
	if _, err := strconv.Atoi(interval); err == nil {
		return interval
	}

	interval = strings.ToLower(strings.TrimSpace(interval))
	if len(interval) < 2 {
		return interval
	}

	numStr := interval[:len(interval)-1]
	num, err := strconv.Atoi(numStr)
	if err != nil {
		return interval
	}

	switch interval[len(interval)-1:] {
	case "m":
		return strconv.Itoa(num)
	case "h":
		return strconv.Itoa(num * 60)
	case "d":
		return strconv.Itoa(num * 24 * 60)
	case "w":
		return strconv.Itoa(num * 7 * 24 * 60)
	default:
		return interval
	}
}

// LocateCSV resolves a candle export for the request inside a data directory.
// Two layouts are tried, in order:
//
//	{root}/{category}/{SYMBOL}/{intervalMinutes}/candles.csv
//	{root}/{SYMBOL}_{interval}.csv
//
// Returns false when no file exists, after logging every attempted path.
func LocateCSV(dataRoot string, req Request) (string, bool) {
	symbol := strings.ToUpper(req.Symbol)
	intervalMinutes := ConvertIntervalToMinutes(req.Interval)

	categories := []string{"spot", "linear", "inverse"}
	if req.Category != "" {
		categories = []string{req.Category}
	}

	var attempted []string
	for _, category := range categories {
		path := filepath.Join(dataRoot, category, symbol, intervalMinutes, "candles.csv")
		attempted = append(attempted, path)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	flat := filepath.Join(dataRoot, symbol+"_"+strings.ToLower(req.Interval)+".csv")
	attempted = append(attempted, flat)
	if _, err := os.Stat(flat); err == nil {
		return flat, true
	}

	log.Printf("⚠️ No data file found for %s %s in:", symbol, req.Interval)
	for _, path := range attempted {
		log.Printf("   - %s", path)
	}
	return "", false
}
