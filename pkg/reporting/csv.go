package reporting

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ducminhle1904/crypto-analyzer/internal/indicators"
	"github.com/ducminhle1904/crypto-analyzer/internal/patterns"
)

// eventCSVColumns are the indicator readings exported per event; kinds that
// did not use a reading leave the cell empty.
var eventCSVColumns = []string{indicators.SMA20, indicators.SMA50, indicators.RSI14}

// WriteEventsCSV writes the detected pattern events to a CSV file.
func WriteEventsCSV(events []patterns.Event, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"Timestamp", "Pattern"}
	header = append(header, eventCSVColumns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, ev := range events {
		row := []string{
			ev.Timestamp.Format("2006-01-02 15:04:05"),
			ev.Kind.String(),
		}
		for _, col := range eventCSVColumns {
			if v, ok := ev.Values[col]; ok {
				row = append(row, strconv.FormatFloat(v, 'f', 4, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
