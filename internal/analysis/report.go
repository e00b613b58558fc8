package analysis

import (
	"errors"
	"time"

	"github.com/ducminhle1904/crypto-analyzer/internal/patterns"
)

// ErrEmptySeries is returned when an analysis is requested for a price
// series with no observations. Fatal to the run; no partial report is
// produced. Callers reject or refetch upstream.
var ErrEmptySeries = errors.New("price series has no observations")

// Report is the aggregated outcome of one analysis run: latest indicator
// readings, the ordered event list and per-kind totals. Created fresh per
// run, consumed by the reporting layer.
type Report struct {
	Symbol         string             `json:"symbol"`
	PeriodStart    time.Time          `json:"period_start"`
	PeriodEnd      time.Time          `json:"period_end"`
	CurrentPrice   float64            `json:"current_price"`
	PriceChangePct float64            `json:"price_change_pct"`
	Indicators     map[string]float64 `json:"indicators"`
	Events         []patterns.Event   `json:"events"`
	EventCounts    map[string]int     `json:"event_counts"`
}

// CountOf returns how many events of the given kind were detected.
func (r *Report) CountOf(kind patterns.Kind) int {
	return r.EventCounts[kind.String()]
}
