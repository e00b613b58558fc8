package analysis

import (
	"github.com/ducminhle1904/crypto-analyzer/internal/indicators"
	"github.com/ducminhle1904/crypto-analyzer/internal/patterns"
	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// Result bundles everything one analysis run produces: the analyzed candles,
// the full aligned indicator series for charting, the detected events and the
// summary report.
type Result struct {
	Series     []types.OHLCV
	Indicators *indicators.Set
	Events     []patterns.Event
	Report     *Report
}

// Analyzer runs the full pipeline: indicator computation, pattern detection,
// report aggregation. It never mutates the input series and holds no per-run
// state, so one Analyzer serves concurrent runs on independent series.
type Analyzer struct {
	engine   *indicators.Engine
	detector *patterns.Detector
}

// New creates an Analyzer with the default engine and detector settings.
func New() *Analyzer {
	return &Analyzer{
		engine:   indicators.NewEngine(),
		detector: patterns.NewDetector(),
	}
}

// NewWithDetector creates an Analyzer using a custom pattern detector.
func NewWithDetector(detector *patterns.Detector) *Analyzer {
	return &Analyzer{
		engine:   indicators.NewEngine(),
		detector: detector,
	}
}

// Analyze runs the pipeline over the price series. Returns ErrEmptySeries
// for a zero-length input. Indicators without enough history stay undefined
// and are listed in Result.Indicators.Warnings; the run still completes.
func (a *Analyzer) Analyze(symbol string, data []types.OHLCV) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrEmptySeries
	}

	set := a.engine.Compute(data)
	events := a.detector.Detect(data, set)

	return &Result{
		Series:     data,
		Indicators: set,
		Events:     events,
		Report:     buildReport(symbol, data, set, events),
	}, nil
}

func buildReport(symbol string, data []types.OHLCV, set *indicators.Set, events []patterns.Event) *Report {
	first := data[0]
	last := data[len(data)-1]

	changePct := 0.0
	if first.Close != 0 {
		changePct = (last.Close - first.Close) / first.Close * 100
	}

	counts := make(map[string]int)
	for _, ev := range events {
		counts[ev.Kind.String()]++
	}

	return &Report{
		Symbol:         symbol,
		PeriodStart:    first.Timestamp,
		PeriodEnd:      last.Timestamp,
		CurrentPrice:   last.Close,
		PriceChangePct: changePct,
		Indicators:     set.Latest(),
		Events:         events,
		EventCounts:    counts,
	}
}
