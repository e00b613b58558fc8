package indicators

import (
	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// Default windows matching the standard technical-analysis setup.
const (
	DefaultFastSMAPeriod = 20
	DefaultSlowSMAPeriod = 50
	DefaultEMAPeriod     = 20
	DefaultRSIPeriod     = 14
	DefaultBBPeriod      = 20
	DefaultBBStdDev      = 2.0
)

// InsufficientHistoryWarning reports an indicator whose series came out
// entirely undefined because the input is shorter than its window. The run
// still completes; callers decide whether partial coverage is acceptable.
type InsufficientHistoryWarning struct {
	Indicator string
	Required  int
	Have      int
}

func (w InsufficientHistoryWarning) String() string {
	return w.Indicator + ": insufficient history"
}

// Set is the full group of indicator series computed from one price series.
// Every series has the same length as the input; warm-up samples are NaN.
type Set struct {
	Length   int
	Series   map[string][]float64
	Warnings []InsufficientHistoryWarning
}

// Get returns the named series, or nil if the Engine does not produce it.
func (s *Set) Get(name string) []float64 {
	return s.Series[name]
}

// Latest returns the last defined value of every series. Series that never
// warmed up are absent from the result.
func (s *Set) Latest() map[string]float64 {
	latest := make(map[string]float64, len(s.Series))
	for name, series := range s.Series {
		if v, ok := LastDefined(series); ok {
			latest[name] = v
		}
	}
	return latest
}

// Engine computes the full indicator set for a price series. It holds only
// configuration, never per-run state, so a single Engine is safe for
// concurrent use on independent series.
type Engine struct {
	smaFast *SMA
	smaSlow *SMA
	ema     *EMA
	rsi     *RSI
	bb      *BollingerBands
}

// NewEngine creates an Engine with the default windows (SMA 20/50, EMA 20,
// RSI 14, Bollinger 20/2).
func NewEngine() *Engine {
	return &Engine{
		smaFast: NewSMA(DefaultFastSMAPeriod),
		smaSlow: NewSMA(DefaultSlowSMAPeriod),
		ema:     NewEMA(DefaultEMAPeriod),
		rsi:     NewRSI(DefaultRSIPeriod),
		bb:      NewBollingerBands(DefaultBBPeriod, DefaultBBStdDev),
	}
}

// Compute derives every indicator series from the input. Pure function of
// the data: running it twice on the same series yields identical output.
// A series shorter than some window is not an error; the affected indicator
// stays undefined and is flagged in Warnings.
func (e *Engine) Compute(data []types.OHLCV) *Set {
	set := &Set{
		Length: len(data),
		Series: make(map[string][]float64, len(Names)),
	}

	set.Series[SMA20] = e.smaFast.Series(data)
	set.Series[SMA50] = e.smaSlow.Series(data)
	set.Series[EMA20] = e.ema.Series(data)
	set.Series[RSI14] = e.rsi.Series(data)

	upper, middle, lower := e.bb.Series(data)
	set.Series[BBUpper] = upper
	set.Series[BBMiddle] = middle
	set.Series[BBLower] = lower

	e.collectWarnings(set, len(data))
	return set
}

func (e *Engine) collectWarnings(set *Set, have int) {
	checks := []struct {
		name     string
		required int
	}{
		{SMA20, e.smaFast.GetRequiredPeriods()},
		{SMA50, e.smaSlow.GetRequiredPeriods()},
		{EMA20, e.ema.GetRequiredPeriods()},
		{RSI14, e.rsi.GetRequiredPeriods()},
		{BBMiddle, e.bb.GetRequiredPeriods()},
	}
	for _, c := range checks {
		if have < c.required {
			set.Warnings = append(set.Warnings, InsufficientHistoryWarning{
				Indicator: c.name,
				Required:  c.required,
				Have:      have,
			})
		}
	}
}
