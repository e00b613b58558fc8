package patterns

import (
	"github.com/ducminhle1904/crypto-analyzer/internal/indicators"
	"github.com/ducminhle1904/crypto-analyzer/pkg/types"
)

// Default RSI thresholds for overbought/oversold territory.
const (
	DefaultOverboughtLevel = 70.0
	DefaultOversoldLevel   = 30.0
)

// Detector scans a price series plus its indicator set and emits pattern
// events. Detection is edge-triggered: an event fires on the transition into
// a condition, never repeatedly while the condition persists.
type Detector struct {
	overbought float64
	oversold   float64
}

// NewDetector creates a Detector with the standard 70/30 RSI thresholds.
func NewDetector() *Detector {
	return NewDetectorWithLevels(DefaultOverboughtLevel, DefaultOversoldLevel)
}

// NewDetectorWithLevels creates a Detector with custom RSI thresholds.
func NewDetectorWithLevels(overbought, oversold float64) *Detector {
	return &Detector{
		overbought: overbought,
		oversold:   oversold,
	}
}

// Detect walks the series once in timestamp order and returns every pattern
// event, ordered by timestamp. When several kinds trigger at the same index
// they are emitted as golden cross, death cross, overbought, oversold.
// Indices where a required indicator is still undefined are skipped, so the
// first defined sample of a series can never trigger a cross.
func (d *Detector) Detect(data []types.OHLCV, set *indicators.Set) []Event {
	smaFast := set.Get(indicators.SMA20)
	smaSlow := set.Get(indicators.SMA50)
	rsi := set.Get(indicators.RSI14)

	var events []Event
	for i := 1; i < len(data); i++ {
		for _, kind := range kindOrder {
			if ev, ok := d.check(kind, i, data, smaFast, smaSlow, rsi); ok {
				events = append(events, ev)
			}
		}
	}
	return events
}

func (d *Detector) check(kind Kind, i int, data []types.OHLCV, smaFast, smaSlow, rsi []float64) (Event, bool) {
	switch kind {
	case GoldenCross:
		if !crossInputsDefined(smaFast, smaSlow, i) {
			return Event{}, false
		}
		if smaFast[i-1] <= smaSlow[i-1] && smaFast[i] > smaSlow[i] {
			return crossEvent(GoldenCross, i, data, smaFast, smaSlow), true
		}
	case DeathCross:
		if !crossInputsDefined(smaFast, smaSlow, i) {
			return Event{}, false
		}
		if smaFast[i-1] >= smaSlow[i-1] && smaFast[i] < smaSlow[i] {
			return crossEvent(DeathCross, i, data, smaFast, smaSlow), true
		}
	case Overbought:
		if !pairDefined(rsi, i) {
			return Event{}, false
		}
		if rsi[i-1] < d.overbought && rsi[i] >= d.overbought {
			return rsiEvent(Overbought, i, data, rsi), true
		}
	case Oversold:
		if !pairDefined(rsi, i) {
			return Event{}, false
		}
		if rsi[i-1] > d.oversold && rsi[i] <= d.oversold {
			return rsiEvent(Oversold, i, data, rsi), true
		}
	}
	return Event{}, false
}

func crossInputsDefined(fast, slow []float64, i int) bool {
	return pairDefined(fast, i) && pairDefined(slow, i)
}

func pairDefined(series []float64, i int) bool {
	return indicators.IsDefined(series[i-1]) && indicators.IsDefined(series[i])
}

func crossEvent(kind Kind, i int, data []types.OHLCV, fast, slow []float64) Event {
	return Event{
		Timestamp: data[i].Timestamp,
		Kind:      kind,
		Values: map[string]float64{
			indicators.SMA20: fast[i],
			indicators.SMA50: slow[i],
		},
	}
}

func rsiEvent(kind Kind, i int, data []types.OHLCV, rsi []float64) Event {
	return Event{
		Timestamp: data[i].Timestamp,
		Kind:      kind,
		Values: map[string]float64{
			indicators.RSI14: rsi[i],
		},
	}
}
