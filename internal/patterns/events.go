package patterns

import (
	"encoding/json"
	"time"
)

// Kind enumerates the trading patterns the detector recognizes.
type Kind int

const (
	GoldenCross Kind = iota
	DeathCross
	Overbought
	Oversold
)

// kindOrder is the emission order when several kinds trigger at the same
// index, keeping output deterministic for identical inputs.
var kindOrder = []Kind{GoldenCross, DeathCross, Overbought, Oversold}

func (k Kind) String() string {
	switch k {
	case GoldenCross:
		return "golden_cross"
	case DeathCross:
		return "death_cross"
	case Overbought:
		return "overbought"
	case Oversold:
		return "oversold"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind as its string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Event is a single detected pattern occurrence. Immutable once created.
// Values carries the indicator readings that triggered it (e.g. sma20/sma50
// for crosses, rsi14 for threshold entries).
type Event struct {
	Timestamp time.Time          `json:"timestamp"`
	Kind      Kind               `json:"kind"`
	Values    map[string]float64 `json:"values"`
}
