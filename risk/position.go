package risk

import "math"

// Direction is the side implied by where the stop sits relative to entry.
type Direction string

const (
	Long  Direction = "LONG"
	Short Direction = "SHORT"
)

// Caveat is shown next to every sizing result.
const Caveat = "Leverage and margin are not modelled. The notional value may exceed " +
	"your account size; check your broker's margin requirements before placing the trade."

// Inputs are the four raw numbers a position is sized from.
// RiskPercent is a percentage (1 means 1%), not a fraction.
type Inputs struct {
	AccountSize float64 `json:"account_size" yaml:"account_size"`
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"`
	EntryPrice  float64 `json:"entry_price" yaml:"entry_price"`
	StopLoss    float64 `json:"stop_loss" yaml:"stop_loss"`
}

// Result is an immutable snapshot derived from Inputs.
type Result struct {
	Direction       Direction `json:"direction"`
	RiskAmount      float64   `json:"risk_amount"`
	RiskPerUnit     float64   `json:"risk_per_unit"`
	Units           float64   `json:"units"`
	Notional        float64   `json:"notional"`
	StopDistancePct float64   `json:"stop_distance_pct"`
}

// Compute derives the position from in. Callers are expected to run
// Validate first; on invalid inputs the only guarantee is that a zero
// risk per unit yields zero units instead of Inf or NaN.
func Compute(in Inputs) Result {
	dir := Short
	if in.EntryPrice > in.StopLoss {
		dir = Long
	}

	riskAmt := in.AccountSize * (in.RiskPercent / 100)
	perUnit := math.Abs(in.EntryPrice - in.StopLoss)

	var units float64
	if perUnit != 0 {
		units = riskAmt / perUnit
	}

	return Result{
		Direction:       dir,
		RiskAmount:      riskAmt,
		RiskPerUnit:     perUnit,
		Units:           units,
		Notional:        units * in.EntryPrice,
		StopDistancePct: (perUnit / in.EntryPrice) * 100,
	}
}

// Size validates in and computes the result when it is valid.
// The returned error is an *InputError carrying every violation.
func Size(in Inputs) (Result, error) {
	if err := Validate(in).Err(); err != nil {
		return Result{}, err
	}
	return Compute(in), nil
}
