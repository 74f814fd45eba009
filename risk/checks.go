package risk

import (
	"errors"
	"math"
	"strings"
)

// Violation codes, one per validation rule.
const (
	CodeAccountSize     = "ACCOUNT_SIZE"
	CodeRiskPercent     = "RISK_PERCENT"
	CodeEntryPrice      = "ENTRY_PRICE"
	CodeStopLoss        = "STOP_LOSS"
	CodeEntryEqualsStop = "ENTRY_EQUALS_STOP"
)

const (
	MsgAccountSize     = "Account Size must be a positive number."
	MsgRiskPercent     = "Risk % must be between 0 and 100."
	MsgEntryPrice      = "Entry Price must be a positive number."
	MsgStopLoss        = "Stop Loss must be a positive number."
	MsgEntryEqualsStop = "Entry and Stop Loss cannot be equal."
)

// ErrInvalidInput is matched by every error returned from Violations.Err.
var ErrInvalidInput = errors.New("invalid input")

type Violation struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// Violations is ordered by rule.
type Violations []Violation

func (vs *Violations) add(code, msg string) {
	*vs = append(*vs, Violation{Code: code, Msg: msg})
}

// Messages returns the human readable text of each violation.
func (vs Violations) Messages() []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Msg)
	}
	return out
}

// Err returns nil when there are no violations.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}
	return &InputError{Violations: vs}
}

// InputError reports all violations of one input set together.
type InputError struct {
	Violations Violations
}

func (e *InputError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Violations.Messages(), " ")
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func positive(x float64) bool {
	return finite(x) && x > 0
}

// Validate checks every rule and reports all that fail. An empty result
// means Compute may be called. Unparseable input should arrive as NaN.
// Entry and stop are compared with exact equality.
func Validate(in Inputs) Violations {
	var vs Violations

	if !positive(in.AccountSize) {
		vs.add(CodeAccountSize, MsgAccountSize)
	}
	if !finite(in.RiskPercent) || in.RiskPercent <= 0 || in.RiskPercent > 100 {
		vs.add(CodeRiskPercent, MsgRiskPercent)
	}
	if !positive(in.EntryPrice) {
		vs.add(CodeEntryPrice, MsgEntryPrice)
	}
	if !positive(in.StopLoss) {
		vs.add(CodeStopLoss, MsgStopLoss)
	}
	if finite(in.EntryPrice) && finite(in.StopLoss) && in.EntryPrice == in.StopLoss {
		vs.add(CodeEntryEqualsStop, MsgEntryEqualsStop)
	}

	return vs
}
