// Package form holds the text state behind a sizing form and re-derives
// the sizing on every change. It owns the "touched" flag so the risk
// package stays a pair of pure functions.
package form

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/possize/risk"
)

type Field int

const (
	AccountSize Field = iota
	RiskPercent
	EntryPrice
	StopLoss
)

var fieldNames = [...]string{"account_size", "risk_percent", "entry_price", "stop_loss"}

// Fields lists every field in input order.
var Fields = []Field{AccountSize, RiskPercent, EntryPrice, StopLoss}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField maps a field name such as "entry_price" to its Field.
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	for i, n := range fieldNames {
		if strings.EqualFold(n, name) {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// Form is not safe for concurrent use; each caller owns its own.
type Form struct {
	text    [len(fieldNames)]string
	touched bool
	parser  Parser
}

// New returns a form prefilled with text values, in field order.
// Missing values are left empty.
func New(values ...string) *Form {
	f := &Form{}
	for i := 0; i < len(values) && i < len(f.text); i++ {
		f.text[i] = values[i]
	}
	return f
}

// WithParser makes the form read its text with p, typically the parser
// for the display locale.
func (f *Form) WithParser(p Parser) *Form {
	f.parser = p
	return f
}

func (f *Form) Set(field Field, text string) {
	if field < 0 || int(field) >= len(f.text) {
		return
	}
	f.text[field] = text
}

func (f *Form) Text(field Field) string {
	if field < 0 || int(field) >= len(f.text) {
		return ""
	}
	return f.text[field]
}

// Calculate marks the form as touched, which makes View expose output.
func (f *Form) Calculate() { f.touched = true }

func (f *Form) Touched() bool { return f.touched }

// Reset clears all text and the touched flag. The parser is kept.
func (f *Form) Reset() { *f = Form{parser: f.parser} }

// Inputs parses the current text.
func (f *Form) Inputs() risk.Inputs {
	return risk.Inputs{
		AccountSize: f.parser.Parse(f.text[AccountSize]),
		RiskPercent: f.parser.Parse(f.text[RiskPercent]),
		EntryPrice:  f.parser.Parse(f.text[EntryPrice]),
		StopLoss:    f.parser.Parse(f.text[StopLoss]),
	}
}

// View is what a renderer shows for the current form state.
// Violations and Result are only set once the form was touched,
// and at most one of them is non-empty.
type View struct {
	Touched    bool
	Inputs     risk.Inputs
	Violations risk.Violations
	Result     *risk.Result
}

func (v View) Valid() bool { return v.Touched && v.Result != nil }

// View recomputes from scratch; nothing is cached between calls.
func (f *Form) View() View {
	v := View{Touched: f.touched, Inputs: f.Inputs()}
	if !f.touched {
		return v
	}

	if vs := risk.Validate(v.Inputs); len(vs) > 0 {
		v.Violations = vs
		return v
	}

	res := risk.Compute(v.Inputs)
	v.Result = &res
	return v
}
