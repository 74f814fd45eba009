// Package format renders sizing numbers for display. The risk package
// only returns raw float64 values.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxUnitDecimals bounds the precision used for unit quantities.
const MaxUnitDecimals = 8

type Formatter struct {
	p    *message.Printer
	unit currency.Unit
	sym  string
}

// New builds a Formatter for a BCP 47 locale such as "en-US" and an ISO
// 4217 currency code such as "USD".
func New(locale, code string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("parse currency %q: %w", code, err)
	}

	p := message.NewPrinter(tag)
	return Formatter{
		p:    p,
		unit: unit,
		sym:  p.Sprint(currency.NarrowSymbol(unit)),
	}, nil
}

// Default is en-US with US dollars.
func Default() Formatter {
	f, _ := New("en-US", "USD")
	return f
}

func (f Formatter) Currency() string { return f.unit.String() }

func (f Formatter) Symbol() string { return f.sym }

func (f Formatter) Money(v float64) string {
	if !finite(v) {
		return "-"
	}
	s := f.p.Sprintf("%.2f", math.Abs(v))
	if v < 0 {
		return "-" + f.sym + s
	}
	return f.sym + s
}

func (f Formatter) Price(v float64) string {
	return f.decimals(v, MaxUnitDecimals, 2)
}

// Units shows up to MaxUnitDecimals decimals with trailing zeros dropped.
func (f Formatter) Units(v float64) string {
	return f.decimals(v, MaxUnitDecimals, 0)
}

func (f Formatter) Percent(v float64) string {
	if !finite(v) {
		return "-"
	}
	return f.p.Sprintf("%.2f", v) + "%"
}

func (f Formatter) decimals(v float64, max, min int) string {
	if !finite(v) {
		return "-"
	}
	n := decimalPlaces(v, max)
	if n < min {
		n = min
	}
	return f.p.Sprintf("%."+strconv.Itoa(n)+"f", v)
}

// decimalPlaces is the number of significant decimals of v once rounded
// to max places.
func decimalPlaces(v float64, max int) int {
	s := strconv.FormatFloat(v, 'f', max, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(strings.TrimRight(s[i+1:], "0"))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
