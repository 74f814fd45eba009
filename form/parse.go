package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Parser reads numbers typed with a locale's separators.
// The zero value behaves like DefaultParser.
type Parser struct {
	Decimal string
	Group   string
}

var DefaultParser = Parser{Decimal: ".", Group: ","}

// ParserFor takes the separators from how the locale prints 1234567.5,
// so input is read the same way results are displayed.
func ParserFor(locale string) (Parser, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Parser{}, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	var seps []string
	var cur strings.Builder
	for _, r := range message.NewPrinter(tag).Sprintf("%.1f", 1234567.5) {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				seps = append(seps, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if len(seps) == 0 {
		return Parser{}, fmt.Errorf("locale %q: no decimal separator", locale)
	}

	p := Parser{Decimal: seps[len(seps)-1]}
	if len(seps) > 1 {
		p.Group = seps[0]
	}
	if p.Group == "" || p.Group == p.Decimal {
		p.Group = ","
		if p.Decimal == "," {
			p.Group = "."
		}
	}
	return p, nil
}

func (p Parser) orDefault() Parser {
	if p.Decimal == "" {
		return DefaultParser
	}
	return p
}

// Parse turns user text into a float. Surrounding space and a trailing %
// are ignored. Group separators must sit between groups of three digits.
// Anything else that fails to parse becomes NaN so validation reports it
// as not finite.
func (p Parser) Parse(s string) float64 {
	p = p.orDefault()

	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return math.NaN()
	}

	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}

	whole, frac, hasFrac := s, "", false
	if i := strings.LastIndex(s, p.Decimal); i >= 0 {
		whole, frac, hasFrac = s[:i], s[i+len(p.Decimal):], true
	}

	whole, ok := p.ungroup(whole)
	if !ok {
		return math.NaN()
	}

	norm := sign + whole
	if hasFrac {
		norm += "." + frac
	}
	v, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Format writes v so that Parse reads it back.
func (p Parser) Format(v float64) string {
	p = p.orDefault()
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", p.Decimal, 1)
}

// ungroup drops group separators from the integer part. A space-like
// group separator also accepts a plain space.
func (p Parser) ungroup(whole string) (string, bool) {
	if strings.IndexFunc(p.Group, unicode.IsSpace) >= 0 {
		whole = strings.ReplaceAll(whole, " ", p.Group)
	}
	if !strings.Contains(whole, p.Group) {
		return whole, true
	}

	parts := strings.Split(whole, p.Group)
	for i, part := range parts {
		if !allDigits(part) {
			return "", false
		}
		if i == 0 && (len(part) == 0 || len(part) > 3) {
			return "", false
		}
		if i > 0 && len(part) != 3 {
			return "", false
		}
	}
	return strings.Join(parts, ""), true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseNumber parses s with DefaultParser.
func ParseNumber(s string) float64 {
	return DefaultParser.Parse(s)
}
