package batch

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

var resultHeader = []string{
	"line", "label",
	"account_size", "risk_percent", "entry_price", "stop_loss",
	"direction", "risk_amount", "risk_per_unit", "units", "notional", "stop_distance_pct",
	"errors",
}

// record flattens a row in resultHeader order. Result cells are empty
// for invalid rows and the errors cell is empty for valid ones.
func record(r Row) []string {
	in := r.Inputs
	rec := []string{
		strconv.Itoa(r.Line), r.Label,
		f(in.AccountSize), f(in.RiskPercent), f(in.EntryPrice), f(in.StopLoss),
	}
	if r.Result == nil {
		rec = append(rec, "", "", "", "", "", "", strings.Join(r.Violations.Messages(), " "))
		return rec
	}
	res := r.Result
	return append(rec,
		string(res.Direction),
		f(res.RiskAmount),
		f(res.RiskPerUnit),
		f(res.Units),
		f(res.Notional),
		f(res.StopDistancePct),
		"",
	)
}

func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultHeader); err != nil {
		return err
	}
	for _, r := range rep.Rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// f keeps full float64 precision; display rounding is left to readers.
func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
