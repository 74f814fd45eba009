package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rustyeddy/possize/form"
	"github.com/rustyeddy/possize/format"
	"github.com/rustyeddy/possize/risk"
)

// Render writes the view as a table. Nothing is written for an untouched form.
func Render(w io.Writer, v form.View, f format.Formatter) {
	if !v.Touched {
		return
	}
	if v.Result == nil {
		renderViolations(w, v.Violations)
		return
	}
	renderResult(w, v.Inputs, *v.Result, f)
}

func renderResult(w io.Writer, in risk.Inputs, res risk.Result, f format.Formatter) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("POSITION SIZE")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Account Size", f.Money(in.AccountSize)},
		{"Risk", f.Percent(in.RiskPercent)},
		{"Entry Price", f.Price(in.EntryPrice)},
		{"Stop Loss", f.Price(in.StopLoss)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Direction", string(res.Direction)},
		{"Risk Amount", f.Money(res.RiskAmount)},
		{"Risk per Unit", f.Price(res.RiskPerUnit)},
		{"Units", f.Units(res.Units)},
		{"Notional", f.Money(res.Notional)},
		{"Stop Distance", f.Percent(res.StopDistancePct)},
	})
	t.SetCaption("%s", risk.Caveat)

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 15, Align: text.AlignLeft},
		{Number: 2, WidthMin: 20, Align: text.AlignRight},
	})

	t.Render()
}

func renderViolations(w io.Writer, vs risk.Violations) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("CANNOT SIZE POSITION")
	t.SetStyle(table.StyleRounded)

	for i, v := range vs {
		t.AppendRow(table.Row{i + 1, v.Msg})
	}

	t.Render()
}
