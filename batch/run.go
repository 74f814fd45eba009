package batch

import (
	"github.com/rustyeddy/possize/pkg/id"
	"github.com/rustyeddy/possize/risk"
)

// Row is the outcome for one Setup: either Result or Violations is set.
type Row struct {
	Setup
	Result     *risk.Result
	Violations risk.Violations
}

func (r Row) OK() bool { return r.Result != nil }

type Report struct {
	ID   string
	Rows []Row
}

// Valid counts rows that produced a result.
func (r Report) Valid() int {
	n := 0
	for _, row := range r.Rows {
		if row.OK() {
			n++
		}
	}
	return n
}

// Run sizes every setup. An invalid row is kept with its violations and
// never stops the rest of the run.
func Run(setups []Setup) Report {
	rep := Report{ID: id.New(), Rows: make([]Row, 0, len(setups))}
	for _, s := range setups {
		row := Row{Setup: s}
		if vs := risk.Validate(s.Inputs); len(vs) > 0 {
			row.Violations = vs
		} else {
			res := risk.Compute(s.Inputs)
			row.Result = &res
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep
}
