// Package batch sizes many trade setups at once: read from CSV, size each
// row independently, and write the results as CSV or an Excel workbook.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rustyeddy/possize/form"
	"github.com/rustyeddy/possize/risk"
)

// Setup is one input line. Line is the 1-based line number in the source.
type Setup struct {
	Line   int
	Label  string
	Inputs risk.Inputs
}

// ReadSetups reads a CSV with a header row. Column names are the form
// field names; the label column is optional and column order is free.
// Numbers are read with p, so they follow the display locale. Cells that
// do not parse become NaN and are reported later by validation, not here.
func ReadSetups(r io.Reader, p form.Parser) ([]Setup, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("read setups: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("read setups header: %w", err)
	}

	fieldCols := map[form.Field]int{}
	labelCol := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), "label") {
			labelCol = i
			continue
		}
		if fld, err := form.ParseField(h); err == nil {
			fieldCols[fld] = i
		}
	}
	for _, fld := range form.Fields {
		if _, ok := fieldCols[fld]; !ok {
			return nil, fmt.Errorf("read setups: missing column %q", fld.String())
		}
	}

	var setups []Setup
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read setups: %w", err)
		}
		line, _ := cr.FieldPos(0)

		fm := form.New().WithParser(p)
		for fld, i := range fieldCols {
			if i < len(rec) {
				fm.Set(fld, rec[i])
			}
		}

		s := Setup{Line: line, Inputs: fm.Inputs()}
		if labelCol >= 0 && labelCol < len(rec) {
			s.Label = strings.TrimSpace(rec[labelCol])
		}
		setups = append(setups, s)
	}

	return setups, nil
}
