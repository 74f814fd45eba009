package batch

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	sizingSheet  = "Sizing"
	summarySheet = "Summary"
)

// WriteXLSX writes the report to an Excel workbook at path. Numbers are
// stored as numeric cells; inputs that were not finite are left blank.
func WriteXLSX(path string, rep Report) error {
	fx := excelize.NewFile()
	defer fx.Close()

	if err := fx.SetSheetName(fx.GetSheetName(0), sizingSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := fx.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}

	headStyle, err := fx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, h := range resultHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := setHeader(fx, sizingSheet, cell, h, headStyle); err != nil {
			return err
		}
	}

	for n, r := range rep.Rows {
		row := n + 2
		for i, v := range xlsxValues(r) {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := fx.SetCellValue(sizingSheet, cell, v); err != nil {
				return fmt.Errorf("write %s!%s: %w", sizingSheet, cell, err)
			}
		}
	}

	summary := [][]interface{}{
		{"run_id", rep.ID},
		{"rows", len(rep.Rows)},
		{"valid", rep.Valid()},
		{"invalid", len(rep.Rows) - rep.Valid()},
	}
	for i, kv := range summary {
		key, val := fmt.Sprintf("A%d", i+1), fmt.Sprintf("B%d", i+1)
		if err := setHeader(fx, summarySheet, key, kv[0], headStyle); err != nil {
			return err
		}
		if err := fx.SetCellValue(summarySheet, val, kv[1]); err != nil {
			return fmt.Errorf("write %s!%s: %w", summarySheet, val, err)
		}
	}

	return fx.SaveAs(path)
}

// cellWriter is the part of *excelize.File used for header cells.
type cellWriter interface {
	SetCellValue(sheet, cell string, value interface{}) error
	SetCellStyle(sheet, topLeft, bottomRight string, styleID int) error
}

func setHeader(fx cellWriter, sheet, cell string, v interface{}, style int) error {
	if err := fx.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
	}
	if err := fx.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("style %s!%s: %w", sheet, cell, err)
	}
	return nil
}

// xlsxValues mirrors record but keeps numbers numeric.
func xlsxValues(r Row) []interface{} {
	in := r.Inputs
	vals := []interface{}{
		r.Line, r.Label,
		num(in.AccountSize), num(in.RiskPercent), num(in.EntryPrice), num(in.StopLoss),
	}
	if r.Result == nil {
		msg := strings.Join(r.Violations.Messages(), " ")
		return append(vals, nil, nil, nil, nil, nil, nil, msg)
	}
	res := r.Result
	return append(vals,
		string(res.Direction), res.RiskAmount, res.RiskPerUnit,
		res.Units, res.Notional, res.StopDistancePct, nil,
	)
}

func num(x float64) interface{} {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return x
}
