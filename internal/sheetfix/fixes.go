package sheetfix

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// sheetFixer applies the heuristic corrections to an XLSX file in place.
type sheetFixer struct{}

func (sheetFixer) Fix(path string) (bool, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return false, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return false, nil
	}
	changed, err := applyCorrections(f, sheets[0])
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}
	if err := f.Save(); err != nil {
		return true, fmt.Errorf("save spreadsheet: %w", err)
	}
	return true, nil
}

// applyCorrections runs the three layout fixes in order: trim cell padding,
// drop empty columns inside the used range, merge continuation rows. Returns
// whether any cell was touched.
func applyCorrections(f *excelize.File, sheet string) (bool, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return false, fmt.Errorf("read rows: %w", err)
	}

	changed := false
	trimmed, err := trimCellPadding(f, sheet, rows)
	if err != nil {
		return changed, err
	}
	changed = changed || trimmed

	dropped, err := dropInteriorEmptyColumns(f, sheet, rows)
	if err != nil {
		return changed, err
	}
	changed = changed || dropped

	merged, err := mergeContinuationRows(f, sheet, rows)
	if err != nil {
		return changed, err
	}
	return changed || merged, nil
}

// trimCellPadding strips the leading/trailing whitespace the grid builder
// leaves when a fragment straddles a cell boundary. Mutates rows in place so
// later fixes see the cleaned values.
func trimCellPadding(f *excelize.File, sheet string, rows [][]string) (bool, error) {
	changed := false
	for ri, row := range rows {
		for ci, val := range row {
			clean := strings.TrimSpace(val)
			if clean == val {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				return changed, err
			}
			if err := f.SetCellValue(sheet, cell, clean); err != nil {
				return changed, fmt.Errorf("set %s: %w", cell, err)
			}
			rows[ri][ci] = clean
			changed = true
		}
	}
	return changed, nil
}

// dropInteriorEmptyColumns removes columns that are entirely empty but sit
// between populated ones; the generic grid detector produces these when a
// label/value page is split on incidental whitespace.
func dropInteriorEmptyColumns(f *excelize.File, sheet string, rows [][]string) (bool, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width < 3 {
		return false, nil
	}

	populated := make([]bool, width)
	for _, row := range rows {
		for ci, val := range row {
			if strings.TrimSpace(val) != "" {
				populated[ci] = true
			}
		}
	}
	first, last := -1, -1
	for ci, p := range populated {
		if !p {
			continue
		}
		if first == -1 {
			first = ci
		}
		last = ci
	}
	if first == -1 {
		return false, nil
	}

	changed := false
	for ci := last - 1; ci > first; ci-- {
		if populated[ci] {
			continue
		}
		name, err := excelize.ColumnNumberToName(ci + 1)
		if err != nil {
			return changed, err
		}
		if err := f.RemoveCol(sheet, name); err != nil {
			return changed, fmt.Errorf("remove column %s: %w", name, err)
		}
		for ri := range rows {
			if ci < len(rows[ri]) {
				rows[ri] = append(rows[ri][:ci], rows[ri][ci+1:]...)
			}
		}
		changed = true
	}
	return changed, nil
}

// mergeContinuationRows folds rows holding a single overflow cell into the
// row above: wrapped label or value text the grid split into its own row.
func mergeContinuationRows(f *excelize.File, sheet string, rows [][]string) (bool, error) {
	changed := false
	for ri := len(rows) - 1; ri >= 1; ri-- {
		ci, ok := solePopulatedCell(rows[ri])
		if !ok {
			continue
		}
		above := rows[ri-1]
		if ci >= len(above) || strings.TrimSpace(above[ci]) == "" {
			continue
		}
		mergedVal := above[ci] + " " + rows[ri][ci]
		cell, err := excelize.CoordinatesToCellName(ci+1, ri)
		if err != nil {
			return changed, err
		}
		if err := f.SetCellValue(sheet, cell, mergedVal); err != nil {
			return changed, fmt.Errorf("set %s: %w", cell, err)
		}
		if err := f.RemoveRow(sheet, ri+1); err != nil {
			return changed, fmt.Errorf("remove row %d: %w", ri+1, err)
		}
		rows[ri-1][ci] = mergedVal
		rows = append(rows[:ri], rows[ri+1:]...)
		changed = true
	}
	return changed, nil
}

// solePopulatedCell returns the index of the only non-empty cell in a row,
// or false when the row is empty or has several.
func solePopulatedCell(row []string) (int, bool) {
	idx := -1
	for ci, val := range row {
		if strings.TrimSpace(val) == "" {
			continue
		}
		if idx != -1 {
			return -1, false
		}
		idx = ci
	}
	return idx, idx != -1
}
