package sheetfix

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// sheetText concatenates the cell text of the first sheet's top-left region
// (maxRows x maxCols) for re-classification. The bounds keep the pass cheap
// on machine-generated sheets with thousands of rows.
func sheetText(path string, maxRows, maxCols int) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("read rows: %w", err)
	}

	var sb strings.Builder
	for ri, row := range rows {
		if ri >= maxRows {
			break
		}
		for ci, val := range row {
			if ci >= maxCols {
				break
			}
			val = strings.TrimSpace(val)
			if val == "" {
				continue
			}
			sb.WriteString(val)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
