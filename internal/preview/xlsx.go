package preview

import (
	"bytes"
	"errors"

	"github.com/xuri/excelize/v2"
)

// readXLSXLibrary reads the active sheet with excelize.
func readXLSXLibrary(content []byte, maxRows, maxCols int) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = list[0]
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for len(out) < maxRows && rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if len(cols) > maxCols {
			cols = cols[:maxCols]
		}
		out = append(out, cols)
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}

	return padRows(out, maxCols), nil
}
