package preview

import (
	"bytes"
	"errors"

	"github.com/extrame/xls"
)

// readXLS reads the first sheet of a BIFF workbook.
func readXLS(content []byte, maxRows, maxCols int) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return nil, err
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow) && len(rows) < maxRows; i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}

		cells := make([]string, 0, min(row.LastCol(), maxCols))
		for c := 0; c < row.LastCol() && c < maxCols; c++ {
			cells = append(cells, row.Col(c))
		}
		rows = append(rows, cells)
	}

	return padRows(rows, maxCols), nil
}
