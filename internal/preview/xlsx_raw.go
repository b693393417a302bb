package preview

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	workbookPath      = "xl/workbook.xml"
	workbookRelsPath  = "xl/_rels/workbook.xml.rels"
	sharedStringsPath = "xl/sharedStrings.xml"
	defaultSheetPath  = "xl/worksheets/sheet1.xml"
)

type xmlStringItem struct {
	T    string   `xml:"t"`
	Runs []string `xml:"r>t"`
}

func (si xmlStringItem) text() string {
	return si.T + strings.Join(si.Runs, "")
}

type xmlSharedStrings struct {
	Items []xmlStringItem `xml:"si"`
}

type xmlWorkbook struct {
	Sheets []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sheets>sheet"`
}

type xmlRelationships struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xmlRow struct {
	R     int `xml:"r,attr"`
	Cells []struct {
		R      string         `xml:"r,attr"`
		T      string         `xml:"t,attr"`
		V      *string        `xml:"v"`
		Inline *xmlStringItem `xml:"is"`
	} `xml:"c"`
}

// readXLSXRaw reads the first worksheet straight from the OOXML package.
// Cells are placed by their A1 reference, so gaps come out as empty cells.
func readXLSXRaw(content []byte, maxRows, maxCols int) ([][]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errXLSXInvalid, err)
	}

	shared := readSharedStrings(zr)

	f, err := zr.Open(firstSheetPath(zr))
	if err != nil {
		return nil, errXLSXNoSheet
	}
	defer f.Close()

	grid, err := readSheetCells(f, shared, maxRows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errXLSXXML, err)
	}

	return gridRows(grid, maxRows, maxCols), nil
}

// readSharedStrings returns the shared string table; a missing or broken
// table yields none.
func readSharedStrings(zr *zip.Reader) []string {
	var sst xmlSharedStrings
	if err := decodeZipXML(zr, sharedStringsPath, &sst); err != nil {
		return nil
	}
	out := make([]string, len(sst.Items))
	for i, si := range sst.Items {
		out[i] = si.text()
	}
	return out
}

// firstSheetPath resolves the first <sheet> of the workbook through its
// relationship id, defaulting to sheet1.xml.
func firstSheetPath(zr *zip.Reader) string {
	var wb xmlWorkbook
	if err := decodeZipXML(zr, workbookPath, &wb); err != nil || len(wb.Sheets) == 0 {
		return defaultSheetPath
	}

	var rels xmlRelationships
	if err := decodeZipXML(zr, workbookRelsPath, &rels); err != nil {
		return defaultSheetPath
	}

	for _, rel := range rels.Rels {
		if rel.ID != wb.Sheets[0].RID {
			continue
		}
		target := strings.TrimPrefix(rel.Target, "/")
		if !strings.HasPrefix(target, "xl/") {
			target = "xl/" + target
		}
		return target
	}
	return defaultSheetPath
}

func decodeZipXML(zr *zip.Reader, name string, v any) error {
	f, err := zr.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return xml.NewDecoder(f).Decode(v)
}

// readSheetCells streams <row> elements and stops after row maxRows.
// The result is keyed by 1-based row and column.
func readSheetCells(r io.Reader, shared []string, maxRows int) (map[int]map[int]string, error) {
	grid := make(map[int]map[int]string)
	dec := xml.NewDecoder(r)
	prevRow := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return grid, nil
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "row" {
			continue
		}

		var row xmlRow
		if err := dec.DecodeElement(&row, &start); err != nil {
			return nil, err
		}

		index := row.R
		if index == 0 {
			index = prevRow + 1
		}
		prevRow = index
		if index > maxRows {
			return grid, nil
		}

		cells := make(map[int]string, len(row.Cells))
		prevCol := 0
		for _, c := range row.Cells {
			col := columnIndex(c.R)
			if col == 0 {
				col = prevCol + 1
			}
			prevCol = col

			switch {
			case c.T == "inlineStr" && c.Inline != nil:
				cells[col] = c.Inline.text()
			case c.V == nil:
				cells[col] = ""
			case c.T == "s":
				cells[col] = sharedString(shared, *c.V)
			default:
				cells[col] = *c.V
			}
		}
		grid[index] = cells
	}
}

func sharedString(shared []string, v string) string {
	var idx int
	if _, err := fmt.Sscan(v, &idx); err != nil || idx < 0 || idx >= len(shared) {
		return v
	}
	return shared[idx]
}

// columnIndex converts the letters of an A1 reference to a 1-based column.
func columnIndex(ref string) int {
	n := 0
	for _, ch := range ref {
		switch {
		case ch >= 'A' && ch <= 'Z':
			n = n*26 + int(ch-'A'+1)
		case ch >= 'a' && ch <= 'z':
			n = n*26 + int(ch-'a'+1)
		}
	}
	return n
}

// gridRows lays the sparse grid out as a dense matrix starting at A1.
func gridRows(grid map[int]map[int]string, maxRows, maxCols int) [][]string {
	lastRow, lastCol := 0, 0
	for r, cells := range grid {
		if len(cells) == 0 {
			continue
		}
		lastRow = max(lastRow, r)
		for c := range cells {
			lastCol = max(lastCol, min(c, maxCols))
		}
	}
	lastRow = min(lastRow, maxRows)

	rows := make([][]string, 0, lastRow)
	for r := 1; r <= lastRow; r++ {
		row := make([]string, lastCol)
		for c := 1; c <= lastCol; c++ {
			row[c-1] = grid[r][c]
		}
		rows = append(rows, row)
	}
	return rows
}
