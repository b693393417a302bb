package preview

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Kind is a supported upload format.
type Kind string

const (
	KindCSV  Kind = "csv"
	KindXLS  Kind = "xls"
	KindXLSX Kind = "xlsx"
)

var (
	zipMagic  = []byte("PK\x03\x04")
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// detectKind resolves the declared type or the filename extension to a
// Kind. Spreadsheet uploads whose bytes lack the container signature are
// read as CSV.
func detectKind(fileType, filename string, content []byte) (Kind, error) {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(fileType), "."))
	if ext == "" {
		ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	}

	switch Kind(ext) {
	case KindCSV:
		return KindCSV, nil
	case KindXLSX:
		if !bytes.HasPrefix(content, zipMagic) {
			return KindCSV, nil
		}
		return KindXLSX, nil
	case KindXLS:
		if !bytes.HasPrefix(content, ole2Magic) {
			return KindCSV, nil
		}
		return KindXLS, nil
	default:
		return "", errUnsupported
	}
}
