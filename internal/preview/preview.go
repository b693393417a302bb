// Package preview renders the first rows of an uploaded CSV, XLS or XLSX
// file as an HTML table. Problems are reported inside the returned HTML as
// alert blocks; Render never fails.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/callhistory-backend/internal/metrics"
)

// Default preview limits.
const (
	DefaultMaxRows = 20
	DefaultMaxCols = 15
)

// Upload is a file submitted for preview. FileType is the declared kind
// ("csv", "xls", "xlsx"); when empty the filename extension is used.
type Upload struct {
	Filename string
	FileType string
	Content  []byte
}

// Config holds the preview limits.
type Config struct {
	MaxRows int
	MaxCols int
	// LegacyXLS enables the BIFF reader for .xls uploads.
	LegacyXLS bool
}

// Previewer renders uploads as HTML tables.
type Previewer struct {
	log     *slog.Logger
	maxRows int
	maxCols int
	xls     sheetReader
}

// sheetReader returns up to maxRows rows of at most maxCols cells from the
// first sheet of a workbook.
type sheetReader func(content []byte, maxRows, maxCols int) ([][]string, error)

// New creates a Previewer. Non-positive limits fall back to the defaults.
func New(logger *slog.Logger, cfg Config) *Previewer {
	p := &Previewer{
		log:     logger.With("component", "preview"),
		maxRows: cfg.MaxRows,
		maxCols: cfg.MaxCols,
	}
	if p.maxRows <= 0 {
		p.maxRows = DefaultMaxRows
	}
	if p.maxCols <= 0 {
		p.maxCols = DefaultMaxCols
	}
	if cfg.LegacyXLS {
		p.xls = readXLS
	}
	return p
}

// errNoXLSReader is reported when .xls support is disabled.
var errNoXLSReader = errors.New("no legacy xls reader configured")

// Render produces the HTML preview of an upload.
func (p *Previewer) Render(ctx context.Context, u Upload) string {
	out, kind, err := p.render(u)
	if kind == "" {
		kind = "unknown"
	}
	if err != nil {
		metrics.RecordPreview(string(kind), "alert")
		p.log.DebugContext(ctx, "preview failed",
			slog.String("filename", u.Filename),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return alertFor(err)
	}
	metrics.RecordPreview(string(kind), "table")
	return out
}

func (p *Previewer) render(u Upload) (string, Kind, error) {
	if len(u.Content) == 0 {
		return "", "", errUnreadable
	}

	kind, err := detectKind(u.FileType, u.Filename, u.Content)
	if err != nil {
		return "", "", err
	}

	// Header rows are read on top of the data rows.
	limit := p.maxRows + 1

	var rows [][]string
	switch kind {
	case KindCSV:
		rows, err = readCSV(u.Content, limit, p.maxCols)
	case KindXLSX:
		rows, err = p.readXLSX(u.Content, limit)
	case KindXLS:
		if p.xls == nil {
			return "", kind, errNoXLSReader
		}
		rows, err = safeRead(p.xls, u.Content, limit, p.maxCols)
		if err != nil {
			err = fmt.Errorf("%w: %v", errXLS, err)
		}
	}
	if err != nil {
		return "", kind, err
	}

	header, body := splitHeader(rows)
	if header == nil && len(body) == 0 {
		return "", kind, errEmpty
	}
	return renderTable(header, body), kind, nil
}

// readXLSX tries the spreadsheet library first and the raw ZIP+XML reader
// when the library cannot open the workbook.
func (p *Previewer) readXLSX(content []byte, limit int) ([][]string, error) {
	rows, err := readXLSXLibrary(content, limit, p.maxCols)
	if err == nil {
		return rows, nil
	}
	p.log.Debug("xlsx library failed, using xml reader", slog.String("error", err.Error()))
	return readXLSXRaw(content, limit, p.maxCols)
}

// safeRead converts a panic inside a third-party reader into an error.
func safeRead(read sheetReader, content []byte, maxRows, maxCols int) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reader panic: %v", r)
		}
	}()
	return read(content, maxRows, maxCols)
}

// splitHeader treats the first row as a header when it has a non-blank
// cell and more than one column.
func splitHeader(rows [][]string) ([]string, [][]string) {
	if len(rows) == 0 {
		return nil, rows
	}
	first := rows[0]
	if len(first) > 1 && !blankRow(first) {
		return first, rows[1:]
	}
	return nil, rows
}
