package preview

import (
	"errors"
	"html"
	"strings"
)

const (
	alertWarning = "warning"
	alertDanger  = "danger"
)

// alertError is a failure shown to the operator. Its message is the
// user-facing text; wrapping it with detail keeps the level.
type alertError struct {
	level string
	text  string
}

func (e *alertError) Error() string { return e.text }

var (
	errUnreadable  = &alertError{alertDanger, "No se pudo leer el archivo."}
	errUnsupported = &alertError{alertWarning, "Solo se previsualizan archivos CSV o Excel (.csv, .xls, .xlsx)."}
	errEmpty       = &alertError{alertWarning, "No hay datos para mostrar."}
	errXLS         = &alertError{alertDanger, "Error leyendo XLS"}
	errXLSXInvalid = &alertError{alertDanger, "Archivo XLSX inválido"}
	errXLSXNoSheet = &alertError{alertDanger, "No se encontró la primera hoja en el XLSX."}
	errXLSXXML     = &alertError{alertDanger, "Error leyendo XLSX (XML)"}
)

func alertFor(err error) string {
	if errors.Is(err, errNoXLSReader) {
		return alertHTML(alertDanger, "Para previsualizar .xls se requiere un lector XLS.")
	}
	var a *alertError
	if errors.As(err, &a) {
		return alertHTML(a.level, err.Error())
	}
	return alertHTML(alertDanger, "Error al previsualizar: "+err.Error())
}

func alertHTML(level, text string) string {
	return `<div class="alert alert-` + level + `">` + html.EscapeString(text) + `</div>`
}

const (
	containerCSS = "width: 100%; max-width: 100%; box-sizing: border-box; display: block;" +
		"max-height: 420px; border-radius: 6px; border: 1px solid #e0e0e0; background: #fafbfc; margin-top: 8px; padding: 0; overflow: auto;"
	tableCSS = "width: 100%; border-collapse: collapse; font-size: 14px; table-layout: auto;" +
		"font-family: 'Segoe UI', Arial, sans-serif; background: #fff;"
	thCSS = "background: #f3f3f3; color: #222; font-weight: 600; padding: 10px 8px; border: 1px solid #e0e0e0; text-align: left;"
	tdCSS = "padding: 8px 8px; border: 1px solid #e0e0e0; overflow-wrap: anywhere; white-space: normal;"
)

// renderTable builds the styled preview table. Cell text is escaped.
func renderTable(header []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString(`<div style="` + containerCSS + `"><table style="` + tableCSS + `">`)
	if header != nil {
		b.WriteString("<thead><tr>")
		for _, c := range header {
			b.WriteString(`<th style="` + thCSS + `">` + html.EscapeString(c) + "</th>")
		}
		b.WriteString("</tr></thead>")
	}
	b.WriteString("<tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, c := range row {
			b.WriteString(`<td style="` + tdCSS + `">` + html.EscapeString(c) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></div>")

	return b.String()
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// padRows makes every row as wide as the widest one, capped at maxCols.
func padRows(rows [][]string, maxCols int) [][]string {
	width := 0
	for _, r := range rows {
		width = max(width, min(len(r), maxCols))
	}
	for i, r := range rows {
		if len(r) > width {
			r = r[:width]
		}
		for len(r) < width {
			r = append(r, "")
		}
		rows[i] = r
	}
	return rows
}
