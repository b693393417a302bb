package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// literalEscapes are applied in order; "\\n" must run before "\\r\\n".
var literalEscapes = []struct{ from, to string }{
	{`\n`, "\n"},
	{`\r\n`, "\n"},
	{`\r`, "\n"},
	{`\t`, "    "},
	{`\"`, `"`},
	{`\/`, "/"},
}

var blankRun = regexp.MustCompile(`\n{3,}`)

// CleanText normalizes free text coming from the telephony platform:
//   - maps and slices are serialized to indented JSON first
//   - literal escape sequences (\n, \r\n, \r, \t, \", \/) are unescaped
//   - trailing whitespace is removed from every line
//   - runs of three or more newlines collapse to one blank line
//   - the result is trimmed
//
// It is idempotent on text that carries no literal escape sequences.
func CleanText(v any) string {
	text := stringify(v)
	if text == "" {
		return ""
	}

	for _, e := range literalEscapes {
		text = strings.ReplaceAll(text, e.from, e.to)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	text = strings.Join(lines, "\n")

	text = blankRun.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// IndentJSON serializes v as two-space indented JSON without HTML escaping.
func IndentJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case map[string]any, []any:
		return IndentJSON(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
