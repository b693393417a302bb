package preview

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	// sniffSample is how much decoded text the delimiter sniffer inspects.
	sniffSample = 2048
	// sniffConsistency is the share of sample lines that must agree on a
	// delimiter count.
	sniffConsistency = 0.9
)

// candidateDelimiters in preference order; ties go to the earlier one.
var candidateDelimiters = []rune{',', ';', '\t', '|', ':', '^', '~'}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV decodes and sniffs content, then returns up to maxRows non-empty
// records truncated to maxCols cells. Rows may differ in width.
func readCSV(content []byte, maxRows, maxCols int) ([][]string, error) {
	text, err := decodeText(content)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sniffDelimiter(text)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var rows [][]string
	for len(rows) < maxRows {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Keep what was read before the malformed record.
			if len(rows) > 0 {
				break
			}
			return nil, err
		}
		if len(rec) > maxCols {
			rec = rec[:maxCols]
		}
		rows = append(rows, rec)
	}

	return rows, nil
}

// decodeText tries UTF-8 (with or without BOM), then latin-1. Bytes in the
// 0x80-0x9F range are control codes in latin-1 but printable in cp1252, so
// their presence selects cp1252 instead.
func decodeText(content []byte) (string, error) {
	if utf8.Valid(content) {
		if bytes.HasPrefix(content, utf8BOM) {
			return unicode.UTF8BOM.NewDecoder().String(string(content))
		}
		return string(content), nil
	}

	dec := charmap.ISO8859_1.NewDecoder()
	if hasC1Bytes(content) {
		dec = charmap.Windows1252.NewDecoder()
	}
	return dec.String(string(content))
}

func hasC1Bytes(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 && c <= 0x9F {
			return true
		}
	}
	return false
}

// sniffDelimiter picks the candidate that splits the sample's lines into
// a consistent number of fields, preferring the one producing the most
// fields. Without a consistent candidate the most frequent one wins.
func sniffDelimiter(text string) rune {
	sample := text
	if len(sample) > sniffSample {
		sample = sample[:sniffSample]
		// Drop the partial last line.
		if i := strings.LastIndexByte(sample, '\n'); i > 0 {
			sample = sample[:i]
		}
	}

	if d, ok := consistentDelimiter(sample); ok {
		return d
	}
	return mostFrequentDelimiter(sample)
}

func consistentDelimiter(sample string) (rune, bool) {
	var lines []string
	for _, l := range strings.Split(sample, "\n") {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return 0, false
	}

	var (
		best      rune
		bestCount int
	)
	for _, d := range candidateDelimiters {
		freq := make(map[int]int)
		for _, l := range lines {
			freq[countUnquoted(l, d)]++
		}

		mode, hits := 0, 0
		for n, f := range freq {
			if f > hits || (f == hits && n > mode) {
				mode, hits = n, f
			}
		}
		if mode == 0 || float64(hits)/float64(len(lines)) < sniffConsistency {
			continue
		}
		if mode > bestCount {
			best, bestCount = d, mode
		}
	}

	return best, bestCount > 0
}

func mostFrequentDelimiter(sample string) rune {
	best, bestCount := candidateDelimiters[0], 0
	for _, d := range candidateDelimiters {
		if n := strings.Count(sample, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// countUnquoted counts d outside double-quoted sections of line.
func countUnquoted(line string, d rune) int {
	n := 0
	quoted := false
	for _, c := range line {
		switch {
		case c == '"':
			quoted = !quoted
		case c == d && !quoted:
			n++
		}
	}
	return n
}
