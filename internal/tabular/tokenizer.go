package tabular

import (
	"errors"
	"strings"
)

var (
	// ErrFormat indicates the text has no usable header/data shape.
	ErrFormat = errors.New("format error: expected a header line and at least one data line with two or more columns")
	// ErrEmptyInput indicates a header line with zero data rows.
	ErrEmptyInput = errors.New("empty input: no data rows after the header line")
)

// RawTable is the uninterpreted result of tokenizing one rate-table export.
// Headers keep their as-authored spelling; rows are not padded or truncated
// to the header width.
type RawTable struct {
	Headers   []string
	Rows      [][]string
	Delimiter rune
}

// Parse tokenizes raw text into a RawTable. A leading BOM is stripped and
// blank lines are discarded before any shape checks run.
func Parse(text string, delim rune) (*RawTable, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.TrimSpace(text)

	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		lines = append(lines, ln)
	}
	if len(lines) < 2 {
		return nil, ErrFormat
	}
	headers := splitLine(lines[0], delim)
	if len(headers) < 2 {
		return nil, ErrFormat
	}
	rows := make([][]string, 0, len(lines)-1)
	for _, ln := range lines[1:] {
		rows = append(rows, splitLine(ln, delim))
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return &RawTable{Headers: headers, Rows: rows, Delimiter: delim}, nil
}

// ParseAuto detects the delimiter from the first line and tokenizes.
func ParseAuto(text string) (*RawTable, error) {
	return Parse(text, DetectDelimiter(text))
}

// splitLine tokenizes one line with quote-aware state: a double quote toggles
// quoted mode, a doubled quote inside a quoted field emits a literal quote,
// and the delimiter only splits outside quotes. Fields are trimmed on emit.
func splitLine(line string, delim rune) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				b.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
		default:
			b.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}
