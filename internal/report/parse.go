package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse splits decoded text into a header and raw records using delim.
// An empty first line leaves the header unreadable; later blank lines are
// skipped. Short lines yield records without the trailing fields; cells
// beyond the header are dropped and counted in Table.Overflow.
func Parse(text string, delim rune) (*Table, error) {
	// encoding/csv would skip an empty first line and promote the next one.
	if strings.HasPrefix(text, "\n") || strings.HasPrefix(text, "\r\n") {
		return nil, fmt.Errorf("%w: first line is empty", ErrUnreadableHeader)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrUnreadableHeader
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableHeader, err)
	}

	table := &Table{Header: header}
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}

		n := min(len(row), len(header))
		if len(row) > len(header) {
			table.Overflow++
		}

		rec := make(RawRecord, n)
		for i := 0; i < n; i++ {
			rec[i] = Field{Header: header[i], Value: row[i]}
		}
		table.Rows = append(table.Rows, rec)
	}

	return table, nil
}
