package report

import (
	"errors"
	"strings"
)

// Fatal conditions. Callers test for them with errors.Is.
var (
	ErrFileNotFound     = errors.New("input file not found")
	ErrEmptyInput       = errors.New("input file is empty")
	ErrUnreadableHeader = errors.New("unreadable header row")
)

// MissingColumnsError lists required columns absent from the header.
// It is reported as a warning and never stops a conversion.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}
