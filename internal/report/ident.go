package report

import (
	"errors"
	"fmt"
)

// ErrInvalidExportName is returned when an export name would not produce
// valid JavaScript.
var ErrInvalidExportName = errors.New("invalid export name")

// IsIdentifier reports whether s is a plain ASCII JavaScript identifier.
func IsIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}

func checkExportName(name string) error {
	if !IsIdentifier(name) {
		return fmt.Errorf("%w: %q is not a JavaScript identifier", ErrInvalidExportName, name)
	}
	return nil
}
