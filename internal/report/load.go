package report

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SniffSampleSize is how many leading bytes the delimiter sniffer inspects.
const SniffSampleSize = 4096

// asciiSpace matches the bytes a blank file may consist of.
const asciiSpace = " \t\n\r\v\f"

// Load reads the report at path.
// It fails with ErrFileNotFound when the path does not exist and with
// ErrEmptyInput when the file holds nothing but whitespace.
func Load(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(bytes.Trim(raw, asciiSpace)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}
	return raw, nil
}

// Sample returns the prefix of raw used for delimiter detection.
func Sample(raw []byte) []byte {
	if len(raw) > SniffSampleSize {
		return raw[:SniffSampleSize]
	}
	return raw
}

// Decode converts raw bytes to text. A leading byte order mark is dropped
// and ill-formed UTF-8 is replaced with U+FFFD rather than rejected.
func Decode(raw []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		// The decoder replaces bad input instead of failing; keep the
		// bytes as they are if the transformer ever reports otherwise.
		return string(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf")))
	}
	return string(out)
}
