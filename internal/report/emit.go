package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteModule renders records as a JavaScript module exporting a single
// array constant named exportName. Fields are written in a fixed order and
// every object is followed by a comma. exportName must be an identifier.
func WriteModule(w io.Writer, exportName string, records []OutputRecord) error {
	if err := checkExportName(exportName); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "export const %s = [\n", exportName)
	for _, r := range records {
		src, err := jsString(r.InsightTrafficSourceType)
		if err != nil {
			return fmt.Errorf("encode source type %q: %w", r.InsightTrafficSourceType, err)
		}

		bw.WriteString("  {\n")
		fmt.Fprintf(bw, "    %s: %s,\n", ColSourceType, src)
		fmt.Fprintf(bw, "    %s: %d,\n", ColViews, r.Views)
		fmt.Fprintf(bw, "    %s: %d,\n", ColMinutesWatched, r.EstimatedMinutesWatched)
		fmt.Fprintf(bw, "    %s: %d,\n", ColAvgViewDuration, r.AverageViewDuration)
		fmt.Fprintf(bw, "    %s: %s,\n", ColAvgViewPercentage, strconv.FormatFloat(r.AverageViewPercentage, 'f', 2, 64))
		fmt.Fprintf(bw, "    %s: %d,\n", ColEngagedViews, r.EngagedViews)
		bw.WriteString("  },\n")
	}
	bw.WriteString("];\n")

	return bw.Flush()
}

// WriteFile renders the module and writes it to path, creating missing
// parent directories first.
func WriteFile(path, exportName string, records []OutputRecord) error {
	var buf bytes.Buffer
	if err := WriteModule(&buf, exportName, records); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// jsString quotes s as a JavaScript string literal. JSON string syntax is
// valid JavaScript; HTML escaping is turned off so plain text stays as is.
func jsString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
