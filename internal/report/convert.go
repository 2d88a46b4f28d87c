package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Options configures one conversion.
type Options struct {
	InputPath  string
	OutputPath string
	ExportName string // DefaultExportName when empty
}

// Result summarizes a conversion.
type Result struct {
	Delimiter  rune
	Headers    []string
	Rows       []NormalizedRecord
	Records    []OutputRecord
	Missing    []string // required columns absent from the header
	Duplicates []string // headers that collide after trimming
	Fallbacks  int      // records that fell back to zeroed numbers
	Overflow   int      // lines with more cells than the header
}

// Converter runs the load, parse, normalize and emit pipeline.
type Converter struct {
	logger *slog.Logger
}

// NewConverter returns a Converter that reports diagnostics to logger.
// A nil logger uses slog.Default().
func NewConverter(logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{logger: logger}
}

// Prepare runs every step up to and including coercion without writing
// anything.
func (c *Converter) Prepare(ctx context.Context, inputPath string) (*Result, error) {
	raw, err := Load(inputPath)
	if err != nil {
		return nil, err
	}

	delim := SniffDelimiter(Sample(raw))
	table, err := Parse(Decode(raw), delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("conversion cancelled: %w", err)
	}

	rename, headers := NormalizeHeaders(table.Header)
	rows := NormalizeRows(table.Rows, rename)

	res := &Result{
		Delimiter:  delim,
		Headers:    headers,
		Rows:       rows,
		Missing:    MissingColumns(headers),
		Duplicates: DuplicateHeaders(headers),
		Overflow:   table.Overflow,
	}

	c.logger.Info("report parsed",
		"input", inputPath,
		"delimiter", string(delim),
		"headers", headers,
		"rows", len(rows),
	)
	if len(rows) > 0 {
		c.logger.Info("first row", "row", map[string]string(rows[0]))
	}
	if len(res.Missing) > 0 {
		c.logger.Warn("report is missing required columns",
			"missing", res.Missing,
			"hint", "compare the CSV header with the expected column names",
		)
	}
	if len(res.Duplicates) > 0 {
		c.logger.Warn("duplicate headers after trimming, right-most column wins",
			"headers", res.Duplicates,
		)
	}
	if res.Overflow > 0 {
		c.logger.Warn("lines with extra cells, extra cells ignored", "lines", res.Overflow)
	}

	res.Records = make([]OutputRecord, 0, len(rows))
	for i, row := range rows {
		rec, ok := Coerce(row)
		if !ok {
			res.Fallbacks++
			c.logger.Debug("non-numeric value, numeric fields zeroed",
				"row", i+1,
				"source_type", rec.InsightTrafficSourceType,
			)
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// Convert runs the whole pipeline and writes the module to opts.OutputPath.
// The output file is only touched once the input converted successfully.
func (c *Converter) Convert(ctx context.Context, opts Options) (*Result, error) {
	if strings.TrimSpace(opts.OutputPath) == "" {
		return nil, errors.New("output path is required")
	}
	exportName := opts.ExportName
	if exportName == "" {
		exportName = DefaultExportName
	}
	if err := checkExportName(exportName); err != nil {
		return nil, err
	}

	res, err := c.Prepare(ctx, opts.InputPath)
	if err != nil {
		return nil, err
	}

	if err := WriteFile(opts.OutputPath, exportName, res.Records); err != nil {
		return nil, err
	}

	c.logger.Info("module written",
		"output", opts.OutputPath,
		"export", exportName,
		"records", len(res.Records),
		"fallbacks", res.Fallbacks,
	)
	return res, nil
}
