package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JonMunkholm/trafficsrc/internal/config"
	"github.com/JonMunkholm/trafficsrc/internal/core"
	"github.com/JonMunkholm/trafficsrc/internal/report"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/spf13/cobra"
)

// convertOptions holds the parsed command line.
type convertOptions struct {
	input      string
	output     string
	exportName string
	doImport   bool
	reportDate string
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a traffic sources CSV report into a JavaScript module",
		Long: `Reads a YouTube style traffic sources report, normalizes its headers and
values, and writes an ES module exporting one object per data row.

With --import the records are also copied into PostgreSQL (DATABASE_URL)
under the given report date so the range API can serve them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), cfg, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", cfg.Convert.InputPath, "traffic sources CSV report")
	flags.StringVarP(&opts.output, "output", "o", cfg.Convert.OutputPath, "JavaScript module to write")
	flags.StringVar(&opts.exportName, "export-name", cfg.Convert.ExportName, "name of the exported array")
	flags.BoolVar(&opts.doImport, "import", false, "also import the records into PostgreSQL")
	flags.StringVar(&opts.reportDate, "report-date", time.Now().Format("2006-01-02"), "report date for --import")

	return cmd
}

func runConvert(ctx context.Context, cfg *config.Config, opts *convertOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	check := *cfg
	check.Convert.ExportName = opts.exportName
	if err := check.Validate(); err != nil {
		return err
	}

	var reportDate pgtype.Date
	if opts.doImport {
		reportDate = core.ToPgDate(opts.reportDate)
		if !reportDate.Valid {
			return fmt.Errorf("%w: report date %q", core.ErrInvalidDate, opts.reportDate)
		}
		if !cfg.Database.Enabled() {
			return fmt.Errorf("--import: %w", core.ErrNoDatabase)
		}
	}

	res, err := report.NewConverter(slog.Default()).Convert(ctx, report.Options{
		InputPath:  opts.input,
		OutputPath: opts.output,
		ExportName: opts.exportName,
	})
	if err != nil {
		return err
	}

	if !opts.doImport {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Database.QueryTimeout)
	defer cancel()

	pool, err := core.OpenPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	id, err := core.NewPGStore(pool).Import(ctx, reportDate, res.Records)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	slog.Info("records imported",
		"import_id", id.String(),
		"report_date", core.FormatDate(reportDate),
		"records", len(res.Records),
	)
	return nil
}
