package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonMunkholm/trafficsrc/internal/report"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoDatabase is returned by imports when no pool is configured.
var ErrNoDatabase = errors.New("database not configured")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS traffic_source_imports (
	id          UUID PRIMARY KEY,
	report_date DATE NOT NULL,
	row_count   INTEGER NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS traffic_source_reports (
	import_id                 UUID NOT NULL REFERENCES traffic_source_imports(id) ON DELETE CASCADE,
	report_date               DATE NOT NULL,
	source_type               TEXT NOT NULL,
	views                     BIGINT NOT NULL,
	estimated_minutes_watched BIGINT NOT NULL,
	average_view_duration     BIGINT NOT NULL,
	average_view_percentage   DOUBLE PRECISION NOT NULL,
	engaged_views             BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS traffic_source_reports_date_idx
	ON traffic_source_reports (report_date);
`

// Durations and percentages are averages, so they are weighted by views
// when rows from several reports are combined.
const sourcesSQL = `
SELECT
	source_type,
	SUM(views)::bigint,
	SUM(estimated_minutes_watched)::bigint,
	COALESCE(ROUND(SUM(average_view_duration * views)::numeric / NULLIF(SUM(views), 0)),
		ROUND(AVG(average_view_duration)))::bigint,
	COALESCE(ROUND((SUM(average_view_percentage * views) / NULLIF(SUM(views), 0))::numeric, 2),
		ROUND(AVG(average_view_percentage)::numeric, 2))::float8,
	SUM(engaged_views)::bigint
FROM traffic_source_reports
`

const sourcesFilterSQL = `WHERE ($1::date IS NULL OR report_date >= $1::date)
  AND ($2::date IS NULL OR report_date <= $2::date)
`

const sourcesOrderSQL = `GROUP BY source_type
ORDER BY 2 DESC, source_type
`

var reportColumns = []string{
	"import_id",
	"report_date",
	"source_type",
	"views",
	"estimated_minutes_watched",
	"average_view_duration",
	"average_view_percentage",
	"engaged_views",
}

// PGStore keeps imported traffic source reports in PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a store on top of pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Name implements Store.
func (*PGStore) Name() string { return "postgres" }

// EnsureSchema creates the report tables if they do not exist yet.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	return ensureSchema(ctx, s.pool)
}

func ensureSchema(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Sources aggregates imported rows by traffic source type within r,
// ordered by views descending.
func (s *PGStore) Sources(ctx context.Context, r DateRange) ([]Source, error) {
	query, args := sourcesQuery(r)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sources: %w", err)
	}

	sources, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Source, error) {
		var rec report.OutputRecord
		err := row.Scan(
			&rec.InsightTrafficSourceType,
			&rec.Views,
			&rec.EstimatedMinutesWatched,
			&rec.AverageViewDuration,
			&rec.AverageViewPercentage,
			&rec.EngagedViews,
		)
		return SourceFromRecord(rec), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan sources: %w", err)
	}

	return sources, nil
}

// sourcesQuery builds the aggregate query. An open range has no filter.
func sourcesQuery(r DateRange) (string, []any) {
	if r.Open() {
		return sourcesSQL + sourcesOrderSQL, nil
	}
	return sourcesSQL + sourcesFilterSQL + sourcesOrderSQL, []any{r.Start, r.End}
}

// Import stores records under a new import ID in one transaction.
// The schema is created first if needed.
func (s *PGStore) Import(ctx context.Context, reportDate pgtype.Date, records []report.OutputRecord) (uuid.UUID, error) {
	if s == nil || s.pool == nil {
		return uuid.Nil, ErrNoDatabase
	}
	if !reportDate.Valid {
		return uuid.Nil, fmt.Errorf("%w: report date is required", ErrInvalidDate)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := ensureSchema(ctx, tx); err != nil {
		return uuid.Nil, err
	}

	importID := uuid.New()
	pgID := ToPgUUID(importID)

	_, err = tx.Exec(ctx,
		`INSERT INTO traffic_source_imports (id, report_date, row_count) VALUES ($1, $2, $3)`,
		pgID, reportDate, len(records))
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert import: %w", err)
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"traffic_source_reports"},
		reportColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{
				pgID,
				reportDate,
				r.InsightTrafficSourceType,
				r.Views,
				r.EstimatedMinutesWatched,
				r.AverageViewDuration,
				r.AverageViewPercentage,
				r.EngagedViews,
			}, nil
		}),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("copy records: %w", err)
	}
	if int(n) != len(records) {
		return uuid.Nil, fmt.Errorf("copy records: wrote %d of %d rows", n, len(records))
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit transaction: %w", err)
	}

	return importID, nil
}
