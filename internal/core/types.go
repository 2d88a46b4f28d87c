package core

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Source is one traffic source row as served to the dashboard.
// ID and Label both carry the traffic source type.
type Source struct {
	ID                      string  `json:"id"`
	Label                   string  `json:"label"`
	Views                   int64   `json:"views"`
	EstimatedMinutesWatched int64   `json:"estimatedMinutesWatched"`
	AverageViewDuration     int64   `json:"averageViewDuration"`
	AverageViewPercentage   float64 `json:"averageViewPercentage"`
	EngagedViews            int64   `json:"engagedViews"`
}

// RangeRequest is the body of a range query. Both bounds are optional.
type RangeRequest struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// DateRange is a validated, inclusive date range. An invalid (NULL) bound
// leaves that side open.
type DateRange struct {
	Start pgtype.Date
	End   pgtype.Date
}

// Open reports whether neither bound is set.
func (r DateRange) Open() bool {
	return !r.Start.Valid && !r.End.Valid
}

// Store returns traffic source rows for a date range.
type Store interface {
	// Name identifies the backend in health checks and logs.
	Name() string
	Sources(ctx context.Context, r DateRange) ([]Source, error)
}
