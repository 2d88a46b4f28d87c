package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// QueryTimeout is the default bound on a single store lookup.
var QueryTimeout = 30 * time.Second

var (
	// ErrInvalidDate is returned when a range bound cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRange is returned when start falls after end.
	ErrInvalidRange = errors.New("invalid date range: start is after end")
)

// Service answers traffic source range queries from a Store.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	store   Store
	timeout time.Duration
}

// NewService creates a Service backed by store. A non-positive timeout
// falls back to QueryTimeout.
func NewService(store Store, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = QueryTimeout
	}
	return &Service{
		store:   store,
		timeout: timeout,
	}
}

// StoreName reports which backend serves queries.
func (s *Service) StoreName() string {
	return s.store.Name()
}

// Range validates req and returns the matching traffic source rows.
// The result is never nil.
func (s *Service) Range(ctx context.Context, req RangeRequest) ([]Source, error) {
	r, err := ParseRange(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sources, err := s.store.Sources(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%s store: %w", s.store.Name(), err)
	}
	if sources == nil {
		sources = []Source{}
	}
	return sources, nil
}

// ParseRange converts the raw request bounds into a DateRange.
// Empty bounds stay open.
func ParseRange(req RangeRequest) (DateRange, error) {
	var r DateRange

	if s := strings.TrimSpace(req.Start); s != "" {
		r.Start = ToPgDate(s)
		if !r.Start.Valid {
			return DateRange{}, fmt.Errorf("%w: start %q", ErrInvalidDate, req.Start)
		}
	}

	if s := strings.TrimSpace(req.End); s != "" {
		r.End = ToPgDate(s)
		if !r.End.Valid {
			return DateRange{}, fmt.Errorf("%w: end %q", ErrInvalidDate, req.End)
		}
	}

	if r.Start.Valid && r.End.Valid && r.Start.Time.After(r.End.Time) {
		return DateRange{}, fmt.Errorf("%w (%s > %s)", ErrInvalidRange,
			FormatDate(r.Start), FormatDate(r.End))
	}

	return r, nil
}
