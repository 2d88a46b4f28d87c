package core

import "context"

// SampleSources are the rows served when no database is configured.
var SampleSources = []Source{
	{
		ID:                      "YouTube Search",
		Label:                   "YouTube Search",
		Views:                   1200,
		EstimatedMinutesWatched: 3400,
		AverageViewDuration:     170,
		AverageViewPercentage:   31.2,
		EngagedViews:            900,
	},
	{
		ID:                      "Suggested Videos",
		Label:                   "Suggested Videos",
		Views:                   900,
		EstimatedMinutesWatched: 2200,
		AverageViewDuration:     146,
		AverageViewPercentage:   28.4,
		EngagedViews:            640,
	},
}

// StaticStore serves SampleSources for every range.
type StaticStore struct{}

// NewStaticStore returns a store backed by the sample rows.
func NewStaticStore() *StaticStore {
	return &StaticStore{}
}

// Name implements Store.
func (*StaticStore) Name() string { return "static" }

// Sources returns a copy of SampleSources regardless of r.
func (*StaticStore) Sources(ctx context.Context, _ DateRange) ([]Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Source, len(SampleSources))
	copy(out, SampleSources)
	return out, nil
}
