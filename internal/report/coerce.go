package report

import (
	"fmt"
	"math"
	"strconv"
)

// Coerce converts a normalized record into an output record.
//
// Integer columns are parsed as floats and truncated toward zero. Absent or
// empty cells count as zero. If any numeric cell fails to parse, all numeric
// fields of the record become zero and ok is false. The source type is
// copied as is.
func Coerce(rec NormalizedRecord) (out OutputRecord, ok bool) {
	out, err := coerceFields(rec)
	if err != nil {
		return OutputRecord{InsightTrafficSourceType: rec[ColSourceType]}, false
	}
	return out, true
}

func coerceFields(rec NormalizedRecord) (OutputRecord, error) {
	out := OutputRecord{InsightTrafficSourceType: rec[ColSourceType]}

	ints := []struct {
		col string
		dst *int64
	}{
		{ColViews, &out.Views},
		{ColMinutesWatched, &out.EstimatedMinutesWatched},
		{ColAvgViewDuration, &out.AverageViewDuration},
		{ColEngagedViews, &out.EngagedViews},
	}
	for _, f := range ints {
		v, err := parseInt(rec[f.col])
		if err != nil {
			return OutputRecord{}, fmt.Errorf("%s: %w", f.col, err)
		}
		*f.dst = v
	}

	pct, err := parseNumber(rec[ColAvgViewPercentage])
	if err != nil {
		return OutputRecord{}, fmt.Errorf("%s: %w", ColAvgViewPercentage, err)
	}
	out.AverageViewPercentage = pct

	return out, nil
}

// parseNumber parses a finite float. The empty string is zero.
func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return f, nil
}

// parseInt parses a number and truncates it toward zero.
func parseInt(s string) (int64, error) {
	f, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	t := math.Trunc(f)
	if t >= math.MaxInt64 || t < math.MinInt64 {
		return 0, fmt.Errorf("out of range: %q", s)
	}
	return int64(t), nil
}
