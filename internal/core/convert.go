package core

// convert.go turns user input into pgtype values and report records into
// API rows.
//
// Dates arrive from browsers and spreadsheets in many shapes (ISO, US,
// EU, "Jan 2, 2006"). ToPgDate accepts all of them and returns Valid=false
// for anything else so callers can tell "absent" from "malformed".

import (
	"strings"
	"time"

	"github.com/JonMunkholm/trafficsrc/internal/report"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// Years that would land more than this many years in the future are moved
// to the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
		time.RFC3339,
	}
)

// ToPgDate converts a string to pgtype.Date.
// Supports multiple date formats and handles 2-digit years with pivot.
func ToPgDate(s string) pgtype.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Date{Valid: false}
	}

	for _, layout := range fourDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return pgtype.Date{Time: truncateDay(t), Valid: true}
		}
	}

	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return pgtype.Date{Time: t, Valid: true}
		}
	}

	return pgtype.Date{Valid: false}
}

// truncateDay drops the clock part, keeping the calendar date as written.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a pgtype.Date as YYYY-MM-DD, or "" when invalid.
func FormatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// ToPgUUID converts a uuid.UUID to pgtype.UUID.
func ToPgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// SourceFromRecord converts an emitted report record into an API row.
func SourceFromRecord(r report.OutputRecord) Source {
	return Source{
		ID:                      r.InsightTrafficSourceType,
		Label:                   r.InsightTrafficSourceType,
		Views:                   r.Views,
		EstimatedMinutesWatched: r.EstimatedMinutesWatched,
		AverageViewDuration:     r.AverageViewDuration,
		AverageViewPercentage:   r.AverageViewPercentage,
		EngagedViews:            r.EngagedViews,
	}
}
