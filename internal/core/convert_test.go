package core

import (
	"testing"
	"time"

	"github.com/JonMunkholm/trafficsrc/internal/report"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ----------------------------------------------------------------------------
// ToPgDate Tests
// ----------------------------------------------------------------------------

func TestToPgDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "ISO format",
			input:     "2024-01-15",
			wantValid: true,
			wantYear:  2024,
			wantMonth: time.January,
			wantDay:   15,
		},
		{
			name:      "ISO format with surrounding whitespace",
			input:     "  2024-12-31 ",
			wantValid: true,
			wantYear:  2024,
			wantMonth: time.December,
			wantDay:   31,
		},
		{
			name:      "US slash format",
			input:     "3/7/2024",
			wantValid: true,
			wantYear:  2024,
			wantMonth: time.March,
			wantDay:   7,
		},
		{
			name:      "month name format",
			input:     "Jan 15, 2024",
			wantValid: true,
			wantYear:  2024,
			wantMonth: time.January,
			wantDay:   15,
		},
		{
			name:      "compact format",
			input:     "20240229",
			wantValid: true,
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
		{
			name:      "RFC3339 drops the clock",
			input:     "2024-06-01T23:59:00Z",
			wantValid: true,
			wantYear:  2024,
			wantMonth: time.June,
			wantDay:   1,
		},
		{
			name:      "empty string",
			input:     "",
			wantValid: false,
		},
		{
			name:      "not a date",
			input:     "yesterday",
			wantValid: false,
		},
		{
			name:      "Feb 29 in non-leap year",
			input:     "2023-02-29",
			wantValid: false,
		},
		{
			name:      "month 13",
			input:     "2024-13-01",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToPgDate(tt.input)

			if result.Valid != tt.wantValid {
				t.Errorf("ToPgDate(%q).Valid = %v, want %v",
					tt.input, result.Valid, tt.wantValid)
				return
			}

			if tt.wantValid {
				if result.Time.Year() != tt.wantYear {
					t.Errorf("ToPgDate(%q).Year = %d, want %d",
						tt.input, result.Time.Year(), tt.wantYear)
				}
				if result.Time.Month() != tt.wantMonth {
					t.Errorf("ToPgDate(%q).Month = %v, want %v",
						tt.input, result.Time.Month(), tt.wantMonth)
				}
				if result.Time.Day() != tt.wantDay {
					t.Errorf("ToPgDate(%q).Day = %d, want %d",
						tt.input, result.Time.Day(), tt.wantDay)
				}
			}
		})
	}
}

func TestToPgDate_TwoDigitYear(t *testing.T) {
	originalPivot := TwoDigitYearPivot
	defer func() { TwoDigitYearPivot = originalPivot }()
	TwoDigitYearPivot = 20

	tests := []struct {
		input    string
		wantYear int
	}{
		{"01/15/25", 2025},
		{"01/15/30", 2030},
		{"01/15/99", 1999},
		{"1-15-85", 1985},
		{"01.15.99", 1999},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToPgDate(tt.input)
			if !result.Valid {
				t.Fatalf("ToPgDate(%q) should be valid", tt.input)
			}
			if got := result.Time.Year(); got != tt.wantYear {
				t.Errorf("ToPgDate(%q).Year = %d, want %d", tt.input, got, tt.wantYear)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(pgtype.Date{}); got != "" {
		t.Errorf("FormatDate(invalid) = %q, want empty", got)
	}
	if got := FormatDate(ToPgDate("Jan 2, 2024")); got != "2024-01-02" {
		t.Errorf("FormatDate() = %q, want %q", got, "2024-01-02")
	}
}

// ----------------------------------------------------------------------------
// UUID Tests
// ----------------------------------------------------------------------------

func TestToPgUUID(t *testing.T) {
	id := uuid.New()
	pg := ToPgUUID(id)

	if !pg.Valid {
		t.Fatal("ToPgUUID() should be valid")
	}
	if uuid.UUID(pg.Bytes) != id {
		t.Errorf("ToPgUUID().Bytes = %v, want %v", uuid.UUID(pg.Bytes), id)
	}
}

// ----------------------------------------------------------------------------
// SourceFromRecord Tests
// ----------------------------------------------------------------------------

func TestSourceFromRecord(t *testing.T) {
	rec := report.OutputRecord{
		InsightTrafficSourceType: "Browse features",
		Views:                    42,
		EstimatedMinutesWatched:  120,
		AverageViewDuration:      171,
		AverageViewPercentage:    33.33,
		EngagedViews:             30,
	}

	got := SourceFromRecord(rec)

	want := Source{
		ID:                      "Browse features",
		Label:                   "Browse features",
		Views:                   42,
		EstimatedMinutesWatched: 120,
		AverageViewDuration:     171,
		AverageViewPercentage:   33.33,
		EngagedViews:            30,
	}
	if got != want {
		t.Errorf("SourceFromRecord() = %+v, want %+v", got, want)
	}
}
