package report

// Column names of the traffic sources export.
const (
	ColSourceType        = "insightTrafficSourceType"
	ColViews             = "views"
	ColMinutesWatched    = "estimatedMinutesWatched"
	ColAvgViewDuration   = "averageViewDuration"
	ColAvgViewPercentage = "averageViewPercentage"
	ColEngagedViews      = "engagedViews"
)

// DefaultExportName is the array constant the dashboard imports.
const DefaultExportName = "TrafficSources"

// RequiredColumns lists the columns every report is expected to carry,
// in output order.
var RequiredColumns = []string{
	ColSourceType,
	ColViews,
	ColMinutesWatched,
	ColAvgViewDuration,
	ColAvgViewPercentage,
	ColEngagedViews,
}

// Field is one cell of a raw record keyed by its header as it appeared in
// the file.
type Field struct {
	Header string
	Value  string
}

// RawRecord holds the cells of one data line in column order.
// Cells past the end of a short line are absent.
type RawRecord []Field

// Get returns the value of the last cell with the given header.
func (r RawRecord) Get(header string) (string, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Header == header {
			return r[i].Value, true
		}
	}
	return "", false
}

// NormalizedRecord maps trimmed headers to trimmed values.
type NormalizedRecord map[string]string

// HeaderRenameMap maps a header as it appeared in the file to its trimmed form.
type HeaderRenameMap map[string]string

// OutputRecord is one emitted row. Values are fixed once created.
type OutputRecord struct {
	InsightTrafficSourceType string
	Views                    int64
	EstimatedMinutesWatched  int64
	AverageViewDuration      int64
	AverageViewPercentage    float64
	EngagedViews             int64
}

// Table is the parsed form of a report before normalization.
type Table struct {
	Header []string
	Rows   []RawRecord

	// Overflow counts data lines that had more cells than the header.
	// The extra cells are dropped.
	Overflow int
}
