package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteModule(t *testing.T) {
	records := []OutputRecord{
		{
			InsightTrafficSourceType: "YT_OTHER_PAGE",
			Views:                    48,
			EstimatedMinutesWatched:  129,
			AverageViewDuration:      161,
			AverageViewPercentage:    24.75,
			EngagedViews:             48,
		},
		{
			InsightTrafficSourceType: `say "hi"`,
			AverageViewPercentage:    1.6399999999999997,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteModule(&buf, "TrafficSources", records))

	want := `export const TrafficSources = [
  {
    insightTrafficSourceType: "YT_OTHER_PAGE",
    views: 48,
    estimatedMinutesWatched: 129,
    averageViewDuration: 161,
    averageViewPercentage: 24.75,
    engagedViews: 48,
  },
  {
    insightTrafficSourceType: "say \"hi\"",
    views: 0,
    estimatedMinutesWatched: 0,
    averageViewDuration: 0,
    averageViewPercentage: 1.64,
    engagedViews: 0,
  },
];
`
	assert.Equal(t, want, buf.String())
}

func TestWriteModule_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModule(&buf, "Sources", nil))
	assert.Equal(t, "export const Sources = [\n];\n", buf.String())
}

func TestJSString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"YT_SEARCH", `"YT_SEARCH"`},
		{"a<b>&c", `"a<b>&c"`},
		{`back\slash`, `"back\\slash"`},
		{"line\nbreak", `"line\nbreak"`},
		{"Tìm kiếm", `"Tìm kiếm"`},
	}

	for _, tt := range tests {
		got, err := jsString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "data", "traffic.js")

	require.NoError(t, WriteFile(path, "TrafficSources", []OutputRecord{{InsightTrafficSourceType: "X"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `insightTrafficSourceType: "X",`)
}
