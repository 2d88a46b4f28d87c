package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/trafficsrc/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = "\ufeffinsightTrafficSourceType,views,estimatedMinutesWatched,averageViewDuration,averageViewPercentage,engagedViews\n" +
	"YT_OTHER_PAGE,48,129,161,24.75,48\n" +
	"SUBSCRIBER,7,25,216,13.88,7\n" +
	",,,,,\n" +
	"\n" +
	"YT_CHANNEL,3,0,10,NaN,3\n"

func newConverter() *Converter {
	return NewConverter(logging.Discard())
}

func TestConvert_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := writeTemp(t, "Traffic_sources.csv", []byte(sampleReport))
	out := filepath.Join(dir, "src", "data", "traffic_geo.js")

	res, err := newConverter().Convert(context.Background(), Options{InputPath: in, OutputPath: out})
	require.NoError(t, err)

	assert.Equal(t, ',', res.Delimiter)
	assert.Equal(t, RequiredColumns, res.Headers)
	assert.Empty(t, res.Missing)
	assert.Len(t, res.Records, 3)
	assert.Equal(t, 1, res.Fallbacks)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

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
    insightTrafficSourceType: "SUBSCRIBER",
    views: 7,
    estimatedMinutesWatched: 25,
    averageViewDuration: 216,
    averageViewPercentage: 13.88,
    engagedViews: 7,
  },
  {
    insightTrafficSourceType: "YT_CHANNEL",
    views: 0,
    estimatedMinutesWatched: 0,
    averageViewDuration: 0,
    averageViewPercentage: 0.00,
    engagedViews: 0,
  },
];
`
	assert.Equal(t, want, string(data))
}

func TestConvert_TrimsHeadersAndValues(t *testing.T) {
	in := writeTemp(t, "r.csv", []byte(" insightTrafficSourceType ; views \n YT_SEARCH ; 42 \n"))
	out := filepath.Join(t.TempDir(), "out.js")

	res, err := newConverter().Convert(context.Background(), Options{InputPath: in, OutputPath: out, ExportName: "Weekly"})
	require.NoError(t, err)

	assert.Equal(t, ';', res.Delimiter)
	require.Len(t, res.Records, 1)
	assert.Equal(t, int64(42), res.Records[0].Views)
	assert.Equal(t, "YT_SEARCH", res.Records[0].InsightTrafficSourceType)
	assert.Equal(t,
		[]string{ColMinutesWatched, ColAvgViewDuration, ColAvgViewPercentage, ColEngagedViews},
		res.Missing,
	)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "export const Weekly = [\n"))
	assert.Contains(t, string(data), "    views: 42,\n")
}

func TestConvert_HeaderOnly(t *testing.T) {
	in := writeTemp(t, "r.csv", []byte(strings.Join(RequiredColumns, ",")+"\n"))
	out := filepath.Join(t.TempDir(), "out.js")

	res, err := newConverter().Convert(context.Background(), Options{InputPath: in, OutputPath: out})
	require.NoError(t, err)
	assert.Empty(t, res.Records)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "export const TrafficSources = [\n];\n", string(data))
}

func TestConvert_RecordCountMatchesNonBlankLines(t *testing.T) {
	var b strings.Builder
	b.WriteString(strings.Join(RequiredColumns, "\t") + "\n")
	nonBlank := 0
	for i := 0; i < 50; i++ {
		if i%7 == 0 {
			b.WriteString("\t\t\t\t\t\n")
			continue
		}
		b.WriteString("SRC\t1\t2\t3\t4.5\t6\n")
		nonBlank++
	}
	in := writeTemp(t, "r.tsv", []byte(b.String()))

	res, err := newConverter().Prepare(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, '\t', res.Delimiter)
	assert.Len(t, res.Records, nonBlank)
}

func TestConvert_MissingInputLeavesOutputAlone(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.js")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	_, err := newConverter().Convert(context.Background(), Options{
		InputPath:  filepath.Join(dir, "missing.csv"),
		OutputPath: out,
	})
	require.ErrorIs(t, err, ErrFileNotFound)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	_, err = newConverter().Convert(context.Background(), Options{
		InputPath:  filepath.Join(dir, "missing.csv"),
		OutputPath: filepath.Join(dir, "new", "out.js"),
	})
	require.ErrorIs(t, err, ErrFileNotFound)
	_, statErr := os.Stat(filepath.Join(dir, "new"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvert_Errors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.js")

	_, err := newConverter().Convert(context.Background(), Options{
		InputPath:  writeTemp(t, "blank.csv", []byte("\n  \n")),
		OutputPath: out,
	})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = newConverter().Convert(context.Background(), Options{
		InputPath:  writeTemp(t, "bom.csv", []byte{0xEF, 0xBB, 0xBF}),
		OutputPath: out,
	})
	require.ErrorIs(t, err, ErrUnreadableHeader)

	_, err = newConverter().Convert(context.Background(), Options{InputPath: "x.csv"})
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvert_Deterministic(t *testing.T) {
	in := writeTemp(t, "r.csv", []byte(sampleReport))
	dir := t.TempDir()
	first := filepath.Join(dir, "a.js")
	second := filepath.Join(dir, "b.js")

	_, err := newConverter().Convert(context.Background(), Options{InputPath: in, OutputPath: first})
	require.NoError(t, err)
	_, err = newConverter().Convert(context.Background(), Options{InputPath: in, OutputPath: second})
	require.NoError(t, err)

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestConvert_Cancelled(t *testing.T) {
	in := writeTemp(t, "r.csv", []byte(sampleReport))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newConverter().Prepare(ctx, in)
	require.ErrorIs(t, err, context.Canceled)
}
