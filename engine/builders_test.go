package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TABLE BUILDER TESTS
// ============================================================================

func TestBuildLuminosityTable(t *testing.T) {
	table := BuildLuminosityTable(LuminosityBuckets([]int{1, 1, 2, 5, 5, 5, 99}))

	require.Len(t, table.Columns, 3)
	assert.Equal(t, "Lc", table.Columns[0].Label)
	assert.Equal(t, "Num", table.Columns[1].Label)

	require.Len(t, table.Rows, 6)
	assert.Equal(t, []string{"I", "2", "33.3%"}, table.Rows[0])
	assert.Equal(t, []string{"IV", "0", "0.0%"}, table.Rows[3])
	assert.Equal(t, []string{"V", "3", "50.0%"}, table.Rows[4])
	assert.Equal(t, "6", table.Summary.Values["num"])
}

func TestBuildSpectralTable(t *testing.T) {
	buckets := countBuckets(SpectralTypes, CountSpectralTypes([]string{"G2V", "K0III", "M5", "Q9"}))
	table := BuildSpectralTable(buckets)

	assert.Equal(t, "SpT", table.Columns[0].Label)
	require.Len(t, table.Rows, 7)
	letters := make([]string, 0, 7)
	for _, r := range table.Rows {
		letters = append(letters, r[0])
	}
	assert.Equal(t, []string{"O", "B", "A", "F", "G", "K", "M"}, letters)
	assert.Equal(t, "3", table.Summary.Values["num"])
}

func TestBuildTableEmpty(t *testing.T) {
	table := BuildLuminosityTable(LuminosityBuckets(nil))
	require.Len(t, table.Rows, 6)
	for _, r := range table.Rows {
		assert.Equal(t, "0", r[1])
	}
	assert.Equal(t, "0", table.Summary.Values["num"])
}

// ============================================================================
// CHART BUILDER TESTS
// ============================================================================

func TestBuildHRDiagramAxes(t *testing.T) {
	view := NewStarView([]Star{
		{LumClass: 1, ColorIndex: 0.2, AbsMag: -6.3},
		{LumClass: 5, ColorIndex: 1.5, AbsMag: 9.2},
	})
	cfg := BuildHRDiagram(BucketByLuminosityClass(view), "")

	assert.Equal(t, DefaultTitle, cfg.Title)
	assert.Equal(t, -1.0, cfg.XAxis.Min)
	assert.Equal(t, 4.0, cfg.XAxis.Max)
	assert.Equal(t, 0.5, cfg.XAxis.Step)
	assert.False(t, cfg.XAxis.Inverted)

	assert.True(t, cfg.YAxis.Inverted)
	assert.Equal(t, -7.0, cfg.YAxis.Min)
	assert.Equal(t, 10.0, cfg.YAxis.Max)
	assert.True(t, cfg.ShowLegend)
	assert.True(t, cfg.ShowGrid)

	require.NotNil(t, cfg.Annotation)
	assert.Equal(t, 1.5, cfg.Annotation.X)
	assert.Equal(t, 9.5, cfg.Annotation.Y)
}

func TestBuildHRDiagramEmpty(t *testing.T) {
	cfg := BuildHRDiagram(BucketByLuminosityClass(NewStarView(nil)), "HR")

	require.Len(t, cfg.Series, 6)
	for _, s := range cfg.Series {
		assert.Empty(t, s.Points)
		assert.NotEmpty(t, s.Name)
	}
	assert.Equal(t, -8.0, cfg.YAxis.Min)
	assert.Equal(t, 17.0, cfg.YAxis.Max)
	assert.Equal(t, 5.0, cfg.YAxis.Step)

	// empty series marshal as [] rather than null
	b, err := json.Marshal(cfg.Series[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"points":[]`)
}

func TestBuildCountChart(t *testing.T) {
	chart := BuildCountChart("Stars per luminosity class", "Lc", LuminosityBuckets([]int{5, 5, 3}))

	assert.Equal(t, "bar", chart.ChartType)
	require.Len(t, chart.Data, 6)
	assert.Equal(t, ChartPoint{Label: "V", Value: 2, Color: "#0000FF"}, chart.Data[4])
	assert.Equal(t, 0.0, chart.Data[0].Value)
}

func TestBuildSummary(t *testing.T) {
	buckets := LuminosityBuckets([]int{1, 1, 5, 99})
	assert.Equal(t, "Classified 3 of 4 stars: Class I 2 (66.7%), Class V 1 (33.3%)", BuildSummary(4, buckets))
	assert.Equal(t, "No stars to classify.", BuildSummary(0, LuminosityBuckets(nil)))
	assert.Equal(t, "Classified 0 of 2 stars.", BuildSummary(2, LuminosityBuckets([]int{8, 9})))
}
