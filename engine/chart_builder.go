package engine

import "math"

// ============================================================================
// CHART BUILDER — Produces ScatterConfig / ChartConfig from buckets
// ============================================================================

// HR diagram axis defaults.
const (
	ColorIndexMin  = -1.0
	ColorIndexMax  = 4.0
	ColorIndexStep = 0.5

	defaultMagMin = -8.0
	defaultMagMax = 17.0
	magPadding    = 0.5

	DefaultTitle = "Hertzsprung-Russell Diagram"
)

// BuildHRDiagram lays out one scatter series per luminosity bucket.
// Empty buckets keep their series (no points) so the legend lists all of them.
func BuildHRDiagram(buckets []Bucket, title string) *ScatterConfig {
	if title == "" {
		title = DefaultTitle
	}

	views := make([]RecordView, 0, len(buckets))
	series := make([]ScatterSeries, 0, len(buckets))
	for _, b := range buckets {
		views = append(views, b.View)
		series = append(series, ScatterSeries{
			Name:   b.Label,
			Color:  b.Color,
			Points: b.Points(),
		})
	}

	yMin, yMax := magnitudeRange(views)

	return &ScatterConfig{
		Title: title,
		XAxis: Axis{
			Label: "(B-V)",
			Min:   ColorIndexMin,
			Max:   ColorIndexMax,
			Step:  ColorIndexStep,
		},
		YAxis: Axis{
			Label:    "Mv",
			Min:      yMin,
			Max:      yMax,
			Step:     magnitudeStep(yMax - yMin),
			Inverted: true,
		},
		Series:     series,
		ShowLegend: true,
		ShowGrid:   true,
		Annotation: &Annotation{
			Text: title,
			X:    (ColorIndexMin + ColorIndexMax) / 2,
			Y:    yMax - magPadding,
		},
	}
}

// magnitudeRange pads the data range outward to whole magnitudes.
func magnitudeRange(views []RecordView) (float64, float64) {
	lo, hi, ok := MeasureRange(views, MeasAbsMag)
	if !ok {
		return defaultMagMin, defaultMagMax
	}
	lo = math.Floor(lo - magPadding)
	hi = math.Ceil(hi + magPadding)
	if hi-lo < 1 {
		hi = lo + 1
	}
	return lo, hi
}

func magnitudeStep(span float64) float64 {
	switch {
	case span > 20:
		return 5
	case span > 8:
		return 2
	default:
		return 1
	}
}

// BuildCountChart produces a bar chart config from count buckets.
func BuildCountChart(title, xAxis string, buckets []Bucket) *ChartConfig {
	data := make([]ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		data = append(data, ChartPoint{
			Label: b.Short,
			Value: float64(b.Count),
			Color: b.Color,
		})
	}
	return &ChartConfig{
		ChartType: "bar",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     "Num",
		Data:      data,
		ShowGrid:  true,
	}
}
