package render

import (
	"fmt"
	"io"
	"math"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spektr-org/hrdiagram/engine"
)

// ============================================================================
// COUNT CHART — go-chart bar chart of category counts
// ============================================================================

const (
	countChartWidth  = 800
	countChartHeight = 400
)

// RenderCountChart writes cfg as a PNG bar chart. Zero bars are kept.
func RenderCountChart(w io.Writer, cfg *engine.ChartConfig) error {
	if cfg == nil || len(cfg.Data) == 0 {
		return fmt.Errorf("count chart has no bars")
	}

	maxValue := 0.0
	bars := make([]chart.Value, 0, len(cfg.Data))
	for _, d := range cfg.Data {
		style := chart.Style{StrokeWidth: 1}
		if d.Color != "" {
			c, err := parseHex(d.Color)
			if err != nil {
				return fmt.Errorf("bar %q: %w", d.Label, err)
			}
			fill := drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
			style.FillColor = fill
			style.StrokeColor = fill
		}
		bars = append(bars, chart.Value{Label: d.Label, Value: d.Value, Style: style})
		maxValue = math.Max(maxValue, d.Value)
	}

	bc := chart.BarChart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      countChartWidth,
		Height:     countChartHeight,
		BarWidth:   60,
		BarSpacing: 24,
		YAxis: chart.YAxis{
			Name:  cfg.YAxis,
			Range: &chart.ContinuousRange{Min: 0, Max: niceCeiling(maxValue)},
		},
		Bars: bars,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render count chart: %w", err)
	}
	return nil
}

// SaveCountChart renders cfg into the file at path.
func SaveCountChart(path string, cfg *engine.ChartConfig) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := RenderCountChart(out, cfg); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// niceCeiling rounds up to 1, 2 or 5 times a power of ten; never below 1
// so an all-zero chart still has a range.
func niceCeiling(v float64) float64 {
	if v <= 1 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if m*exp >= v {
			return m * exp
		}
	}
	return 10 * exp
}
