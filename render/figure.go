package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/spektr-org/hrdiagram/engine"
)

// ============================================================================
// FIGURE — Explicit plotting surface for the HR diagram
// ============================================================================
// A Figure owns one gonum plot. Nothing is global: create it, draw on it,
// write it out, close it. WithFigure handles the close.
// ============================================================================

var (
	ErrFigureClosed  = errors.New("figure is closed")
	ErrUnknownFormat = errors.New("unknown image format")
)

// FigureConfig sizes the output image.
type FigureConfig struct {
	WidthIn  float64 // inches
	HeightIn float64 // inches
	Format   string  // png, svg, pdf
}

// DefaultFigureConfig matches a 9x8 inch PNG.
func DefaultFigureConfig() FigureConfig {
	return FigureConfig{WidthIn: 9, HeightIn: 8, Format: "png"}
}

// Figure is one diagram being drawn.
type Figure struct {
	cfg    FigureConfig
	plot   *plot.Plot
	legend []string
	points int
}

// NewFigure creates an empty figure.
func NewFigure(cfg FigureConfig) (*Figure, error) {
	switch cfg.Format {
	case "png", "svg", "pdf":
	case "":
		cfg.Format = "png"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}
	if cfg.WidthIn <= 0 || cfg.HeightIn <= 0 {
		return nil, fmt.Errorf("figure size must be positive, got %gx%g in", cfg.WidthIn, cfg.HeightIn)
	}
	return &Figure{cfg: cfg, plot: plot.New()}, nil
}

// WithFigure creates a figure, passes it to fn and closes it afterwards.
func WithFigure(cfg FigureConfig, fn func(*Figure) error) error {
	fig, err := NewFigure(cfg)
	if err != nil {
		return err
	}
	defer fig.Close()
	return fn(fig)
}

// DrawHRDiagram draws every series of the config as a point cloud.
// Series without points still get a legend entry.
func (f *Figure) DrawHRDiagram(sc *engine.ScatterConfig) error {
	if f.plot == nil {
		return ErrFigureClosed
	}
	if sc == nil {
		return fmt.Errorf("nil diagram config")
	}

	p := f.plot
	p.Title.Text = sc.Title
	p.X.Label.Text = sc.XAxis.Label
	p.Y.Label.Text = sc.YAxis.Label

	if sc.ShowGrid {
		grid := plotter.NewGrid()
		grid.Vertical.Color = color.Gray{Y: 128}
		grid.Horizontal.Color = color.Gray{Y: 128}
		grid.Vertical.Width = vg.Points(0.3)
		grid.Horizontal.Width = vg.Points(0.3)
		p.Add(grid)
	}

	for _, s := range sc.Series {
		c, err := parseHex(s.Color)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		c.A = 0x80

		scatter, err := plotter.NewScatter(toXYs(s.Points))
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}

		p.Add(scatter)
		if sc.ShowLegend {
			p.Legend.Add(s.Name, scatter)
			f.legend = append(f.legend, s.Name)
		}
		f.points += scatter.Len()
	}

	if sc.Annotation != nil && sc.Annotation.Text != "" {
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: sc.Annotation.X, Y: sc.Annotation.Y}},
			Labels: []string{sc.Annotation.Text},
		})
		if err != nil {
			return fmt.Errorf("annotation: %w", err)
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].Font.Size = vg.Points(14)
			labels.TextStyle[i].XAlign = draw.XCenter
			labels.TextStyle[i].YAlign = draw.YCenter
		}
		p.Add(labels)
	}

	// Ranges last: Add widens them to the data.
	applyAxis(&p.X, sc.XAxis)
	applyAxis(&p.Y, sc.YAxis)

	p.Legend.Top = true
	return nil
}

// Legend returns the legend labels in draw order.
func (f *Figure) Legend() []string {
	out := make([]string, len(f.legend))
	copy(out, f.legend)
	return out
}

// Points returns how many points have been drawn.
func (f *Figure) Points() int { return f.points }

// WriteTo encodes the figure in the configured format.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	if f.plot == nil {
		return 0, ErrFigureClosed
	}
	wt, err := f.plot.WriterTo(vg.Length(f.cfg.WidthIn)*vg.Inch, vg.Length(f.cfg.HeightIn)*vg.Inch, f.cfg.Format)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", f.cfg.Format, err)
	}
	return wt.WriteTo(w)
}

// Save writes the figure to path, creating parent directories.
func (f *Figure) Save(path string) error {
	if f.plot == nil {
		return ErrFigureClosed
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Close releases the plot. Safe to call more than once.
func (f *Figure) Close() error {
	f.plot = nil
	f.legend = nil
	return nil
}

func applyAxis(a *plot.Axis, cfg engine.Axis) {
	if cfg.Max > cfg.Min {
		a.Min = cfg.Min
		a.Max = cfg.Max
	}
	if cfg.Step > 0 {
		a.Tick.Marker = stepTicks{step: cfg.Step}
	}
	if cfg.Inverted {
		a.Scale = plot.InvertedScale{Normalizer: a.Scale}
	}
}

func toXYs(points []engine.Point) plotter.XYs {
	xys := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if !finite(pt.X) || !finite(pt.Y) {
			continue
		}
		xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
	}
	return xys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// stepTicks places labelled major ticks every step and one unlabelled
// minor tick halfway between.
type stepTicks struct {
	step float64
}

func (t stepTicks) Ticks(min, max float64) []plot.Tick {
	if t.step <= 0 || max <= min {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	var ticks []plot.Tick
	half := t.step / 2
	for v := math.Ceil(min/half) * half; v <= max+1e-9; v += half {
		v = math.Round(v/half) * half
		major := math.Abs(math.Remainder(v, t.step)) < 1e-9
		label := ""
		if major {
			label = trimFloat(v)
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: label})
	}
	return ticks
}

func trimFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%g", v)
}
