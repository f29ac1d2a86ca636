package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/hrdiagram/engine"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func diagramFor(stars []engine.Star) *engine.ScatterConfig {
	buckets := engine.BucketByLuminosityClass(engine.NewStarView(stars))
	return engine.BuildHRDiagram(buckets, "")
}

func TestDrawHRDiagramPNG(t *testing.T) {
	sc := diagramFor([]engine.Star{
		{LumClass: 5, ColorIndex: 0.65, AbsMag: 4.83},
		{LumClass: 3, ColorIndex: 1.2, AbsMag: 0.4},
		{LumClass: 1, ColorIndex: 0.1, AbsMag: -6.5},
	})

	fig, err := NewFigure(DefaultFigureConfig())
	require.NoError(t, err)
	defer fig.Close()

	require.NoError(t, fig.DrawHRDiagram(sc))
	assert.Equal(t, 3, fig.Points())
	assert.Equal(t, []string{"Class I", "Class II", "Class III", "Class IV", "Class V", "Class VI"}, fig.Legend())

	var buf bytes.Buffer
	n, err := fig.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestDrawHRDiagramEmptyDataset(t *testing.T) {
	fig, err := NewFigure(DefaultFigureConfig())
	require.NoError(t, err)
	defer fig.Close()

	require.NoError(t, fig.DrawHRDiagram(diagramFor(nil)))
	assert.Zero(t, fig.Points())
	assert.Len(t, fig.Legend(), 6)

	var buf bytes.Buffer
	_, err = fig.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestFigureSVG(t *testing.T) {
	fig, err := NewFigure(FigureConfig{WidthIn: 4, HeightIn: 3, Format: "svg"})
	require.NoError(t, err)
	defer fig.Close()

	require.NoError(t, fig.DrawHRDiagram(diagramFor([]engine.Star{{LumClass: 2, ColorIndex: 1, AbsMag: -2}})))

	var buf bytes.Buffer
	_, err = fig.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<svg")
}

func TestFigureSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "hr.png")

	err := WithFigure(DefaultFigureConfig(), func(fig *Figure) error {
		if err := fig.DrawHRDiagram(diagramFor(nil)); err != nil {
			return err
		}
		return fig.Save(path)
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestFigureClosed(t *testing.T) {
	fig, err := NewFigure(DefaultFigureConfig())
	require.NoError(t, err)

	require.NoError(t, fig.Close())
	require.NoError(t, fig.Close())

	assert.ErrorIs(t, fig.DrawHRDiagram(diagramFor(nil)), ErrFigureClosed)
	_, err = fig.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrFigureClosed)
	assert.ErrorIs(t, fig.Save(filepath.Join(t.TempDir(), "x.png")), ErrFigureClosed)
}

func TestWithFigureClosesOnError(t *testing.T) {
	var kept *Figure
	err := WithFigure(DefaultFigureConfig(), func(fig *Figure) error {
		kept = fig
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, kept.DrawHRDiagram(diagramFor(nil)), ErrFigureClosed)
}

func TestNewFigureRejectsBadConfig(t *testing.T) {
	_, err := NewFigure(FigureConfig{WidthIn: 9, HeightIn: 8, Format: "bmp"})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = NewFigure(FigureConfig{WidthIn: 0, HeightIn: 8})
	assert.Error(t, err)

	fig, err := NewFigure(FigureConfig{WidthIn: 1, HeightIn: 1})
	require.NoError(t, err)
	assert.Equal(t, "png", fig.cfg.Format)
}

func TestDrawRejectsBadColor(t *testing.T) {
	fig, err := NewFigure(DefaultFigureConfig())
	require.NoError(t, err)
	defer fig.Close()

	err = fig.DrawHRDiagram(&engine.ScatterConfig{
		Series: []engine.ScatterSeries{{Name: "bad", Color: "blue"}},
	})
	assert.Error(t, err)
}

func TestStepTicks(t *testing.T) {
	ticks := stepTicks{step: 1}.Ticks(-1, 1)

	var values []float64
	var labels []string
	for _, tk := range ticks {
		values = append(values, tk.Value)
		labels = append(labels, tk.Label)
	}
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, values)
	assert.Equal(t, []string{"-1", "", "0", "", "1"}, labels)
}

func TestToXYsSkipsNonFinite(t *testing.T) {
	xys := toXYs([]engine.Point{{X: 1, Y: 2}, {X: math.NaN(), Y: 1}, {X: 0, Y: math.Inf(1)}})
	require.Len(t, xys, 1)
	assert.Equal(t, 1.0, xys[0].X)
}

func TestParseHex(t *testing.T) {
	c, err := parseHex("#FFA500")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), c.R)
	assert.Equal(t, uint8(0xA5), c.G)
	assert.Equal(t, uint8(0x00), c.B)

	_, err = parseHex("#FFF")
	assert.Error(t, err)
	_, err = parseHex("#GGGGGG")
	assert.Error(t, err)
}
