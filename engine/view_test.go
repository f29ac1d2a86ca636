package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarViewAccessors(t *testing.T) {
	view := NewStarView([]Star{{LumClass: 3, ColorIndex: 1.02, AbsMag: 0.1, SpType: "K0III"}})

	require.Equal(t, 1, view.Len())
	assert.Equal(t, "3", view.Dimension(0, DimLumClass))
	assert.Equal(t, "K0III", view.Dimension(0, DimSpType))
	assert.Equal(t, 1.02, view.Measure(0, MeasColorIndex))
	assert.Equal(t, 0.1, view.Measure(0, MeasAbsMag))
	assert.Equal(t, []string{DimLumClass, DimSpType}, view.DimensionKeys())
	assert.Equal(t, []string{MeasColorIndex, MeasAbsMag}, view.MeasureKeys())

	// out of range reads are zero values
	assert.Equal(t, "", view.Dimension(5, DimLumClass))
	assert.Equal(t, 0.0, view.Measure(-1, MeasAbsMag))
	assert.Equal(t, "", view.Dimension(0, "unknown"))
}

func TestSubViewReadsThroughParent(t *testing.T) {
	stars := []Star{
		{LumClass: 1, ColorIndex: 0.1},
		{LumClass: 5, ColorIndex: 0.5},
		{LumClass: 1, ColorIndex: 0.9},
	}
	sub := FilterByLuminosityClass(NewStarView(stars), 1)

	require.Equal(t, 2, sub.Len())
	assert.Equal(t, 0.1, sub.Measure(0, MeasColorIndex))
	assert.Equal(t, 0.9, sub.Measure(1, MeasColorIndex))
	assert.Equal(t, "", sub.Dimension(2, DimLumClass))
	assert.Equal(t, []string{DimLumClass, DimSpType}, sub.DimensionKeys())
}

func TestFilterByLuminosityClassOutOfRange(t *testing.T) {
	view := NewStarView([]Star{{LumClass: 7}})
	assert.Zero(t, FilterByLuminosityClass(view, 7).Len())
	assert.Zero(t, FilterByLuminosityClass(view, 0).Len())
}

func TestSliceViewKeys(t *testing.T) {
	view := NewSliceView([]Record{
		{Dimensions: map[string]string{DimLumClass: "5"}, Measures: map[string]float64{MeasAbsMag: 4.8}},
	})
	assert.Equal(t, []string{DimLumClass}, view.DimensionKeys())
	assert.Equal(t, []string{MeasAbsMag}, view.MeasureKeys())
	assert.Equal(t, 4.8, view.Measure(0, MeasAbsMag))
	assert.Equal(t, 0.0, view.Measure(3, MeasAbsMag))
}

func TestSpectralLetter(t *testing.T) {
	l, ok := SpectralLetter("G2V")
	assert.True(t, ok)
	assert.Equal(t, "G", l)

	_, ok = SpectralLetter("")
	assert.False(t, ok)

	l, ok = SpectralLetter("é")
	assert.True(t, ok)
	assert.Equal(t, "é", l)
}

func TestColumnsRoundTrip(t *testing.T) {
	stars := []Star{
		{LumClass: 5, ColorIndex: 0.65, AbsMag: 4.83, SpType: "G2V"},
		{LumClass: 3, ColorIndex: 1.2, AbsMag: 0.3, SpType: "K1III"},
	}

	cols := ColumnsFromStars(stars, true)
	assert.Equal(t, 2, cols.Len())
	assert.Equal(t, []int{5, 3}, cols.LumClass)
	assert.Equal(t, []string{"G2V", "K1III"}, cols.SpType)

	back, err := cols.Stars()
	require.NoError(t, err)
	assert.Equal(t, stars, back)

	noSp := ColumnsFromStars(stars, false)
	assert.Nil(t, noSp.SpType)
}

func TestColumnsMismatch(t *testing.T) {
	cols := Columns{LumClass: []int{1, 2}, ColorIndex: []float64{0.1}, AbsMag: []float64{1, 2}}
	_, err := cols.Stars()
	assert.ErrorIs(t, err, ErrColumnMismatch)
}
