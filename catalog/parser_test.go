package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/hrdiagram/engine"
	"github.com/spektr-org/hrdiagram/schema"
)

// ============================================================================
// PARSER TESTS
// ============================================================================

const xhipTSV = "#\n" +
	"#   VizieR Astronomical Server vizier.cds.unistra.fr\n" +
	"#INFO\tQUERY_STATUS=\"OK\"\n" +
	"#RESOURCE=yCat_5137\n" +
	"#Table\tV_137D_XHIP:\n" +
	"\n" +
	"Lc\tB-V\tVMag\tSpType\n" +
	"\tmag\tmag\t\n" +
	"-\t------\t------\t------------\n" +
	"5\t 0.656\t  4.83\tG2V\n" +
	"3\t 1.020\t  0.70\tK0III\n" +
	"1\t 0.150\t -6.90\tB8Ia\n" +
	"5\t 1.451\t 10.30\tM5V\n" +
	"\n" +
	"#END\n"

func TestParseTSV(t *testing.T) {
	stars, stats, err := ParseTSV(strings.NewReader(xhipTSV), schema.XHIP(true))
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Rows)
	assert.Zero(t, stats.Skipped)
	require.Len(t, stars, 4)
	assert.Equal(t, engine.Star{LumClass: 5, ColorIndex: 0.656, AbsMag: 4.83, SpType: "G2V"}, stars[0])
	assert.Equal(t, engine.Star{LumClass: 1, ColorIndex: 0.15, AbsMag: -6.9, SpType: "B8Ia"}, stars[2])
}

func TestParseTSVReorderedColumns(t *testing.T) {
	body := "VMag\tLc\tB-V\n" +
		"mag\t\tmag\n" +
		"----\t--\t----\n" +
		"4.83\t5\t0.65\n"

	stars, _, err := ParseTSV(strings.NewReader(body), schema.XHIP(false))
	require.NoError(t, err)
	assert.Equal(t, []engine.Star{{LumClass: 5, ColorIndex: 0.65, AbsMag: 4.83}}, stars)
}

func TestParseTSVSkipsBlankCells(t *testing.T) {
	body := "Lc\tB-V\tVMag\tSpType\n" +
		"--\t---\t----\t------\n" +
		"5\t0.65\t4.83\tG2V\n" +
		"\t0.30\t2.10\tA5V\n" +
		"4\t0.50\t3.00\t\n"

	stars, stats, err := ParseTSV(strings.NewReader(body), schema.XHIP(true))
	require.NoError(t, err)
	assert.Len(t, stars, 1)
	assert.Equal(t, 3, stats.Rows)
	assert.Equal(t, 2, stats.Skipped)
}

func TestParseTSVIntegralFloatCode(t *testing.T) {
	body := "Lc\tB-V\tVMag\n---\t---\t---\n5.0\t0.6\t4.8\n"
	stars, _, err := ParseTSV(strings.NewReader(body), schema.XHIP(false))
	require.NoError(t, err)
	assert.Equal(t, 5, stars[0].LumClass)
}

func TestParseTSVReadsFirstTableOnly(t *testing.T) {
	body := "Lc\tB-V\tVMag\n---\t---\t---\n5\t0.6\t4.8\n\n#RESOURCE=other\nfoo\tbar\n--\t--\nx\ty\n"
	stars, _, err := ParseTSV(strings.NewReader(body), schema.XHIP(false))
	require.NoError(t, err)
	assert.Len(t, stars, 1)
}

func TestParseTSVErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"empty body", "", ErrMalformedResponse},
		{"comments only", "#INFO\tfoo\n#END\n", ErrMalformedResponse},
		{"missing column", "Lc\tB-V\n--\t--\n5\t0.6\n", ErrMalformedResponse},
		{"bad number", "Lc\tB-V\tVMag\n--\t--\t--\n5\tabc\t4.8\n", ErrMalformedResponse},
		{"fractional code", "Lc\tB-V\tVMag\n--\t--\t--\n5.5\t0.6\t4.8\n", ErrMalformedResponse},
		{"header only", "Lc\tB-V\tVMag\nmag\tmag\tmag\n--\t--\t--\n", ErrEmptyResult},
		{"query error", "#INFO\tQUERY_STATUS=\"ERROR\"\tunknown catalog\n", ErrDataUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseTSV(strings.NewReader(tt.body), schema.XHIP(false))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrDataUnavailable)
		})
	}
}
