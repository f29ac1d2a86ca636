package engine

import "errors"

// ============================================================================
// HRDIAGRAM ENGINE TYPES — Stellar classification
// ============================================================================
// Star records come from the catalog package; the engine only reads them
// through RecordView and produces render-ready output (tables, chart
// configs). It never performs I/O.
// ============================================================================

// Record keys for stars. Dimensions are strings, measures are float64.
const (
	DimLumClass    = "lc"     // luminosity class code, "1".."6"
	DimSpType      = "sptype" // MK spectral type, e.g. "G2V"
	MeasColorIndex = "bv"     // B-V colour index
	MeasAbsMag     = "vmag"   // absolute visual magnitude
)

// ErrColumnMismatch is returned when parallel columns are not index-aligned.
var ErrColumnMismatch = errors.New("catalog columns have different lengths")

// ErrNilView is returned by Analyze when no dataset is given.
var ErrNilView = errors.New("nil record view")

// ============================================================================
// STAR — one catalog row
// ============================================================================

// Star is one row of the catalog. SpType is empty when spectral types were
// not requested.
type Star struct {
	LumClass   int     `json:"lc"`
	ColorIndex float64 `json:"bv"`
	AbsMag     float64 `json:"vmag"`
	SpType     string  `json:"spType,omitempty"`
}

// Columns holds the same data as a []Star, as index-aligned sequences.
type Columns struct {
	LumClass   []int     `json:"lc"`
	ColorIndex []float64 `json:"bv"`
	AbsMag     []float64 `json:"vmag"`
	SpType     []string  `json:"spType,omitempty"` // nil when not requested
}

// ColumnsFromStars splits stars into parallel columns.
func ColumnsFromStars(stars []Star, withSpType bool) Columns {
	c := Columns{
		LumClass:   make([]int, len(stars)),
		ColorIndex: make([]float64, len(stars)),
		AbsMag:     make([]float64, len(stars)),
	}
	if withSpType {
		c.SpType = make([]string, len(stars))
	}
	for i, s := range stars {
		c.LumClass[i] = s.LumClass
		c.ColorIndex[i] = s.ColorIndex
		c.AbsMag[i] = s.AbsMag
		if withSpType {
			c.SpType[i] = s.SpType
		}
	}
	return c
}

// Len returns the number of rows.
func (c Columns) Len() int { return len(c.LumClass) }

// Stars zips the columns back into records.
func (c Columns) Stars() ([]Star, error) {
	n := len(c.LumClass)
	if len(c.ColorIndex) != n || len(c.AbsMag) != n || (c.SpType != nil && len(c.SpType) != n) {
		return nil, ErrColumnMismatch
	}
	stars := make([]Star, n)
	for i := 0; i < n; i++ {
		stars[i] = Star{LumClass: c.LumClass[i], ColorIndex: c.ColorIndex[i], AbsMag: c.AbsMag[i]}
		if c.SpType != nil {
			stars[i].SpType = c.SpType[i]
		}
	}
	return stars, nil
}

// ============================================================================
// RECORD — Generic data row
// ============================================================================

// Record is a single data row with string dimensions and numeric measures.
// Used for ad-hoc data (tests, hand-built datasets) through SliceView.
type Record struct {
	Dimensions map[string]string  `json:"dimensions"`
	Measures   map[string]float64 `json:"measures"`
}

// ============================================================================
// CATEGORIES
// ============================================================================

// Category is one fixed classification bucket definition.
type Category struct {
	Key   string `json:"key"`   // catalog code: "1".."6" or "O".."M"
	Short string `json:"short"` // table label: "I".."VI" or the letter
	Label string `json:"label"` // legend label
	Color string `json:"color"` // hex colour, "#RRGGBB"
}

// LuminosityClasses lists the six VizieR luminosity-class codes in order.
var LuminosityClasses = []Category{
	{Key: "1", Short: "I", Label: "Class I", Color: "#000000"},
	{Key: "2", Short: "II", Label: "Class II", Color: "#FFFF00"},
	{Key: "3", Short: "III", Label: "Class III", Color: "#008000"},
	{Key: "4", Short: "IV", Label: "Class IV", Color: "#FFA500"},
	{Key: "5", Short: "V", Label: "Class V", Color: "#0000FF"},
	{Key: "6", Short: "VI", Label: "Class VI", Color: "#FF0000"},
}

// SpectralTypes lists the MK spectral letters, hottest to coolest.
var SpectralTypes = []Category{
	{Key: "O", Short: "O", Label: "Type O", Color: "#4F46E5"},
	{Key: "B", Short: "B", Label: "Type B", Color: "#06B6D4"},
	{Key: "A", Short: "A", Label: "Type A", Color: "#10B981"},
	{Key: "F", Short: "F", Label: "Type F", Color: "#84CC16"},
	{Key: "G", Short: "G", Label: "Type G", Color: "#F59E0B"},
	{Key: "K", Short: "K", Label: "Type K", Color: "#F97316"},
	{Key: "M", Short: "M", Label: "Type M", Color: "#EF4444"},
}

// ============================================================================
// BUCKET — Intermediate classification result
// ============================================================================

// Bucket is one category with its member count. View is set for
// luminosity buckets only and holds the members as a sub view of the
// source (no copy).
type Bucket struct {
	Category
	Count int        `json:"count"`
	View  RecordView `json:"-"`
}

// Point is one (B-V, Mv) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Points materialises the bucket's (B-V, Mv) pairs as a new slice.
func (b Bucket) Points() []Point {
	if b.View == nil {
		return []Point{}
	}
	pts := make([]Point, b.View.Len())
	for i := range pts {
		pts[i] = Point{
			X: b.View.Measure(i, MeasColorIndex),
			Y: b.View.Measure(i, MeasAbsMag),
		}
	}
	return pts
}

// ============================================================================
// RESULT — Render-ready output
// ============================================================================

// Result is the outcome of Analyze.
type Result struct {
	Stars   int    `json:"stars"`
	Summary string `json:"summary"`

	LuminosityCounts []int `json:"luminosityCounts"`
	SpectralCounts   []int `json:"spectralCounts,omitempty"`

	LuminosityTable *TableData `json:"luminosityTable"`
	SpectralTable   *TableData `json:"spectralTable,omitempty"`

	Buckets []Bucket       `json:"buckets"`
	Diagram *ScatterConfig `json:"diagram"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ScatterConfig describes the HR diagram.
type ScatterConfig struct {
	Title      string          `json:"title"`
	XAxis      Axis            `json:"xAxis"`
	YAxis      Axis            `json:"yAxis"`
	Series     []ScatterSeries `json:"series"`
	ShowLegend bool            `json:"showLegend"`
	ShowGrid   bool            `json:"showGrid"`
	Annotation *Annotation     `json:"annotation,omitempty"`
}

// Axis describes one chart axis.
type Axis struct {
	Label    string  `json:"label"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Step     float64 `json:"step,omitempty"` // major tick spacing, 0 = renderer default
	Inverted bool    `json:"inverted,omitempty"`
}

// ScatterSeries is one point cloud.
type ScatterSeries struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// Annotation is a text box placed in data coordinates.
type Annotation struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// ChartConfig defines a bar chart.
type ChartConfig struct {
	ChartType string       `json:"chartType"`
	Title     string       `json:"title"`
	XAxis     string       `json:"xAxis,omitempty"`
	YAxis     string       `json:"yAxis,omitempty"`
	Data      []ChartPoint `json:"data"`
	ShowGrid  bool         `json:"showGrid"`
}

// ChartPoint represents a single bar.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
