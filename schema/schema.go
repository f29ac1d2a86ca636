package schema

// ============================================================================
// SCHEMA — Describes the catalog columns the tool reads
// ============================================================================
// The catalog package builds its query and locates response columns from
// this schema. The engine record keys (lc, sptype, bv, vmag) are the Key
// fields; Column is the name VizieR uses.
// ============================================================================

// XHIP catalog identity.
const (
	XHIPSource      = "V/137D"
	XHIPName        = "XHIP"
	XHIPDescription = "XHIP: An Extended Hipparcos Compilation (Anderson & Francis, 2012)"
)

// Catalog column names.
const (
	ColumnLumClass   = "Lc"
	ColumnColorIndex = "B-V"
	ColumnAbsMag     = "VMag"
	ColumnSpType     = "SpType"
)

// Config describes the complete shape of a catalog extract.
type Config struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	Description string `json:"description,omitempty"`

	Dimensions []DimensionMeta `json:"dimensions"`
	Measures   []MeasureMeta   `json:"measures"`
}

// DimensionMeta describes a categorical column.
type DimensionMeta struct {
	Key         string   `json:"key"`
	Column      string   `json:"column"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description,omitempty"`
	Integer     bool     `json:"integer,omitempty"` // value is an integer code
	Values      []string `json:"values,omitempty"`  // recognised codes, in display order
}

// MeasureMeta describes a numeric column.
type MeasureMeta struct {
	Key         string `json:"key"`
	Column      string `json:"column"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`
}

// XHIP returns the fixed XHIP schema. The spectral-type column is included
// only when withSpectralTypes is set.
func XHIP(withSpectralTypes bool) Config {
	cfg := Config{
		Name:        XHIPName,
		Source:      XHIPSource,
		Description: XHIPDescription,
		Dimensions: []DimensionMeta{{
			Key:         "lc",
			Column:      ColumnLumClass,
			DisplayName: "Luminosity class",
			Description: "VizieR code: 1=I, 2=II, 3=III, 4=IV, 5=V, 6=VI",
			Integer:     true,
			Values:      []string{"1", "2", "3", "4", "5", "6"},
		}},
		Measures: []MeasureMeta{
			{Key: "bv", Column: ColumnColorIndex, DisplayName: "Colour index (B-V)", Unit: "mag"},
			{Key: "vmag", Column: ColumnAbsMag, DisplayName: "Absolute visual magnitude", Unit: "mag"},
		},
	}
	if withSpectralTypes {
		cfg.Dimensions = append(cfg.Dimensions, DimensionMeta{
			Key:         "sptype",
			Column:      ColumnSpType,
			DisplayName: "Spectral type",
			Description: "MK type; classified by leading letter O B A F G K M",
			Values:      []string{"O", "B", "A", "F", "G", "K", "M"},
		})
	}
	return cfg
}

// HasDimension reports whether the schema carries a dimension key.
func (c Config) HasDimension(key string) bool {
	for _, d := range c.Dimensions {
		if d.Key == key {
			return true
		}
	}
	return false
}

// Columns returns the catalog column names, dimensions first, in the order
// VizieR should return them.
func (c Config) Columns() []string {
	cols := make([]string, 0, len(c.Dimensions)+len(c.Measures))
	for _, d := range c.Dimensions {
		if d.Key == "lc" {
			cols = append(cols, d.Column)
		}
	}
	for _, m := range c.Measures {
		cols = append(cols, m.Column)
	}
	for _, d := range c.Dimensions {
		if d.Key != "lc" {
			cols = append(cols, d.Column)
		}
	}
	return cols
}

// DimensionKeys returns all dimension keys.
func (c Config) DimensionKeys() []string {
	keys := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// MeasureKeys returns all measure keys.
func (c Config) MeasureKeys() []string {
	keys := make([]string, len(c.Measures))
	for i, m := range c.Measures {
		keys[i] = m.Key
	}
	return keys
}
