package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spektr-org/hrdiagram/schema"
)

// Non-null constraint in VizieR column-filter syntax.
const notNull = "!="

// Query is a filtered catalog request.
type Query struct {
	Source   string            // catalog identifier, e.g. "V/137D"
	Columns  []string          // required output columns, in order
	Filters  map[string]string // column → constraint
	RowLimit int               // <0 = unlimited
	Schema   schema.Config     // used to map response columns to records
}

// XHIPQuery builds the fixed XHIP query: luminosity class, B-V, absolute
// magnitude and optionally spectral type, each required to be non-null,
// all matching rows.
func XHIPQuery(withSpectralTypes bool) Query {
	sch := schema.XHIP(withSpectralTypes)
	cols := sch.Columns()

	filters := make(map[string]string, len(cols))
	for _, c := range cols {
		filters[c] = notNull
	}

	return Query{
		Source:   sch.Source,
		Columns:  cols,
		Filters:  filters,
		RowLimit: -1,
		Schema:   sch,
	}
}

// Validate checks the query targets the supported catalog.
func (q Query) Validate() error {
	if q.Source != schema.XHIPSource {
		return fmt.Errorf("%w: %q", ErrUnsupportedCatalog, q.Source)
	}
	if len(q.Columns) == 0 {
		return fmt.Errorf("query for %s has no columns", q.Source)
	}
	return nil
}

// Values encodes the query as VizieR ASU parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("-source", q.Source)

	v.Set("-out", strings.Join(q.Columns, ","))

	if q.RowLimit < 0 {
		v.Set("-out.max", "unlimited")
	} else {
		v.Set("-out.max", strconv.Itoa(q.RowLimit))
	}

	for col, constraint := range q.Filters {
		v.Set(col, constraint)
	}
	return v
}

// WantsSpectralTypes reports whether the query asks for the spectral-type column.
func (q Query) WantsSpectralTypes() bool {
	return q.Schema.HasDimension("sptype")
}
