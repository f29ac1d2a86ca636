package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spektr-org/hrdiagram/engine"
)

// ============================================================================
// CATALOG — VizieR boundary for star records
// ============================================================================
// The catalog package is the ONLY component that talks to the network.
// One query, one round trip, no retries: the query either yields rows or
// the run fails with ErrDataUnavailable.
// ============================================================================

// Errors. Every failure of Fetch matches ErrDataUnavailable via errors.Is.
var (
	ErrDataUnavailable    = errors.New("catalog data unavailable")
	ErrEmptyResult        = fmt.Errorf("%w: query returned no rows", ErrDataUnavailable)
	ErrMalformedResponse  = fmt.Errorf("%w: malformed response", ErrDataUnavailable)
	ErrUnsupportedCatalog = errors.New("unsupported catalog")
)

// Fetcher retrieves star records for a query.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]engine.Star, error)
}

// Config holds client configuration.
type Config struct {
	Endpoint   string        // VizieR base URL (empty = DefaultEndpoint)
	Timeout    time.Duration // 0 = block until the server answers
	UserAgent  string
	HTTPClient *http.Client // overrides Timeout when set
}

// DefaultEndpoint is the CDS VizieR service.
const DefaultEndpoint = "https://vizier.cds.unistra.fr"

// asuTSVPath is the VizieR ASU endpoint returning tab-separated values.
const asuTSVPath = "/viz-bin/asu-tsv"
