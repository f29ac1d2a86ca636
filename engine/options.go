package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Analyze()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	SpectralTypes bool   // classify the spectral-type axis too
	Title         string // diagram title
}

// WithSpectralTypes enables or disables the spectral-type counts.
func WithSpectralTypes(enabled bool) Option {
	return func(c *config) {
		c.SpectralTypes = enabled
	}
}

// WithTitle sets the HR diagram title and annotation text.
func WithTitle(title string) Option {
	return func(c *config) {
		c.Title = title
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		SpectralTypes: true,
		Title:         DefaultTitle,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
