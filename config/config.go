package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Catalog CatalogConfig
	Output  OutputConfig
	Plot    PlotConfig
	Logger  LoggerConfig
}

type CatalogConfig struct {
	Endpoint      string
	Timeout       time.Duration // 0 = wait for the server
	SpectralTypes bool
}

type OutputConfig struct {
	Format string // table, csv, json, pretty
}

type PlotConfig struct {
	Title      string
	Path       string
	Format     string // png, svg, pdf
	WidthIn    float64
	HeightIn   float64
	Open       bool
	CountsPath string // bar chart of class counts; empty = off
}

type LoggerConfig struct {
	Level  string
	Format string
}

// EnvPrefix is prepended to every environment override, e.g. HRD_PLOT_PATH.
const EnvPrefix = "HRD"

// Load reads defaults, then the optional config file at path, then
// HRD_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("catalog.endpoint", "https://vizier.cds.unistra.fr")
	v.SetDefault("catalog.timeout", "0s")
	v.SetDefault("catalog.spectral_types", true)
	v.SetDefault("output.format", "table")
	v.SetDefault("plot.title", "Hertzsprung-Russell Diagram")
	v.SetDefault("plot.path", "hr-diagram.png")
	v.SetDefault("plot.format", "")
	v.SetDefault("plot.width_in", 9.0)
	v.SetDefault("plot.height_in", 8.0)
	v.SetDefault("plot.open", true)
	v.SetDefault("plot.counts_path", "")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")

	// Env
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("catalog.timeout"))
	if err != nil {
		return nil, fmt.Errorf("catalog.timeout: %w", err)
	}

	cfg := &Config{
		Catalog: CatalogConfig{
			Endpoint:      v.GetString("catalog.endpoint"),
			Timeout:       timeout,
			SpectralTypes: v.GetBool("catalog.spectral_types"),
		},
		Output: OutputConfig{
			Format: strings.ToLower(v.GetString("output.format")),
		},
		Plot: PlotConfig{
			Title:      v.GetString("plot.title"),
			Path:       v.GetString("plot.path"),
			Format:     strings.ToLower(v.GetString("plot.format")),
			WidthIn:    v.GetFloat64("plot.width_in"),
			HeightIn:   v.GetFloat64("plot.height_in"),
			Open:       v.GetBool("plot.open"),
			CountsPath: v.GetString("plot.counts_path"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("logger.level"),
			Format: v.GetString("logger.format"),
		},
	}

	if cfg.Plot.Format == "" {
		cfg.Plot.Format = formatFromPath(cfg.Plot.Path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot honour.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "table", "csv", "json", "pretty":
	default:
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	switch c.Plot.Format {
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("plot.format: unknown format %q", c.Plot.Format)
	}
	if c.Plot.Path == "" {
		return fmt.Errorf("plot.path is required")
	}
	if c.Plot.WidthIn <= 0 || c.Plot.HeightIn <= 0 {
		return fmt.Errorf("plot size must be positive, got %gx%g in", c.Plot.WidthIn, c.Plot.HeightIn)
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("catalog.timeout must not be negative")
	}
	return nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return "svg"
	case ".pdf":
		return "pdf"
	default:
		return "png"
	}
}
