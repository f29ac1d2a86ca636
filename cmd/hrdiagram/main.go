package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/spektr-org/hrdiagram/catalog"
	"github.com/spektr-org/hrdiagram/config"
	"github.com/spektr-org/hrdiagram/engine"
	"github.com/spektr-org/hrdiagram/render"
)

// ============================================================================
// HRDIAGRAM CLI — XHIP star counts and an HR diagram in one run
// ============================================================================

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Path to a YAML/JSON/TOML config file")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `hrdiagram — Hertzsprung-Russell diagram of the XHIP catalogue

Usage:
  hrdiagram
  hrdiagram --config hrdiagram.yaml

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  HRD_CATALOG_ENDPOINT    VizieR base URL
  HRD_CATALOG_TIMEOUT     Request timeout, e.g. 30s (0 = none)
  HRD_OUTPUT_FORMAT       table, csv, json, pretty
  HRD_PLOT_PATH           Diagram file (png, svg, pdf)
  HRD_PLOT_OPEN           Open the diagram when done
  HRD_PLOT_COUNTS_PATH    Also write a bar chart of class counts
  HRD_LOGGER_LEVEL        debug, info, warn, error
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("hrdiagram %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}
	initLogger(cfg)

	ctx := context.Background()
	if cfg.Catalog.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Catalog.Timeout)
		defer cancel()
	}

	client := catalog.NewClient(catalog.Config{
		Endpoint: cfg.Catalog.Endpoint,
		Timeout:  cfg.Catalog.Timeout,
	})

	if err := run(ctx, cfg, client, os.Stdout); err != nil {
		log.Fatalf("hrdiagram: %v", err)
	}
}

// run fetches, classifies and renders. Nothing is written to out until
// the catalogue has been fetched in full.
func run(ctx context.Context, cfg *config.Config, fetcher catalog.Fetcher, out io.Writer) error {
	// ── Fetch ─────────────────────────────────────────────────────────────
	stars, err := fetcher.Fetch(ctx, catalog.XHIPQuery(cfg.Catalog.SpectralTypes))
	if err != nil {
		return fmt.Errorf("fetch catalogue: %w", err)
	}

	// ── Classify ──────────────────────────────────────────────────────────
	result, err := engine.Analyze(engine.NewStarView(stars),
		engine.WithSpectralTypes(cfg.Catalog.SpectralTypes),
		engine.WithTitle(cfg.Plot.Title),
	)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	log.Info("📊 " + result.Summary)

	// ── Tables ────────────────────────────────────────────────────────────
	for _, table := range []*engine.TableData{result.LuminosityTable, result.SpectralTable} {
		if err := render.WriteTable(out, table, cfg.Output.Format); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}

	// ── Diagram ───────────────────────────────────────────────────────────
	figCfg := render.FigureConfig{
		WidthIn:  cfg.Plot.WidthIn,
		HeightIn: cfg.Plot.HeightIn,
		Format:   cfg.Plot.Format,
	}
	err = render.WithFigure(figCfg, func(fig *render.Figure) error {
		if err := fig.DrawHRDiagram(result.Diagram); err != nil {
			return err
		}
		return fig.Save(cfg.Plot.Path)
	})
	if err != nil {
		return fmt.Errorf("draw diagram: %w", err)
	}
	log.WithField("path", cfg.Plot.Path).Info("📄 diagram written")

	if cfg.Plot.CountsPath != "" {
		counts := engine.BuildCountChart("Stars per luminosity class", "Lc", result.Buckets)
		if err := render.SaveCountChart(cfg.Plot.CountsPath, counts); err != nil {
			return fmt.Errorf("draw count chart: %w", err)
		}
		log.WithField("path", cfg.Plot.CountsPath).Info("📄 count chart written")
	}

	// ── Viewer ────────────────────────────────────────────────────────────
	if cfg.Plot.Open {
		if err := render.OpenViewer(cfg.Plot.Path); err != nil {
			log.Warnf("⚠️ could not open viewer: %v", err)
		}
	}
	return nil
}

func initLogger(cfg *config.Config) {
	log.SetOutput(os.Stderr)

	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
