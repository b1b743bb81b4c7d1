// Command preprocessor aggregates UIDAI enrolment CSV and ZIP exports into a
// dashboard-ready snapshot.
//
// It scans an input directory for *.csv and *.zip files, detects the grouping
// and metric columns from the first usable header row, folds every row into
// per-region totals and writes three artifacts: processed_data.json,
// load_data.html and region_summary.csv.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/config"
	apperrors "github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/errors"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/infrastructure"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("preprocessor", flag.ContinueOnError)
	dir := fs.String("dir", "", "directory scanned for *.csv and *.zip input files (default: input.dir from config)")
	out := fs.String("out", "", "directory receiving the generated artifacts (default: report.output_dir from config)")
	top := fs.Int("top", 0, "number of leading regions in the console summary (default: report.top_n from config)")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Printf("%s %s\n", config.AppName, config.AppVersion)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	// Flags override whatever the config file and environment decided.
	if *dir != "" {
		cfg.Input.Dir = *dir
	}
	if *out != "" {
		cfg.Report.OutputDir = *out
	}
	if *top > 0 {
		cfg.Report.TopN = *top
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())
	logger.InfoContext(ctx, "Starting preprocessor",
		slog.String("version", config.AppVersion),
		slog.String("input_dir", cfg.Input.Dir),
		slog.String("output_dir", cfg.Report.OutputDir))

	if _, err := pipeline.New(cfg, logger).Run(ctx); err != nil {
		logger.ErrorContext(ctx, "Run failed", slog.String("error", err.Error()))
		reportFailure(cfg, err)
		return 1
	}
	return 0
}

// reportFailure prints a human-readable failure message. The fatal conditions
// get actionable guidance; anything else just gets the error.
func reportFailure(cfg *config.Config, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoSources):
		fmt.Fprintf(os.Stderr, "No CSV or ZIP files found in %q.\n", cfg.Input.Dir)
		fmt.Fprintln(os.Stderr, "Please place your UIDAI data files there and run again.")
	case errors.Is(err, apperrors.ErrNoData):
		fmt.Fprintln(os.Stderr, "No usable data rows were found in the discovered files.")
		fmt.Fprintln(os.Stderr, "Check that the files have a header row and age/count columns.")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
