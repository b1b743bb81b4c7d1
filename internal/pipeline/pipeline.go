package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/config"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/dataprocessing"
	apperrors "github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/errors"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/exporter"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/files"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/infrastructure"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/pkg/contracts/domain"
)

// SourceWalker is the file-system boundary the pipeline consumes.
type SourceWalker interface {
	Discover(dir string) ([]files.Source, error)
	VisitTables(ctx context.Context, src files.Source, fn files.TableVisit) error
}

// Pipeline runs the whole preprocessing sequence for one invocation.
type Pipeline struct {
	cfg      *config.Config
	logger   *slog.Logger
	walker   SourceWalker
	console  *exporter.ConsoleReporter
	snapshot *exporter.SnapshotWriter
	loader   *exporter.LoaderWriter
	summary  *exporter.CSVWriter
	now      func() time.Time
}

// Option customizes a Pipeline, mostly for tests.
type Option func(*Pipeline)

// WithConsoleOutput redirects the human-readable report away from stdout.
func WithConsoleOutput(out io.Writer) Option {
	return func(p *Pipeline) {
		p.console = exporter.NewConsoleReporter(out, p.cfg.Report.TopN)
	}
}

// WithWalker substitutes the source walker.
func WithWalker(w SourceWalker) Option {
	return func(p *Pipeline) {
		p.walker = w
	}
}

// WithClock substitutes the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a pipeline wired to the real file system and stdout. A nil
// logger falls back to slog.Default.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		cfg:      cfg,
		logger:   logger,
		walker:   files.NewWalker(logger),
		console:  exporter.NewConsoleReporter(os.Stdout, cfg.Report.TopN),
		snapshot: exporter.NewSnapshotWriter(logger),
		loader:   exporter.NewLoaderWriter(logger),
		summary:  exporter.NewCSVWriter(logger),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one full preprocessing run and returns the snapshot it
// persisted. The two fatal conditions surface as ErrNoSources and ErrNoData;
// everything else that can go wrong with an individual source is logged,
// reported on the console and skipped.
func (p *Pipeline) Run(ctx context.Context) (*domain.Snapshot, error) {
	start := p.now()

	sources, err := p.walker.Discover(p.cfg.Input.Dir)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeNoSources, "source discovery failed")
	}
	if len(sources) == 0 {
		return nil, apperrors.ErrNoSources
	}

	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.Name
	}
	p.console.RunHeader(names)
	p.logger.InfoContext(ctx, "run started",
		slog.String("input_dir", p.cfg.Input.Dir),
		slog.Int("sources", len(sources)))

	// The classification freezes on the first header-bearing table and the
	// aggregator carries it for the rest of the run. Until then agg is nil.
	var agg *dataprocessing.Aggregator

	for _, src := range sources {
		err := p.walker.VisitTables(ctx, src, func(name string, table *files.Table) error {
			agg = p.processTable(ctx, name, table, agg)
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			reason := "unreadable source"
			if errors.Is(err, files.ErrNoHeader) {
				reason = "no header row"
			}
			p.console.SourceSkipped(src.Name, reason)
			p.logger.WarnContext(ctx, "skipping source",
				slog.String("source", src.Name),
				slog.String("error", err.Error()))
		}
	}

	if agg == nil || agg.Len() == 0 {
		return nil, apperrors.ErrNoData
	}

	runID := infrastructure.GetRunID(ctx)
	if runID == "" {
		runID = infrastructure.NewRunID()
	}
	snap := exporter.BuildSnapshot(agg.Classification(), agg.Results(), runID, len(sources), p.now())

	p.console.Summary(snap)

	snapshotPath := filepath.Join(p.cfg.Report.OutputDir, p.cfg.Report.SnapshotFile)
	if err := p.snapshot.Write(snapshotPath, snap); err != nil {
		return nil, err
	}
	p.console.ArtifactWritten("processed data", snapshotPath)

	loaderPath := filepath.Join(p.cfg.Report.OutputDir, p.cfg.Report.LoaderFile)
	if err := p.loader.Write(loaderPath, snap); err != nil {
		return nil, err
	}
	p.console.ArtifactWritten("dashboard loader", loaderPath)

	summaryPath := filepath.Join(p.cfg.Report.OutputDir, p.cfg.Report.SummaryCSV)
	if err := p.summary.WriteSummary(summaryPath, snap.Metadata.MetricColumns, snap.Data); err != nil {
		return nil, err
	}
	p.console.ArtifactWritten("region summary", summaryPath)

	p.logger.InfoContext(ctx, "run complete",
		slog.Int("rows", agg.Rows()),
		slog.Int("regions", len(snap.Data)),
		slog.Duration("elapsed", p.now().Sub(start)))

	return &snap, nil
}

// processTable folds one table into the run. The first table seen freezes the
// classification; tables arriving after a classification with no metric
// columns are reported as skipped but still counted against the run.
func (p *Pipeline) processTable(ctx context.Context, name string, table *files.Table, agg *dataprocessing.Aggregator) *dataprocessing.Aggregator {
	p.console.SourceStart(name)

	if agg == nil {
		class := dataprocessing.DetectColumns(table.Headers())
		agg = dataprocessing.NewAggregator(class)
		p.console.Classification(class)
		p.logger.InfoContext(ctx, "classification frozen",
			slog.String("source", name),
			slog.String("group_key", class.GroupKey),
			slog.Any("metrics", class.Metrics))
	}

	if !agg.Classification().HasMetrics() {
		p.console.SourceSkipped(name, "no metric columns detected")
		p.logger.WarnContext(ctx, "skipping table without metric columns",
			slog.String("source", name))
		return agg
	}

	before := agg.Rows()
	for {
		row, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed record mid-file: keep what was already folded and
			// stop reading this table.
			p.logger.WarnContext(ctx, "stopping table on malformed record",
				slog.String("source", name),
				slog.String("error", err.Error()))
			break
		}
		agg.Add(row)
	}
	p.console.SourceDone(name, agg.Rows()-before)

	return agg
}
