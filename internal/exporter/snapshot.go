package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/pkg/contracts/domain"
)

// BuildSnapshot assembles the durable output document from the finalized
// aggregate view and run metadata.
func BuildSnapshot(class domain.Classification, results []domain.AggregateRecord,
	runID string, sourceFiles int, now time.Time) domain.Snapshot {
	return domain.Snapshot{
		Metadata: domain.SnapshotMetadata{
			MetricColumns: class.Metrics,
			Timestamp:     now.UnixMilli(),
			RunID:         runID,
			SourceFiles:   sourceFiles,
		},
		Data: results,
	}
}

// SnapshotWriter persists the snapshot document as indented JSON.
type SnapshotWriter struct {
	logger *slog.Logger
}

// NewSnapshotWriter creates a new snapshot writer. A nil logger falls back
// to slog.Default.
func NewSnapshotWriter(logger *slog.Logger) *SnapshotWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotWriter{logger: logger}
}

// Write serializes snap to path, creating parent directories as needed.
func (w *SnapshotWriter) Write(path string, snap domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	w.logger.Info("snapshot written",
		slog.String("path", path),
		slog.Int("regions", len(snap.Data)),
		slog.Int("size_bytes", len(data)))

	return nil
}
