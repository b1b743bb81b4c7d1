package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/pkg/contracts/domain"
)

// CSVWriter emits the per-region summary CSV.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer. A nil logger falls back to
// slog.Default.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteSummary writes one row per region in the given (already sorted)
// order, with columns Region, Total, then one column per metric. The file
// starts with a UTF-8 BOM so spreadsheet tools pick up the encoding.
func (w *CSVWriter) WriteSummary(path string, metrics []string, records []domain.AggregateRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary CSV: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := append([]string{"Region", "Total"}, metrics...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		row := make([]string, 0, len(header))
		row = append(row, rec.Region, formatFloat(rec.Total))
		for _, metric := range metrics {
			row = append(row, formatFloat(rec.Breakdown[metric]))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush summary CSV: %w", err)
	}

	w.logger.Info("summary CSV written",
		slog.String("path", path),
		slog.Int("regions", len(records)))

	return nil
}
