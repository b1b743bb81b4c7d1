// Package exporter is the report emitter: it turns the final sorted
// aggregate set into everything the run leaves behind.
//
// This package contains four main components:
//
// ConsoleReporter: human-readable progress and summary output (overall total,
// per-metric totals, top-N regions).
//
// SnapshotWriter: the durable JSON snapshot (metadata section plus the sorted
// data array) consumed by the dashboard.
//
// LoaderWriter: an HTML artifact that loads the snapshot into the browser's
// IndexedDB under a fixed dataset identifier.
//
// CSVWriter: a per-region summary CSV with UTF-8 BOM for spreadsheet
// compatibility.
//
// Example usage:
//
//	snap := exporter.BuildSnapshot(class, results, runID, len(sources), time.Now())
//
//	console := exporter.NewConsoleReporter(os.Stdout, 10)
//	console.Summary(snap)
//
//	if err := exporter.NewSnapshotWriter(logger).Write("processed_data.json", snap); err != nil {
//	    return err
//	}
package exporter
