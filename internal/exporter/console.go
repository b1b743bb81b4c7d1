package exporter

import (
	"fmt"
	"io"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/config"
	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/pkg/contracts/domain"
)

const consoleRule = "============================================================"
const consoleDash = "------------------------------------------------------------"

// ConsoleReporter writes the human-readable run output. Structured logs are
// separate; this is the part a person actually reads.
type ConsoleReporter struct {
	out  io.Writer
	topN int
}

// NewConsoleReporter creates a console reporter writing to out, showing at
// most topN regions in the summary ranking.
func NewConsoleReporter(out io.Writer, topN int) *ConsoleReporter {
	return &ConsoleReporter{out: out, topN: topN}
}

// RunHeader prints the banner and the discovered source list.
func (c *ConsoleReporter) RunHeader(sources []string) {
	fmt.Fprintln(c.out, consoleRule)
	fmt.Fprintln(c.out, config.AppName)
	fmt.Fprintln(c.out, consoleRule)
	fmt.Fprintf(c.out, "\nFound %d data file(s):\n", len(sources))
	for _, name := range sources {
		fmt.Fprintf(c.out, "   - %s\n", name)
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, consoleDash)
	fmt.Fprintln(c.out, "Processing files...")
	fmt.Fprintln(c.out, consoleDash)
}

// SourceStart prints a progress line for one source or archive member.
func (c *ConsoleReporter) SourceStart(name string) {
	fmt.Fprintf(c.out, "Processing: %s\n", name)
}

// Classification prints the frozen column decision once it is made.
func (c *ConsoleReporter) Classification(class domain.Classification) {
	fmt.Fprintf(c.out, "  Grouping column: %s\n", class.GroupKey)
	fmt.Fprintf(c.out, "  Metric columns: %v\n", class.Metrics)
}

// SourceDone prints the processed-row count for one source.
func (c *ConsoleReporter) SourceDone(name string, rows int) {
	fmt.Fprintf(c.out, "  Processed %d rows\n", rows)
}

// SourceSkipped prints a skip diagnostic for one source.
func (c *ConsoleReporter) SourceSkipped(name, reason string) {
	fmt.Fprintf(c.out, "  Skipping %s: %s\n", name, reason)
}

// Summary prints the final report: overall total, region count, per-metric
// totals and the top-N regions by total.
func (c *ConsoleReporter) Summary(snap domain.Snapshot) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, consoleRule)
	fmt.Fprintln(c.out, "SUMMARY")
	fmt.Fprintln(c.out, consoleRule)

	var total float64
	for _, rec := range snap.Data {
		total += rec.Total
	}
	fmt.Fprintf(c.out, "\nTotal Enrolments: %s\n", formatCount(total))
	fmt.Fprintf(c.out, "Total States/Regions: %d\n", len(snap.Data))

	if len(snap.Metadata.MetricColumns) > 0 {
		fmt.Fprintln(c.out, "\nDetected Age/Count Columns:")
		for _, col := range snap.Metadata.MetricColumns {
			var colTotal float64
			for _, rec := range snap.Data {
				colTotal += rec.Breakdown[col]
			}
			fmt.Fprintf(c.out, "   - %s: %s\n", col, formatCount(colTotal))
		}
	}

	n := c.topN
	if n > len(snap.Data) {
		n = len(snap.Data)
	}
	fmt.Fprintf(c.out, "\nTop %d States by Enrolment:\n", c.topN)
	for i := 0; i < n; i++ {
		fmt.Fprintf(c.out, "   %d. %s: %s\n", i+1, snap.Data[i].Region, formatCount(snap.Data[i].Total))
	}
}

// ArtifactWritten prints the location of a persisted artifact.
func (c *ConsoleReporter) ArtifactWritten(label, path string) {
	fmt.Fprintf(c.out, "\nSaved %s to: %s\n", label, path)
}
