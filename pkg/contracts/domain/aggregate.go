package domain

// UnknownRegion is the bucket used for rows whose grouping cell is empty or
// missing. It is a display value, so it stays capitalized.
const UnknownRegion = "Unknown"

// Classification is the frozen column decision for a run: exactly one grouping
// key and zero or more metric columns, chosen once from the first
// header-bearing source and reused verbatim for every subsequent source.
type Classification struct {
	GroupKey string   `json:"group_key"`
	Metrics  []string `json:"metrics"`
}

// HasMetrics reports whether the classification found at least one summable
// column. Aggregation without metrics is meaningless and sources are skipped.
func (c Classification) HasMetrics() bool {
	return len(c.Metrics) > 0
}

// AggregateRecord holds the running totals for one region bucket.
// Total always equals the sum of the Breakdown values.
//
// JSON field names match the snapshot document consumed by the dashboard
// ("state" for the bucket name regardless of which header was chosen).
type AggregateRecord struct {
	Region    string             `json:"state"`
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// SnapshotMetadata describes one preprocessing run.
type SnapshotMetadata struct {
	// MetricColumns is the ordered metric column list, serialized as
	// "ageCols" for compatibility with the dashboard loader.
	MetricColumns []string `json:"ageCols"`
	// Timestamp is the run time in epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
	// RunID identifies the run across logs and artifacts.
	RunID string `json:"run_id,omitempty"`
	// SourceFiles is the number of discovered input files.
	SourceFiles int `json:"source_files,omitempty"`
}

// Snapshot is the durable output document: run metadata plus the aggregate
// records sorted by total descending.
type Snapshot struct {
	Metadata SnapshotMetadata  `json:"metadata"`
	Data     []AggregateRecord `json:"data"`
}
