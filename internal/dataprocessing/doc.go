// Package dataprocessing implements the preprocessing core: deciding what the
// columns of an unknown-schema table mean and folding its rows into per-region
// aggregates.
//
// # Architecture
//
// The package is organized into three components:
//
// 1. Detector: classifies a header row into a grouping key and metric columns
// 2. Number parser: normalizes heterogeneous numeric text into float64
// 3. Aggregator: folds rows into per-region totals and per-metric breakdowns
//
// # Usage
//
//	class := dataprocessing.DetectColumns(headers)
//	if !class.HasMetrics() {
//	    // source carries nothing summable, skip it
//	}
//	agg := dataprocessing.NewAggregator(class)
//	for _, row := range rows {
//	    agg.Add(row)
//	}
//	results := agg.Results() // sorted by total descending
//
// # Detection Rules
//
// Detection is an ordered rule list evaluated top to bottom against
// lower-cased headers, first match wins. Classification happens exactly once
// per run: the caller computes it from the first header-bearing source and
// reuses it for every subsequent source, even when later headers differ.
// Cells for columns a later file does not have simply contribute zero.
//
// # Error Handling
//
// The core never rejects a row. Malformed numeric cells parse to zero and an
// empty grouping cell falls back to the "Unknown" bucket, so the worst case
// for bad input is a zero contribution, never an aborted run.
package dataprocessing
