// Package pipeline sequences one preprocessing run.
//
// A run moves through five stages in strict order with no branching back:
//
//	Discover -> Classify -> Aggregate -> Finalize -> Report & Persist
//
// Discovery enumerates the candidate sources; the first header-bearing table
// freezes the column classification for the whole run; every row of every
// source is folded under that frozen classification; the finalized view is
// sorted and handed to the report emitters.
//
// The run is strictly single-threaded: sources are processed one at a time,
// rows in document order. Failures are isolated per source, meaning a bad
// file is logged and skipped rather than escalated. Only two conditions are
// fatal: no sources discovered, and no aggregate records produced.
package pipeline
