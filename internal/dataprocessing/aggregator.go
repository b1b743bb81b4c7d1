package dataprocessing

import (
	"sort"
	"strings"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/pkg/contracts/domain"
)

// Aggregator folds rows into per-region aggregate records under a frozen
// column classification. Records are created lazily on the first row of each
// region and never deleted; insertion order is retained so equal totals sort
// stably in the final view.
//
// The aggregator is single-threaded by design: one run, one pass, one
// goroutine.
type Aggregator struct {
	class   domain.Classification
	records map[string]*domain.AggregateRecord
	order   []string
	rows    int
}

// NewAggregator creates an aggregator bound to a frozen classification.
func NewAggregator(class domain.Classification) *Aggregator {
	return &Aggregator{
		class:   class,
		records: make(map[string]*domain.AggregateRecord),
	}
}

// Classification returns the frozen classification the aggregator was built
// with.
func (a *Aggregator) Classification() domain.Classification {
	return a.class
}

// Add folds one data row into the aggregate set. Rows are never rejected:
// a missing or empty grouping cell lands in the "Unknown" bucket and metric
// cells that are absent or unparseable contribute zero.
func (a *Aggregator) Add(row map[string]string) {
	region := strings.TrimSpace(row[a.class.GroupKey])
	if region == "" {
		region = domain.UnknownRegion
	}

	rec, ok := a.records[region]
	if !ok {
		rec = &domain.AggregateRecord{
			Region:    region,
			Breakdown: make(map[string]float64, len(a.class.Metrics)),
		}
		for _, col := range a.class.Metrics {
			rec.Breakdown[col] = 0
		}
		a.records[region] = rec
		a.order = append(a.order, region)
	}

	for _, col := range a.class.Metrics {
		v := ParseNumber(row[col])
		rec.Total += v
		rec.Breakdown[col] += v
	}
	a.rows++
}

// Len returns the number of distinct regions seen so far.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Rows returns the number of rows folded so far.
func (a *Aggregator) Rows() int {
	return a.rows
}

// Results returns the finalized view: a copy of every aggregate record sorted
// by total descending, ties broken by first-seen order. The copies share no
// state with the aggregator, so the view stays stable however it is consumed.
func (a *Aggregator) Results() []domain.AggregateRecord {
	results := make([]domain.AggregateRecord, 0, len(a.order))
	for _, region := range a.order {
		rec := a.records[region]
		breakdown := make(map[string]float64, len(rec.Breakdown))
		for col, v := range rec.Breakdown {
			breakdown[col] = v
		}
		results = append(results, domain.AggregateRecord{
			Region:    rec.Region,
			Total:     rec.Total,
			Breakdown: breakdown,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Total > results[j].Total
	})

	return results
}
