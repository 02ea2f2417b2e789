package model

import "github.com/rshade/daccost/internal/numeric"

// Record is an ordered mapping from metric name to computed value. Reading a
// key that was never computed yields NaN, never zero, so a missing dependency
// surfaces as a propagated NaN in the report instead of a plausible number.
//
// A Record is produced fresh by each Compute call; blocks never mutate a
// collaborator's record, they read it and merge explicitly.
type Record[T numeric.Number[T]] struct {
	order  []string
	values map[string]T
}

// NewRecord returns an empty record.
func NewRecord[T numeric.Number[T]]() *Record[T] {
	return &Record[T]{values: make(map[string]T)}
}

// Get returns the named metric, or NaN if it has not been computed.
func (r *Record[T]) Get(key string) T {
	if v, ok := r.values[key]; ok {
		return v
	}
	return numeric.NaN[T]()
}

// Has reports whether the named metric has been computed.
func (r *Record[T]) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Set stores a metric, preserving first-insertion order for reporting.
func (r *Record[T]) Set(key string, v T) {
	if _, ok := r.values[key]; !ok {
		r.order = append(r.order, key)
	}
	r.values[key] = v
}

// Merge copies every metric of other into r, in other's order.
func (r *Record[T]) Merge(other *Record[T]) {
	for _, k := range other.order {
		r.Set(k, other.values[k])
	}
}

// Len returns the number of computed metrics.
func (r *Record[T]) Len() int { return len(r.values) }

// Metric is one (name, value) row of a report.
type Metric[T numeric.Number[T]] struct {
	Name  string
	Value T
}

// Items returns the record as a flat table in insertion order.
func (r *Record[T]) Items() []Metric[T] {
	items := make([]Metric[T], 0, len(r.order))
	for _, k := range r.order {
		items = append(items, Metric[T]{Name: k, Value: r.values[k]})
	}
	return items
}
