package metrics

// Accumulator collects samples for a single run, keyed by metric name.
// Samples keep their insertion order within a metric; the order across
// metrics is fixed by Catalog. A run is strictly sequential, so the
// accumulator is not safe for concurrent use and does not need to be.
type Accumulator struct {
	samples map[string][]Sample
}

// NewAccumulator returns an empty accumulator. Every run starts from a
// fresh one; nothing carries over between runs.
func NewAccumulator() *Accumulator {
	return &Accumulator{samples: make(map[string][]Sample)}
}

// Add appends a sample under name. There is no deduplication: a target
// listed twice yields two samples.
func (a *Accumulator) Add(name string, s Sample) {
	a.samples[name] = append(a.samples[name], s)
}

// Samples returns the samples recorded for name this run, in insertion
// order. Nil when the metric received no samples.
func (a *Accumulator) Samples(name string) []Sample {
	return a.samples[name]
}
