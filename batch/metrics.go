package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mazepath/search"
)

const metricsNamespace = "mazepath"

// Result label values of the jobs counter.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Metrics holds the batch instruments. A nil *Metrics records nothing.
type Metrics struct {
	Jobs     *prometheus.CounterVec
	Expanded *prometheus.HistogramVec
	Duration *prometheus.HistogramVec
	Skipped  prometheus.Counter
}

// NewMetrics registers the batch instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Jobs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "search_jobs_total",
			Help:      "Search jobs by strategy, connectivity and result",
		}, []string{"strategy", "connectivity", "result"}),
		Expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "search_expanded_cells",
			Help:      "Cells expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time per search",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"strategy"}),
		Skipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "mazes_skipped_total",
			Help:      "Malformed mazes skipped while reading input",
		}),
	}
}

func (m *Metrics) observe(o Outcome, conn string) {
	if m == nil {
		return
	}
	result := ResultFound
	switch {
	case o.Err != nil:
		result = ResultError
	case !o.Found:
		result = ResultNotFound
	}
	key := o.Strategy.Key()
	m.Jobs.WithLabelValues(key, conn, result).Inc()
	m.Expanded.WithLabelValues(key).Observe(float64(o.Expanded))
	m.Duration.WithLabelValues(key).Observe(o.Duration.Seconds())
}

func (m *Metrics) skipped(n int) {
	if m == nil || n == 0 {
		return
	}
	m.Skipped.Add(float64(n))
}

// ObserveSearch records a single search outside a Runner (e.g. the HTTP
// server), using the same instruments.
func (m *Metrics) ObserveSearch(s search.Strategy, conn string, found bool, expanded int, d time.Duration, err error) {
	m.observe(Outcome{Strategy: s, Found: found, Expanded: expanded, Duration: d, Err: err}, conn)
}
