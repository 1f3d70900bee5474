package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the explorer.
type Metrics struct {
	DatasetRows        prometheus.Gauge
	DatasetRowsDropped prometheus.Gauge
	DatasetLoaded      prometheus.Gauge // 1 when the load succeeded, 0 when degraded to empty

	FilterRequests      prometheus.Counter
	EmptyResults        prometheus.Counter
	ViewRenders         *prometheus.CounterVec // label: section
	FeedbackSubmissions prometheus.Counter
	RequestDuration     prometheus.Histogram
}

// NewMetrics creates and registers all explorer metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nuclear_explorer",
			Name:      "dataset_rows",
			Help:      "Valid records in the loaded dataset.",
		}),
		DatasetRowsDropped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nuclear_explorer",
			Name:      "dataset_rows_dropped",
			Help:      "Source rows excluded at load time for missing required fields.",
		}),
		DatasetLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nuclear_explorer",
			Name:      "dataset_loaded",
			Help:      "1 when the dataset loaded successfully, 0 when serving an empty fallback.",
		}),
		FilterRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nuclear_explorer",
			Name:      "filter_requests_total",
			Help:      "Total filter pipeline runs.",
		}),
		EmptyResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nuclear_explorer",
			Name:      "empty_results_total",
			Help:      "Filter runs that matched no records.",
		}),
		ViewRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nuclear_explorer",
			Name:      "view_renders_total",
			Help:      "View renders by section.",
		}, []string{"section"}),
		FeedbackSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nuclear_explorer",
			Name:      "feedback_submissions_total",
			Help:      "Accepted feedback submissions.",
		}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nuclear_explorer",
			Name:      "request_duration_seconds",
			Help:      "Duration of one filter-summarize-render pass.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}

	prometheus.MustRegister(
		m.DatasetRows,
		m.DatasetRowsDropped,
		m.DatasetLoaded,
		m.FilterRequests,
		m.EmptyResults,
		m.ViewRenders,
		m.FeedbackSubmissions,
		m.RequestDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DatasetRows:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "nuclear_explorer", Name: "dataset_rows"}),
		DatasetRowsDropped:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "nuclear_explorer", Name: "dataset_rows_dropped"}),
		DatasetLoaded:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "nuclear_explorer", Name: "dataset_loaded"}),
		FilterRequests:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "nuclear_explorer", Name: "filter_requests_total"}),
		EmptyResults:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "nuclear_explorer", Name: "empty_results_total"}),
		ViewRenders:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "nuclear_explorer", Name: "view_renders_total"}, []string{"section"}),
		FeedbackSubmissions: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "nuclear_explorer", Name: "feedback_submissions_total"}),
		RequestDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "nuclear_explorer", Name: "request_duration_seconds"}),
	}
}
