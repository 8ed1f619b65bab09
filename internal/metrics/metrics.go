// Package metrics records per-run spanning-forest statistics as Prometheus
// metrics on a private registry, for scraping or for a textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcome labels for RunsTotal.
const (
	ResultOK      = "ok"
	ResultNotSpan = "not_spanning"
	ResultError   = "error"
)

const (
	labelMethod     = "method"
	labelResult     = "result"
	durationBuckets = 12 // 100µs .. ~17s in powers of 3
)

// Recorder owns one registry and the ewmst metric families registered on it.
type Recorder struct {
	reg *prometheus.Registry

	RunsTotal        *prometheus.CounterVec
	EdgesAccepted    prometheus.Counter
	EdgesRejected    prometheus.Counter
	RunDuration      prometheus.Histogram
	ForestWeight     prometheus.Gauge
	ForestComponents prometheus.Gauge
}

// NewRecorder creates a Recorder over a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)

	return &Recorder{
		reg: reg,

		RunsTotal: auto.NewCounterVec(prometheus.CounterOpts{
			Name: "ewmst_runs_total",
			Help: "Total number of spanning-forest runs, labelled by method and result.",
		}, []string{labelMethod, labelResult}),

		EdgesAccepted: auto.NewCounter(prometheus.CounterOpts{
			Name: "ewmst_edges_accepted_total",
			Help: "Total number of edges accepted into a spanning forest.",
		}),

		EdgesRejected: auto.NewCounter(prometheus.CounterOpts{
			Name: "ewmst_edges_rejected_total",
			Help: "Total number of examined edges rejected because they closed a cycle.",
		}),

		RunDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ewmst_run_duration_seconds",
			Help:    "Wall time of one run: graph generation plus forest computation.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 3, durationBuckets),
		}),

		ForestWeight: auto.NewGauge(prometheus.GaugeOpts{
			Name: "ewmst_forest_weight",
			Help: "Total weight of the most recent spanning forest.",
		}),

		ForestComponents: auto.NewGauge(prometheus.GaugeOpts{
			Name: "ewmst_forest_components",
			Help: "Number of trees in the most recent spanning forest.",
		}),
	}
}

// Registry exposes the underlying registry, e.g. for promhttp or tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observation is the outcome of one run as seen by the recorder.
type Observation struct {
	Method     string
	Result     string
	Accepted   int
	Rejected   int
	Weight     float64
	Components int
	Elapsed    time.Duration
}

// Observe records one run. Forest gauges are only updated for runs that
// produced a forest (Result != ResultError).
func (r *Recorder) Observe(o Observation) {
	r.RunsTotal.WithLabelValues(o.Method, o.Result).Inc()
	r.RunDuration.Observe(o.Elapsed.Seconds())
	if o.Result == ResultError {
		return
	}
	r.EdgesAccepted.Add(float64(o.Accepted))
	r.EdgesRejected.Add(float64(o.Rejected))
	r.ForestWeight.Set(o.Weight)
	r.ForestComponents.Set(float64(o.Components))
}

// WriteTextfile writes every registered metric to path in the text
// exposition format, atomically (node-exporter textfile collector layout).
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
