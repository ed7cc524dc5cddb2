package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels for jobseq_solves_total.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
)

// Metrics holds the solver collectors on a private registry, so several
// servers (tests) can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	solves   *prometheus.CounterVec
	jobs     prometheus.Histogram
	profit   prometheus.Counter
	duration prometheus.Histogram
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobseq_solves_total",
			Help: "Job sets submitted for sequencing, by result.",
		}, []string{"result"}),
		jobs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jobseq_solve_jobs",
			Help:    "Number of jobs per solved job set.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		profit: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobseq_solve_profit_total",
			Help: "Sum of total profit over all solved job sets.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jobseq_solve_duration_seconds",
			Help:    "Time spent sequencing a job set.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	m.registry.MustRegister(
		m.solves, m.jobs, m.profit, m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	// Pre-create both series so they are exported as zero.
	m.solves.WithLabelValues(ResultOK)
	m.solves.WithLabelValues(ResultInvalid)
	return m
}

// ObserveSolve records a successful solve.
func (m *Metrics) ObserveSolve(jobs, profit int, elapsed time.Duration) {
	m.solves.WithLabelValues(ResultOK).Inc()
	m.jobs.Observe(float64(jobs))
	if profit > 0 {
		m.profit.Add(float64(profit))
	}
	m.duration.Observe(elapsed.Seconds())
}

// ObserveInvalid records a job set rejected by validation.
func (m *Metrics) ObserveInvalid() {
	m.solves.WithLabelValues(ResultInvalid).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
