// Package monitoring exposes session statistics on a Prometheus
// endpoint. The collector reads snapshots, so scrapes never block case
// generation for longer than one stats copy.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bad-antics/nullsec-fuzzmaster/fuzzer"
)

// SessionCollector implements prometheus.Collector over a fuzzing
// session's statistics snapshot.
type SessionCollector struct {
	session *fuzzer.Session

	totalCases    *prometheus.Desc
	crashes       *prometheus.Desc
	uniqueCrashes *prometheus.Desc
	timeouts      *prometheus.Desc
	coverageBits  *prometheus.Desc
	execPerSec    *prometheus.Desc
	runtimeSecs   *prometheus.Desc
}

// NewSessionCollector creates a collector for the given session.
func NewSessionCollector(s *fuzzer.Session) *SessionCollector {
	return &SessionCollector{
		session: s,
		totalCases: prometheus.NewDesc("fuzzmaster_cases_total",
			"Total fuzz cases generated", nil, nil),
		crashes: prometheus.NewDesc("fuzzmaster_crashes_total",
			"Total crashes recorded", nil, nil),
		uniqueCrashes: prometheus.NewDesc("fuzzmaster_unique_crashes_total",
			"Crashes with a previously unseen fingerprint", nil, nil),
		timeouts: prometheus.NewDesc("fuzzmaster_timeouts_total",
			"Crashes classified as timeouts", nil, nil),
		coverageBits: prometheus.NewDesc("fuzzmaster_coverage_bits",
			"Accumulated coverage bits reported by the executor", nil, nil),
		execPerSec: prometheus.NewDesc("fuzzmaster_exec_per_second",
			"Case generation rate", nil, nil),
		runtimeSecs: prometheus.NewDesc("fuzzmaster_runtime_seconds",
			"Session runtime", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *SessionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalCases
	ch <- c.crashes
	ch <- c.uniqueCrashes
	ch <- c.timeouts
	ch <- c.coverageBits
	ch <- c.execPerSec
	ch <- c.runtimeSecs
}

// Collect implements prometheus.Collector.
func (c *SessionCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.session.Stats()
	ch <- prometheus.MustNewConstMetric(c.totalCases, prometheus.CounterValue, float64(st.TotalCases))
	ch <- prometheus.MustNewConstMetric(c.crashes, prometheus.CounterValue, float64(st.Crashes))
	ch <- prometheus.MustNewConstMetric(c.uniqueCrashes, prometheus.CounterValue, float64(st.UniqueCrashes))
	ch <- prometheus.MustNewConstMetric(c.timeouts, prometheus.CounterValue, float64(st.Timeouts))
	ch <- prometheus.MustNewConstMetric(c.coverageBits, prometheus.GaugeValue, float64(st.CoverageBits))
	ch <- prometheus.MustNewConstMetric(c.execPerSec, prometheus.GaugeValue, st.ExecPerSec)
	ch <- prometheus.MustNewConstMetric(c.runtimeSecs, prometheus.GaugeValue, st.Runtime().Seconds())
}

// Server serves the /metrics endpoint for one session.
type Server struct {
	registry *prometheus.Registry
	srv      *http.Server
}

// NewServer builds a metrics server bound to addr (e.g. ":9090").
func NewServer(addr string, session *fuzzer.Session) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		NewSessionCollector(session),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &Server{
		registry: registry,
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Registry exposes the underlying registry for tests and extra metrics.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// Start serves until Close. It returns http.ErrServerClosed on clean
// shutdown, any other error means the listener failed.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Close shuts the metrics endpoint down.
func (s *Server) Close() error {
	return s.srv.Close()
}
