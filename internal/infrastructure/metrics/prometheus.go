package metrics

import (
	"net/http"
	"strconv"
	"time"

	"watcher/internal/application/port/output"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ output.MetricsPort = (*Recorder)(nil)

// Recorder owns its registry so tests and multiple containers do not collide on the
// global default one.
type Recorder struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	actions  *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "watcher",
			Name:      "moderation_runs_total",
			Help:      "Moderation runs by outcome and failing stage.",
		}, []string{"outcome", "stage"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "watcher",
			Name:      "moderation_duration_seconds",
			Help:      "Wall time of a moderation run.",
			Buckets:   []float64{5, 15, 30, 60, 120, 300, 600},
		}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "watcher",
			Name:      "actions_total",
			Help:      "Agent actions dispatched, by name and success.",
		}, []string{"action", "success"}),
	}
	r.registry.MustRegister(r.runs, r.duration, r.actions)
	return r
}

func (r *Recorder) ObserveRun(outcome, stage string, duration time.Duration) {
	r.runs.WithLabelValues(outcome, stage).Inc()
	r.duration.Observe(duration.Seconds())
}

func (r *Recorder) ObserveAction(name string, success bool) {
	r.actions.WithLabelValues(name, strconv.FormatBool(success)).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
