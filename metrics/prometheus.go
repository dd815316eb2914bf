// Package metrics provides a Prometheus implementation of tether.MetricsProvider.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zoobzio/tether"
)

// Prometheus records loader activity in Prometheus collectors.
// Create one per loader; loaders with distinct names can share a registry.
type Prometheus struct {
	stateChanges   *prometheus.CounterVec
	reloadSuccess  prometheus.Counter
	reloadFailure  *prometheus.CounterVec
	reloadDuration prometheus.Histogram
	events         prometheus.Counter
	watchStops     *prometheus.CounterVec
}

// New creates the collectors for the loader named loader and registers them on reg.
// The collectors are namespaced "tether" and carry a constant "loader" label.
func New(reg prometheus.Registerer, loader string) (*Prometheus, error) {
	labels := prometheus.Labels{"loader": loader}

	p := &Prometheus{
		stateChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "tether",
			Name:        "state_changes_total",
			Help:        "Number of loader state transitions.",
			ConstLabels: labels,
		}, []string{"from", "to"}),

		reloadSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "tether",
			Name:        "reload_success_total",
			Help:        "Number of successful loads.",
			ConstLabels: labels,
		}),

		reloadFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "tether",
			Name:        "reload_failure_total",
			Help:        "Number of failed loads by stage.",
			ConstLabels: labels,
		}, []string{"stage"}),

		reloadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "tether",
			Name:        "reload_duration_seconds",
			Help:        "Time spent reading and decoding a source.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),

		events: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "tether",
			Name:        "watch_events_total",
			Help:        "Number of filesystem events for watched files.",
			ConstLabels: labels,
		}),

		watchStops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "tether",
			Name:        "watch_stops_total",
			Help:        "Number of watches stopped by reason.",
			ConstLabels: labels,
		}, []string{"reason"}),
	}

	for _, c := range []prometheus.Collector{
		p.stateChanges, p.reloadSuccess, p.reloadFailure,
		p.reloadDuration, p.events, p.watchStops,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register tether metrics for %q: %w", loader, err)
		}
	}

	return p, nil
}

// OnStateChange counts a state transition.
func (p *Prometheus) OnStateChange(from, to tether.State) {
	p.stateChanges.WithLabelValues(from.String(), to.String()).Inc()
}

// OnReloadSuccess counts a successful load and observes its duration.
func (p *Prometheus) OnReloadSuccess(d time.Duration) {
	p.reloadSuccess.Inc()
	p.reloadDuration.Observe(d.Seconds())
}

// OnReloadFailure counts a failed load and observes its duration.
func (p *Prometheus) OnReloadFailure(stage string, d time.Duration) {
	p.reloadFailure.WithLabelValues(stage).Inc()
	p.reloadDuration.Observe(d.Seconds())
}

// OnEventReceived counts a filesystem event.
func (p *Prometheus) OnEventReceived() {
	p.events.Inc()
}

// OnWatchStopped counts a stopped watch.
func (p *Prometheus) OnWatchStopped(reason tether.StopReason) {
	p.watchStops.WithLabelValues(reason.String()).Inc()
}

var _ tether.MetricsProvider = (*Prometheus)(nil)
