package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusObserver counts events by type and severity in
// livedata_events_total.
type PrometheusObserver struct {
	events *prometheus.CounterVec
}

// NewPrometheusObserver creates the event counter and registers it with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "livedata",
			Name:      "events_total",
			Help:      "Events emitted by livedata values, validity maps and dispatchers.",
		},
		[]string{"type", "level"},
	)
	if err := reg.Register(events); err != nil {
		return nil, err
	}

	return &PrometheusObserver{events: events}, nil
}

func (o *PrometheusObserver) OnEvent(ctx context.Context, event Event) {
	o.events.WithLabelValues(string(event.Type), event.Level.String()).Inc()
}

// Collector exposes the underlying counter vector, mainly for tests.
func (o *PrometheusObserver) Collector() *prometheus.CounterVec {
	return o.events
}
