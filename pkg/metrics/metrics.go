// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"context"
	"strconv"

	"vidtube.com/pkg/toggle"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	TogglesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vidtube",
		Name:      "toggles_total",
		Help:      "Engagement toggles by target kind and resulting state.",
	}, []string{"kind", "active"})

	CleanupFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vidtube",
		Name:      "cleanup_failures_total",
		Help:      "Cascade cleanup steps that failed after a delete.",
	}, []string{"step"})

	FlowBlockedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vidtube",
		Name:      "flow_blocked_total",
		Help:      "Requests rejected by flow control.",
	}, []string{"resource"})
)

func init() {
	prometheus.MustRegister(TogglesTotal, CleanupFailuresTotal, FlowBlockedTotal)
}

// ToggleObserver counts every completed toggle.
type ToggleObserver struct{}

func (ToggleObserver) Toggled(_ context.Context, ev toggle.Event) error {
	TogglesTotal.WithLabelValues(string(ev.Kind), strconv.FormatBool(ev.Active)).Inc()
	return nil
}

func CleanupFailed(step string) {
	CleanupFailuresTotal.WithLabelValues(step).Inc()
}
