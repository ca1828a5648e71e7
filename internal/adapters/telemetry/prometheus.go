package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"brothertrans/backend/internal/ports"
)

// PrometheusTelemetry counts recorded events on a single counter vector keyed
// by event name. Attributes carry per-event detail for logs and are not
// turned into labels, which keeps the metric cardinality bounded.
type PrometheusTelemetry struct {
	events *prometheus.CounterVec
}

var _ ports.Telemetry = (*PrometheusTelemetry)(nil)

func NewPrometheusTelemetry(registerer prometheus.Registerer) (*PrometheusTelemetry, error) {
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "brothertrans",
		Name:      "events_total",
		Help:      "Count of bookkeeping core events by name.",
	}, []string{"event"})
	if err := registerer.Register(events); err != nil {
		return nil, err
	}
	return &PrometheusTelemetry{events: events}, nil
}

func (t *PrometheusTelemetry) Record(name string, _ map[string]string) {
	t.events.WithLabelValues(name).Inc()
}
