// Package metrics holds domain-level Prometheus collectors. HTTP request
// counting lives in the middleware package; this package covers invariant
// violations that need an out-of-band alerting path.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the registered collectors.
type Metrics struct {
	ConsistencyOrphans *prometheus.CounterVec
}

// New registers the collectors on reg and returns them.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ConsistencyOrphans: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "document_consistency_orphans_total",
				Help: "Storage objects left orphaned after a failed compensation, by operation.",
			},
			[]string{"operation"},
		),
	}
	if err := reg.Register(m.ConsistencyOrphans); err != nil {
		return nil, err
	}
	return m, nil
}
