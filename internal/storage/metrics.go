package storage

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the asset pipeline counters.
type Metrics struct {
	Uploads       *prometheus.CounterVec
	Retries       prometheus.Counter
	OrphanDeletes *prometheus.CounterVec
}

// NewMetrics creates and registers the asset pipeline counters.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asset_uploads_total",
				Help: "Total asset upload attempts by final outcome.",
			},
			[]string{"outcome"},
		),
		Retries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "asset_upload_retries_total",
				Help: "Total transient upload failures that were retried.",
			},
		),
		OrphanDeletes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asset_orphan_deletes_total",
				Help: "Total reconciliation delete calls by outcome.",
			},
			[]string{"outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.Uploads, m.Retries, m.OrphanDeletes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
