package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersCreated   prometheus.Counter
	TransferRejections *prometheus.CounterVec
	ContractFee        prometheus.Histogram

	// Outbox metrics
	OutboxEventsPublished prometheus.Counter
	OutboxPublishErrors   prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferhub_transfers_created_total",
			Help: "Total number of transfers created",
		}),
		TransferRejections: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transferhub_transfer_rejections_total",
				Help: "Total number of rejected transfer requests by reason",
			},
			[]string{"reason"},
		),
		ContractFee: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "transferhub_contract_fee",
			Help:    "Contract fees of created transfers",
			Buckets: []float64{10000, 50000, 100000, 500000, 1000000, 5000000, 10000000},
		}),

		OutboxEventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferhub_outbox_events_published_total",
			Help: "Total number of outbox events published",
		}),
		OutboxPublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "transferhub_outbox_publish_errors_total",
			Help: "Total number of outbox publish failures",
		}),
	}
}
