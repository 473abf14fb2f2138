package bytestream

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RefillTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bytestream_refill_total",
			Help: "Total number of buffer fills executed against the source.",
		},
	)

	RefillBytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bytestream_refill_bytes_total",
			Help: "Total number of bytes pulled from the source by buffer fills.",
		},
	)

	RefillDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bytestream_refill_duration_seconds",
			Help:    "Duration of buffer fills in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16),
		},
	)
)

// RegisterMetrics registers all metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	metrics := []prometheus.Collector{
		RefillTotal,
		RefillBytesTotal,
		RefillDuration,
	}
	for _, metric := range metrics {
		if err := registerer.Register(metric); err != nil {
			return err
		}
	}
	return nil
}
