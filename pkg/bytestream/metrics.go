package bytestream

import (
	"github.com/prometheus/client_golang/prometheus"

	intbytestream "github.com/backbone81/byte-stream/internal/bytestream"
)

// RegisterMetrics registers all metrics collectors with the given prometheus registerer.
func RegisterMetrics(registerer prometheus.Registerer) error {
	return intbytestream.RegisterMetrics(registerer)
}
