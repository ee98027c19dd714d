package store

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// opsTotal tracks store operations by type
	opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zapmock",
		Subsystem: "store",
		Name:      "ops_total",
		Help:      "Total number of store operations",
	}, []string{"op"}) // op: "put", "get", "stat", "remove", "list"

	// bytesWrittenTotal tracks total payload bytes accepted by puts
	bytesWrittenTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "zapmock",
		Subsystem: "store",
		Name:      "bytes_written_total",
		Help:      "Total payload bytes written",
	})
)

// RegisterMetrics registers the store metrics with the given registerer.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{opsTotal, bytesWrittenTotal} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}
