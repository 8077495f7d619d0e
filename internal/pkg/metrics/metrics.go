package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RPCRequests counts JSON-RPC calls by network, method and outcome.
	RPCRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deployer",
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "JSON-RPC requests sent to network endpoints.",
	}, []string{"network", "method", "status"})

	// RPCDuration observes JSON-RPC call latency.
	RPCDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "deployer",
		Subsystem: "rpc",
		Name:      "request_duration_seconds",
		Help:      "JSON-RPC request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "method"})

	// HTTPRequests counts introspection API requests by route and status code.
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "deployer",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Introspection API requests.",
	}, []string{"route", "code"})

	registerOnce sync.Once
)

// MustRegisterMetrics registers all collectors with the default registry once.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RPCRequests, RPCDuration, HTTPRequests)
	})
}

// ObserveRPC records the outcome of one JSON-RPC call started at start.
func ObserveRPC(network, method string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	RPCRequests.WithLabelValues(network, method, status).Inc()
	RPCDuration.WithLabelValues(network, method).Observe(time.Since(start).Seconds())
}
