package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "webby"
)

var (
	StatementDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "store", "statement_duration_seconds"),
		Help:    "Duration of store statements in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"op", "outcome"})
	PoolWaitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "store", "pool_wait_duration_seconds"),
		Help:    "Time spent waiting for a pool slot in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"op"})
	PoolInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "store", "pool_in_use"),
		Help: "Number of pool slots currently checked out",
	})
)
