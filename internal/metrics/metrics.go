package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ItemsRegisteredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "node",
		Name:      "items_registered_total",
		Help:      "Items submitted for consensus",
	}, []string{"outcome"})

	ItemsFinishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "node",
		Name:      "items_finished_total",
		Help:      "Items that reached a terminal state",
	}, []string{"state"})

	ProcessorsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "universa",
		Subsystem: "node",
		Name:      "processors_active",
		Help:      "Item processors currently registered",
	})

	VotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "node",
		Name:      "votes_total",
		Help:      "Peer votes recorded",
	}, []string{"side"})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "node",
		Name:      "notifications_total",
		Help:      "Item notifications by direction",
	}, []string{"direction"})

	ConsensusDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "universa",
		Subsystem: "node",
		Name:      "consensus_duration_seconds",
		Help:      "Time from processor start to terminal state",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 18),
	})

	DownloadAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "download",
		Name:      "attempts_total",
		Help:      "Remote item fetch attempts",
	}, []string{"status"})

	DownloadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "universa",
		Subsystem: "download",
		Name:      "duration_seconds",
		Help:      "Remote item fetch duration",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
	})

	LedgerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "ledger",
		Name:      "operations_total",
		Help:      "Ledger record operations",
	}, []string{"operation"})

	LedgerRecordsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "universa",
		Subsystem: "ledger",
		Name:      "records_total",
		Help:      "State records currently held",
	})

	WALWritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "wal",
		Name:      "writes_total",
		Help:      "Total WAL appends",
	})

	WALWriteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "universa",
		Subsystem: "wal",
		Name:      "write_duration_seconds",
		Help:      "WAL append duration",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 20),
	})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Item cache hits",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Item cache misses",
	})

	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "universa",
		Subsystem: "cache",
		Name:      "size",
		Help:      "Item bodies currently cached",
	})

	GRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "universa",
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "Total gRPC requests",
	}, []string{"service", "method", "code"})

	GRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "universa",
		Subsystem: "grpc",
		Name:      "request_duration_seconds",
		Help:      "gRPC request duration",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
	}, []string{"service", "method"})
)
