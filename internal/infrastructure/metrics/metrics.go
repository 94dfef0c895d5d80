package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersCommitted prometheus.Counter
	TransfersAborted   *prometheus.CounterVec
	TransferDuration   prometheus.Histogram
	TransferAmount     prometheus.Histogram

	// Elicitation metrics
	Elicitations        *prometheus.CounterVec
	ElicitationDuration prometheus.Histogram

	// Rate metrics
	ExchangeRate prometheus.Gauge
	RateUpdates  prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Transfer metrics
		TransfersCommitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fxbank_transfers_committed_total",
			Help: "Total number of transfers committed",
		}),
		TransfersAborted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxbank_transfers_aborted_total",
				Help: "Total number of transfers aborted by reason",
			},
			[]string{"reason"},
		),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fxbank_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fxbank_transfer_amount",
			Help:    "Transfer amounts in source currency units",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),

		// Elicitation metrics
		Elicitations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxbank_elicitations_total",
				Help: "Total elicitation rounds by field and outcome",
			},
			[]string{"field", "outcome"},
		),
		ElicitationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fxbank_elicitation_duration_seconds",
			Help:    "Time spent waiting for elicitation responses",
			Buckets: []float64{0.1, 1, 5, 15, 30, 60, 120},
		}),

		// Rate metrics
		ExchangeRate: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "fxbank_exchange_rate",
			Help: "Current AUD to USD exchange rate",
		}),
		RateUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fxbank_rate_updates_total",
			Help: "Total number of exchange rate updates",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxbank_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fxbank_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxbank_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxbank_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxbank_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
	}
}
