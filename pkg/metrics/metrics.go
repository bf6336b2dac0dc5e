package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	GeocodeCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_cache_operations_total",
			Help: "Geocode cache lookups",
		},
		[]string{"op"}, // hit|miss|stale
	)
	GeocoderCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocoder_calls_total",
			Help: "Calls to the external geocoding provider",
		},
		[]string{"result"}, // ok|error
	)
)

var (
	AssignmentBatches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_batches_total",
			Help: "Number of candidate-assignment batches computed",
		},
	)
	AssignmentBatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assignment_batch_duration_seconds",
			Help:    "Wall time of one candidate-assignment batch",
			Buckets: prometheus.DefBuckets,
		},
	)
	AssignmentUnrankedOrders = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_unranked_orders_total",
			Help: "Orders whose delivery address could not be geocoded",
		},
	)
)

// MustRegister — регистрация всех метрик; повторный вызов безопасен
// (AlreadyRegisteredError игнорируется, прочие ошибки — паника).
func MustRegister() {
	collectors := []prometheus.Collector{
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		GeocodeCacheOps, GeocoderCalls,
		AssignmentBatches, AssignmentBatchDuration, AssignmentUnrankedOrders,
	}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			are := prometheus.AlreadyRegisteredError{}
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
