package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/star_burger/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("orders"))
	beforeProcessed := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("orders"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("orders"))

	metrics.KafkaMessagesConsumed.WithLabelValues("orders").Inc()
	metrics.KafkaMessagesProcessed.WithLabelValues("orders").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("orders").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("orders")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("orders")); got != beforeProcessed+1 {
		t.Fatalf("KafkaMessagesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("orders")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestGeocodeCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.GeocodeCacheOps.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(metrics.GeocodeCacheOps.WithLabelValues("miss"))

	metrics.GeocodeCacheOps.WithLabelValues("hit").Inc()
	metrics.GeocodeCacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.GeocodeCacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("GeocodeCacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.GeocodeCacheOps.WithLabelValues("miss")); got != missBefore {
		t.Fatalf("GeocodeCacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestGeocoderCalls_Inc(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.GeocoderCalls.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(metrics.GeocoderCalls.WithLabelValues("error"))

	metrics.GeocoderCalls.WithLabelValues("ok").Inc()
	metrics.GeocoderCalls.WithLabelValues("error").Inc()

	if got := testutil.ToFloat64(metrics.GeocoderCalls.WithLabelValues("ok")); got != okBefore+1 {
		t.Fatalf("GeocoderCalls(ok): got=%v want=%v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(metrics.GeocoderCalls.WithLabelValues("error")); got != errBefore+1 {
		t.Fatalf("GeocoderCalls(error): got=%v want=%v", got, errBefore+1)
	}
}
