package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestOrderMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newOrderMetricsWithRegisterer(registry)

	m.OrderCreated()
	m.OrderCreated()
	m.OrderUpdated()
	m.OrderDeleted()
	m.WriteFailed("create", "product_not_found")
	m.ObserveWrite("create", 10*time.Millisecond)

	if got := testutil.ToFloat64(m.ordersCreated); got != 2 {
		t.Fatalf("expected 2 created, got %f", got)
	}
	if got := testutil.ToFloat64(m.ordersUpdated); got != 1 {
		t.Fatalf("expected 1 updated, got %f", got)
	}
	if got := testutil.ToFloat64(m.ordersDeleted); got != 1 {
		t.Fatalf("expected 1 deleted, got %f", got)
	}
	if got := testutil.ToFloat64(m.writeFailures.WithLabelValues("create", "product_not_found")); got != 1 {
		t.Fatalf("expected 1 failure, got %f", got)
	}
}

func TestOrderMetrics_DoubleRegistrationReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := newOrderMetricsWithRegisterer(registry)
	second := newOrderMetricsWithRegisterer(registry)

	first.OrderCreated()
	second.OrderCreated()

	if got := testutil.ToFloat64(first.ordersCreated); got != 2 {
		t.Fatalf("expected shared collector with 2 increments, got %f", got)
	}
}

func TestOrderMetrics_NilSafe(t *testing.T) {
	var m *OrderMetrics
	// Не должно паниковать.
	m.OrderCreated()
	m.OrderUpdated()
	m.OrderDeleted()
	m.WriteFailed("create", "x")
	m.ObserveWrite("create", time.Millisecond)
}
