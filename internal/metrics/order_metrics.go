package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics содержит метрики пути записи заказов.
type OrderMetrics struct {
	ordersCreated prometheus.Counter
	ordersUpdated prometheus.Counter
	ordersDeleted prometheus.Counter

	writeFailures *prometheus.CounterVec
	writeDuration *prometheus.HistogramVec
}

// NewOrderMetrics создаёт и регистрирует метрики заказов.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "tienda_orders_created_total",
			Help: "Total number of orders created",
		}),
		ordersUpdated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "tienda_orders_updated_total",
			Help: "Total number of orders updated (line sets reconciled)",
		}),
		ordersDeleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "tienda_orders_deleted_total",
			Help: "Total number of orders deleted",
		}),
		writeFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "tienda_order_write_failures_total",
			Help: "Total number of failed order write operations by reason",
		}, []string{"operation", "reason"}),
		writeDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "tienda_order_write_duration_seconds",
			Help:    "Duration of order write operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"operation"}),
	}
}

// OrderCreated инкрементирует счётчик созданных заказов.
func (m *OrderMetrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

// OrderUpdated инкрементирует счётчик обновлённых заказов.
func (m *OrderMetrics) OrderUpdated() {
	if m == nil {
		return
	}
	m.ordersUpdated.Inc()
}

// OrderDeleted инкрементирует счётчик удалённых заказов.
func (m *OrderMetrics) OrderDeleted() {
	if m == nil {
		return
	}
	m.ordersDeleted.Inc()
}

// WriteFailed фиксирует неудачную операцию записи с причиной.
func (m *OrderMetrics) WriteFailed(operation, reason string) {
	if m == nil {
		return
	}
	m.writeFailures.WithLabelValues(operation, reason).Inc()
}

// ObserveWrite фиксирует длительность операции записи.
func (m *OrderMetrics) ObserveWrite(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.writeDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
