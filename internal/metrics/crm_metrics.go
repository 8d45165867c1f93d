package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CRMMetrics содержит метрики бизнес-операций CRM.
type CRMMetrics struct {
	// Счётчики успешных созданий по видам записей
	customersCreated prometheus.Counter
	productsCreated  prometheus.Counter
	ordersCreated    prometheus.Counter

	// Счётчик отказов мутаций по операциям
	mutationFailures *prometheus.CounterVec

	// Гистограмма времени выполнения операций
	requestDuration *prometheus.HistogramVec
}

// NewCRMMetrics создаёт новый экземпляр метрик CRM.
func NewCRMMetrics() *CRMMetrics {
	return newCRMMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newCRMMetricsWithRegisterer(registerer prometheus.Registerer) *CRMMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CRMMetrics{
		customersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_customers_created_total",
			Help: "Total number of customers created",
		}),
		productsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_products_created_total",
			Help: "Total number of products created",
		}),
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "crm_orders_created_total",
			Help: "Total number of orders created",
		}),
		mutationFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "crm_mutation_failures_total",
			Help: "Total number of failed mutations by operation",
		}, []string{"operation"}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "crm_request_duration_seconds",
			Help:    "Duration of CRM operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"operation"}),
	}
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

// RecordCustomerCreated увеличивает счётчик созданных клиентов.
func (m *CRMMetrics) RecordCustomerCreated() {
	m.customersCreated.Inc()
}

// RecordProductCreated увеличивает счётчик созданных товаров.
func (m *CRMMetrics) RecordProductCreated() {
	m.productsCreated.Inc()
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *CRMMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordMutationFailure увеличивает счётчик отказов операции.
func (m *CRMMetrics) RecordMutationFailure(operation string) {
	m.mutationFailures.WithLabelValues(operation).Inc()
}

// ObserveRequestDuration записывает время выполнения операции.
func (m *CRMMetrics) ObserveRequestDuration(operation string, duration time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
