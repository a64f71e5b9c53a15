package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus collectors for the order workflow, exported on the metrics
// port via promhttp.
var (
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brasserie_orders_created_total",
		Help: "Number of orders successfully created by checkout.",
	})

	CheckoutFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "brasserie_checkout_failures_total",
		Help: "Number of rejected checkout attempts by reason.",
	}, []string{"reason"})

	StatusTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "brasserie_order_status_transitions_total",
		Help: "Number of applied order status transitions.",
	}, []string{"from", "to"})

	PaymentsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brasserie_payments_processed_total",
		Help: "Number of orders marked paid.",
	})

	OrderValue = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "brasserie_order_value",
		Help:    "Distribution of order totals in minor currency units.",
		Buckets: prometheus.ExponentialBuckets(5000, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(
		OrdersCreated,
		CheckoutFailures,
		StatusTransitions,
		PaymentsProcessed,
		OrderValue,
	)
}
