package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StoreMetrics counts the checkout outcomes worth alerting on.
type StoreMetrics struct {
	OrdersPlaced     prometheus.Counter
	OrdersFailed     prometheus.Counter
	CheckoutRejected *prometheus.CounterVec
}

func New() *StoreMetrics {
	placed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "orders_placed_total",
		Help:      "Total number of successfully placed orders.",
	})
	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "orders_failed_total",
		Help:      "Total number of order submissions that failed.",
	})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Name:      "checkout_rejected_total",
		Help:      "Checkout step transitions rejected by validation.",
	}, []string{"step"})

	prometheus.MustRegister(placed, failed, rejected)
	return &StoreMetrics{OrdersPlaced: placed, OrdersFailed: failed, CheckoutRejected: rejected}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
