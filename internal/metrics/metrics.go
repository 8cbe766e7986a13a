package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total gateway order creation attempts by outcome",
		},
		[]string{"status"},
	)

	OrderAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_amounts",
			Help:    "Distribution of created order amounts",
			Buckets: prometheus.LinearBuckets(0, 200, 10),
		},
		[]string{"currency"},
	)

	WebhooksReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhooks_received_total",
			Help: "Total authenticated gateway webhooks by event type",
		},
		[]string{"type"},
	)

	ConversionEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conversion_events_total",
			Help: "Total conversion events relayed to the marketing API",
		},
		[]string{"event", "status"},
	)

	EmailsSentTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total ebook delivery emails by outcome",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		OrdersCreatedTotal,
		OrderAmounts,
		WebhooksReceivedTotal,
		ConversionEventsTotal,
		EmailsSentTotal,
	)
}
