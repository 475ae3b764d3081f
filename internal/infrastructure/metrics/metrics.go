package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bazaarhub_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bazaarhub_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bazaarhub_product_cache_hits_total",
		Help: "Product cache hits.",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bazaarhub_product_cache_misses_total",
		Help: "Product cache misses.",
	})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bazaarhub_orders_created_total",
		Help: "Orders created from carts.",
	})

	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bazaarhub_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})
)
