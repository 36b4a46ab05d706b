package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"}) // ok|not_found|upstream_error

	RecordFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_record_fetches_total",
		Help: "Record fetches by result.",
	}, []string{"result"}) // ok|demo|http_error|remote_error|network_error

	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "portal_record_fetch_seconds",
		Help:    "Wall time of record fetches including demo-fallback delay.",
		Buckets: prometheus.DefBuckets,
	})
)
