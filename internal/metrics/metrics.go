// Package metrics holds the Prometheus instruments of the journey backend
// and the helpers that record them. Instruments are package-level so any
// layer can record without threading a registry through constructors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RatingsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "innerpath_ratings_submitted_total",
		Help: "Number of accepted rating submissions, overwrites included",
	})

	ReportsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "innerpath_reports_generated_total",
		Help: "Number of alignment reports generated",
	})

	UsersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "innerpath_users_created_total",
		Help: "Number of onboarded users",
	})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "innerpath_http_request_duration_seconds",
		Help:    "Duration of handled HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "innerpath_http_requests_total",
		Help: "Number of handled HTTP requests",
	}, []string{"route", "method", "status"})
)

// MustRegister registers every instrument of the package.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		RatingsSubmitted,
		ReportsGenerated,
		UsersCreated,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// ObserveHTTPRequest records one handled request.
func ObserveHTTPRequest(route, method, status string, start time.Time) {
	duration := time.Since(start).Seconds()
	HTTPRequestDuration.WithLabelValues(route, method, status).Observe(duration)
	HTTPRequestsTotal.WithLabelValues(route, method, status).Inc()
}
