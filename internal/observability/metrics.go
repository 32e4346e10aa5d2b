// Package observability holds the Prometheus collectors of the service.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for signup and removal counters.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeNotFound    = "not_found"
	OutcomeConflict    = "conflict"
	OutcomeNotSignedUp = "not_signed_up"
	OutcomeFailed      = "failed"
	OutcomeError       = "error"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Name:      "signups_total",
		Help:      "Signup attempts by outcome.",
	}, []string{"outcome"})
	removalCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Name:      "removals_total",
		Help:      "Removal attempts by outcome.",
	}, []string{"outcome"})
	eventPublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Membership events that could not be published.",
	})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "signup_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(signupCounter, removalCounter, eventPublishFailures, httpDuration)
}

// RecordSignup counts one signup attempt.
func RecordSignup(outcome string) {
	signupCounter.WithLabelValues(outcome).Inc()
}

// RecordRemoval counts one removal attempt.
func RecordRemoval(outcome string) {
	removalCounter.WithLabelValues(outcome).Inc()
}

// RecordPublishFailure counts a membership event that was dropped.
func RecordPublishFailure() {
	eventPublishFailures.Inc()
}

// ObserveHTTP records request latency.
func ObserveHTTP(method, route string, status int, d time.Duration) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
