// Package metrics defines and registers all custom Prometheus metrics for the
// API gateway. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default registry at package init; the /metrics
// route is wired by the router through echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gateway"

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_header", "bad_scheme", "empty_token", "invalid_token",
//     "expired_token", "bad_credentials"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ProxyErrorsTotal counts proxied requests that failed at the transport level
// and were answered with 502.
// Label:
//   - target: backend service name (e.g. "orders", "inference")
var ProxyErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "proxy_errors_total",
		Help:      "Total number of backend transport failures answered with 502.",
	},
	[]string{"target"},
)

// ErrorLogEntriesTotal counts entries appended to the error log store.
// Label:
//   - status: the HTTP status recorded (e.g. "404", "502")
var ErrorLogEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "error_log_entries_total",
		Help:      "Total number of error log entries recorded, by status.",
	},
	[]string{"status"},
)

// ErrorLogSize tracks the current number of entries held in the error log
// store. Drops to zero on an administrative clear.
var ErrorLogSize = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "error_log_size",
		Help:      "Current number of entries in the in-memory error log store.",
	},
)

// LoginThrottledTotal counts login attempts rejected by the rate limiter.
var LoginThrottledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_throttled_total",
		Help:      "Total number of login attempts rejected with 429.",
	},
)
