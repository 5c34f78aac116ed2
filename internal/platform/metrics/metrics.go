// Package metrics declares the Prometheus collectors of the warehouse backend.
// Collectors register with the default registry and are served by promhttp on /metrics.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "warehouse"

// LedgerOperations counts ledger operations by operation and outcome.
var LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "operations_total",
	Help:      "Ledger operations by operation and outcome",
}, []string{"operation", "outcome"})

// LedgerOperationDuration tracks how long ledger transactions take.
var LedgerOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "operation_duration_seconds",
	Help:      "Duration of ledger operations including the database transaction",
	Buckets:   prometheus.DefBuckets,
}, []string{"operation"})

// InsufficientStockRejections counts movements refused because a balance would go negative.
var InsufficientStockRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "ledger",
	Name:      "insufficient_stock_total",
	Help:      "Movements rejected for insufficient stock",
}, []string{"operation"})

// HTTPRequests counts served requests by route template, method and status.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by route, method and status",
}, []string{"route", "method", "status"})

// HTTPRequestDuration tracks request latency per route template.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method"})

// ObserveLedgerOperation records the outcome and latency of one ledger operation.
func ObserveLedgerOperation(operation string, start time.Time, err error) {
	LedgerOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	LedgerOperations.WithLabelValues(operation, outcome(err)).Inc()
	if errors.Is(err, apperrors.ErrInsufficientStock) {
		InsufficientStockRejections.WithLabelValues(operation).Inc()
	}
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(route, method string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperrors.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrArchivedReference):
		return "invalid"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrInvalidState):
		return "invalid_state"
	default:
		return "error"
	}
}
