package services

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	operationsTotal     *prometheus.CounterVec
	operationDuration   prometheus.Histogram
	transactionAmount   *prometheus.HistogramVec
	customersTotal      prometheus.Gauge
	customerCreated     prometheus.Counter
	customerRenamed     prometheus.Counter
	endOfMonthRuns      *prometheus.CounterVec
	auditWrites         *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
	tellerAuthEvents    *prometheus.CounterVec
}

// NewPrometheusMetrics registers the bank's collectors on reg. Passing a
// fresh prometheus.NewRegistry keeps tests independent of each other.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_operations_total",
				Help: "Total number of teller and customer operations",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_operation_duration_milliseconds",
				Help:    "Operation processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			},
		),
		transactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bank_transaction_amount",
				Help:    "Posted transaction amount in dollars",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"operation"},
		),
		customersTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_customers_total",
				Help: "Current number of customers in the directory",
			},
		),
		customerCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bank_customer_created_total",
				Help: "Total number of customers created",
			},
		),
		customerRenamed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "bank_customer_renamed_total",
				Help: "Total number of customer renames",
			},
		),
		endOfMonthRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_end_of_month_runs_total",
				Help: "Total number of end-of-month runs",
			},
			[]string{"status"},
		),
		auditWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_audit_writes_total",
				Help: "Total number of audit log writes",
			},
			[]string{"status"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bank_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		tellerAuthEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_teller_auth_events_total",
				Help: "Total number of teller authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	reason := tags["reason"]
	status := tags["status"]

	switch name {
	case "operation.success":
		m.operationsTotal.WithLabelValues(operation, "success").Inc()
	case "operation.failed":
		m.operationsTotal.WithLabelValues(operation, "failed_"+reason).Inc()
	case "customer_created":
		m.customerCreated.Inc()
	case "customer_renamed":
		m.customerRenamed.Inc()
	case "end_of_month":
		if status != "" {
			m.endOfMonthRuns.WithLabelValues(status).Inc()
		}
	case "audit.write":
		if status != "" {
			m.auditWrites.WithLabelValues(status).Inc()
		}
	case "teller_auth":
		if eventType := tags["event_type"]; eventType != "" {
			m.tellerAuthEvents.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "operation":
		m.operationDuration.Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transaction_amount":
		m.transactionAmount.WithLabelValues(tags["operation"]).Observe(value)
	case "customers":
		m.customersTotal.Set(value)
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}

// SummarizeCounters renders every non-zero counter in g as "name{labels} value",
// sorted for stable output
func SummarizeCounters(g prometheus.Gatherer) ([]string, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			counter := metric.GetCounter()
			if counter == nil || counter.GetValue() == 0 {
				continue
			}
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, label.GetName()+"="+label.GetValue())
			}
			name := family.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, counter.GetValue()))
		}
	}
	slices.Sort(lines)
	return lines, nil
}
