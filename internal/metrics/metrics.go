// Package metrics exposes prometheus counters for the webhook and push traffic.
// The collectors are served by the monitoring server on /metrics.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "line_shop_bot"

	StatusOK      = "ok"
	StatusError   = "error"
	StatusIgnored = "ignored"
)

// BotMetrics exposes counters/histograms for webhook and push flows.
type BotMetrics struct {
	inboundEvents  *prometheus.CounterVec
	outboundPushes *prometheus.CounterVec
	webhookLatency prometheus.Histogram
}

// New creates the collectors and registers them on reg (the default registerer when nil).
// Collectors that are already registered are reused, so New may be called more than once.
func New(reg prometheus.Registerer) *BotMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &BotMetrics{
		inboundEvents: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "inbound_events_total",
			Help:      "Total webhook events handled, by event type and outcome",
		}, []string{"event_type", "status"})),
		outboundPushes: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "push",
			Name:      "outbound_total",
			Help:      "Total push API calls, by outcome",
		}, []string{"status"})),
		webhookLatency: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "latency_seconds",
			Help:      "Time spent handling one webhook request",
			Buckets:   prometheus.DefBuckets,
		})),
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveEvent counts one handled webhook event.
func (m *BotMetrics) ObserveEvent(eventType, status string) {
	if m == nil {
		return
	}
	m.inboundEvents.WithLabelValues(eventType, status).Inc()
}

// ObservePush counts one push API call.
func (m *BotMetrics) ObservePush(status string) {
	if m == nil {
		return
	}
	m.outboundPushes.WithLabelValues(status).Inc()
}

// ObserveWebhookLatency records how long a webhook request took.
func (m *BotMetrics) ObserveWebhookLatency(d time.Duration) {
	if m == nil {
		return
	}
	m.webhookLatency.Observe(d.Seconds())
}
