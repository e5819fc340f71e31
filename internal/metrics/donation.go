package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// DonationMetrics records donation lifecycle events.
type DonationMetrics struct {
	created  *prometheus.CounterVec
	captured *prometheus.CounterVec
	amount   prometheus.Histogram
	failures *prometheus.CounterVec
	webhooks prometheus.Counter
}

// NewDonationMetrics registers the donation metrics on the provided registerer.
func NewDonationMetrics(reg prometheus.Registerer) *DonationMetrics {
	if reg == nil {
		return &DonationMetrics{}
	}
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "donations_created_total",
		Help: "Donation orders created at the payment processor.",
	}, []string{"method"})
	captured := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "donations_captured_total",
		Help: "Donation orders captured.",
	}, []string{"exclusive"})
	amount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "donation_captured_amount",
		Help:    "Captured donation amounts.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
	})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_failures_total",
		Help: "Failed payment processor calls.",
	}, []string{"operation"})
	webhooks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhooks_received_total",
		Help: "Webhook notifications received.",
	})
	reg.MustRegister(created, captured, amount, failures, webhooks)
	return &DonationMetrics{
		created:  created,
		captured: captured,
		amount:   amount,
		failures: failures,
		webhooks: webhooks,
	}
}

// IncCreated counts a created order for the payment method.
func (m *DonationMetrics) IncCreated(method string) {
	if m == nil || m.created == nil {
		return
	}
	m.created.WithLabelValues(normalizeLabel(method)).Inc()
}

// ObserveCaptured counts a captured donation and records its amount.
func (m *DonationMetrics) ObserveCaptured(amount decimal.Decimal, exclusive bool) {
	if m == nil || m.captured == nil {
		return
	}
	m.captured.WithLabelValues(strconv.FormatBool(exclusive)).Inc()
	m.amount.Observe(amount.InexactFloat64())
}

// IncGatewayFailure counts a failed processor call.
func (m *DonationMetrics) IncGatewayFailure(operation string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncWebhook counts a received webhook.
func (m *DonationMetrics) IncWebhook() {
	if m == nil || m.webhooks == nil {
		return
	}
	m.webhooks.Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
