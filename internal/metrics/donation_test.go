package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

func TestDonationMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDonationMetrics(reg)
	m.IncCreated("card")
	m.IncCreated("card")
	m.IncCreated("")
	m.ObserveCaptured(decimal.NewFromInt(75), true)
	m.IncGatewayFailure("capture")
	m.IncWebhook()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	checks := []struct {
		name, label, value string
		want               float64
	}{
		{"donations_created_total", "method", "card", 2},
		{"donations_created_total", "method", "unknown", 1},
		{"donations_captured_total", "exclusive", "true", 1},
		{"gateway_failures_total", "operation", "capture", 1},
	}
	for _, c := range checks {
		got, err := fetchCounterValue(mfs, c.name, c.label, c.value)
		if err != nil {
			t.Fatalf("fetch %s: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("expected %s{%s=%s}=%v, got %v", c.name, c.label, c.value, c.want, got)
		}
	}

	amount := findMetricFamily(mfs, "donation_captured_amount")
	if amount == nil || amount.GetMetric()[0].GetHistogram().GetSampleSum() != 75 {
		t.Fatalf("expected captured amount sum 75, got %v", amount)
	}

	webhooks := findMetricFamily(mfs, "webhooks_received_total")
	if webhooks == nil || webhooks.GetMetric()[0].GetCounter().GetValue() != 1 {
		t.Fatalf("expected one webhook, got %v", webhooks)
	}
}

func TestDonationMetricsNilSafe(t *testing.T) {
	var m *DonationMetrics
	m.IncCreated("card")
	m.ObserveCaptured(decimal.NewFromInt(1), false)
	m.IncGatewayFailure("create")
	m.IncWebhook()

	empty := NewDonationMetrics(nil)
	empty.IncCreated("card")
	empty.ObserveCaptured(decimal.NewFromInt(1), false)
	empty.IncGatewayFailure("create")
	empty.IncWebhook()
}

func TestModuleProvidesSharedRegistry(t *testing.T) {
	var (
		reg      *prometheus.Registry
		gatherer prometheus.Gatherer
		m        *DonationMetrics
	)
	app := fx.New(fx.NopLogger, Module, fx.Populate(&reg, &gatherer, &m))
	if err := app.Err(); err != nil {
		t.Fatalf("fx app failed: %v", err)
	}
	m.IncWebhook()

	mfs, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if findMetricFamily(mfs, "webhooks_received_total") == nil {
		t.Fatal("expected donation metrics on the shared registry")
	}
	if findMetricFamily(mfs, "go_goroutines") == nil {
		t.Fatal("expected runtime collector on the registry")
	}
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
