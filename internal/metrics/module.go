package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// Module provides an application registry and donation metrics bound to it.
var Module = fx.Provide(
	NewRegistry,
	func(r *prometheus.Registry) prometheus.Registerer { return r },
	func(r *prometheus.Registry) prometheus.Gatherer { return r },
	NewDonationMetrics,
)

// NewRegistry creates a registry with process and Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
