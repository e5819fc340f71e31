package paypal

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/pawshope/internal/config"
)

// Module exposes the processor client to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*HTTPClient, error) {
	return NewHTTPClient(
		BaseURL(p.Config.PayPalMode, p.Config.PayPalAPIBase),
		p.Config.PayPalClientID,
		p.Config.PayPalClientSecret,
		p.Config.PayPalTimeout,
		p.Logger,
	)
}

// BaseURL selects the API host for mode unless override is set.
func BaseURL(mode, override string) string {
	if override != "" {
		return override
	}
	if mode == config.ModeLive {
		return LiveBaseURL
	}
	return SandboxBaseURL
}
