package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/pawshope/internal/config"
	"github.com/polkiloo/pawshope/internal/domain/repository"
	"github.com/polkiloo/pawshope/internal/metrics"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newDonationSettings,
	newDonationUseCase,
)

type donationParams struct {
	fx.In

	Ledger   repository.DonationRepository
	Gateway  PaymentGateway
	Settings DonationSettings
	Metrics  *metrics.DonationMetrics `optional:"true"`
	Logger   *slog.Logger
}

func newDonationUseCase(p donationParams) *DonationUseCase {
	return NewDonationUseCase(p.Ledger, p.Gateway, p.Settings, p.Metrics, p.Logger)
}

func newDonationSettings(cfg *config.Config) DonationSettings {
	return DonationSettings{
		BrandName:  cfg.BrandName,
		PayeeEmail: cfg.PayeeEmail,
		Purpose:    cfg.DonationPurpose,
	}
}
