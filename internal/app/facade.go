package app

import (
	"context"
	"log/slog"

	"github.com/polkiloo/pawshope/internal/domain/model"
	"github.com/polkiloo/pawshope/internal/metrics"
	"github.com/polkiloo/pawshope/internal/usecase"
)

// DonationFacade exposes donation use cases and webhook intake to the HTTP layer.
type DonationFacade struct {
	donations *usecase.DonationUseCase
	metrics   *metrics.DonationMetrics
	logger    *slog.Logger
}

func NewDonationFacade(donations *usecase.DonationUseCase, m *metrics.DonationMetrics, logger *slog.Logger) *DonationFacade {
	return &DonationFacade{donations: donations, metrics: m, logger: logger}
}

func (f *DonationFacade) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.CreatedOrder, error) {
	return f.donations.CreateOrder(ctx, in)
}

func (f *DonationFacade) CaptureOrder(ctx context.Context, orderID string) (*model.CapturedOrder, error) {
	return f.donations.CaptureOrder(ctx, orderID)
}

func (f *DonationFacade) Donation(ctx context.Context, id string) (*model.Donation, error) {
	return f.donations.Donation(ctx, id)
}

func (f *DonationFacade) Donations(ctx context.Context) ([]model.Donation, model.DonationSummary, error) {
	return f.donations.Donations(ctx)
}

// RecordWebhook logs a notification. Events are not acted upon.
func (f *DonationFacade) RecordWebhook(ctx context.Context, event model.WebhookEvent) {
	f.metrics.IncWebhook()
	f.logger.InfoContext(ctx, "paypal webhook received",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.EventType),
		slog.String("resource_type", event.ResourceType),
	)
}
