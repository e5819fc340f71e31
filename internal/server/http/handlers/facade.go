package handlers

import (
	"context"

	"github.com/polkiloo/pawshope/internal/domain/model"
	"github.com/polkiloo/pawshope/internal/usecase"
)

// DonationFacade describes donation lifecycle operations exposed via HTTP.
type DonationFacade interface {
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.CreatedOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (*model.CapturedOrder, error)
	Donation(ctx context.Context, id string) (*model.Donation, error)
	Donations(ctx context.Context) ([]model.Donation, model.DonationSummary, error)
}

// WebhookFacade records processor notifications.
type WebhookFacade interface {
	RecordWebhook(ctx context.Context, event model.WebhookEvent)
}

// PaymentsFacade aggregates the full set of operations used across handlers.
type PaymentsFacade interface {
	DonationFacade
	WebhookFacade
}
