package usecase

import (
	"context"

	"github.com/polkiloo/pawshope/internal/domain/model"
)

// PaymentGateway is the payment processor contract used by donation flows.
// Failures are reported as *errors.GatewayError.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req model.CheckoutRequest) (*model.CreatedOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (*model.CapturedOrder, error)
}
