package test

import (
	"context"
	"errors"
	"sync"

	domainErrors "github.com/polkiloo/pawshope/internal/domain/errors"
	"github.com/polkiloo/pawshope/internal/domain/model"
	"github.com/polkiloo/pawshope/internal/usecase"
)

var errInvalidCredentials = errors.New("invalid credentials")

// PaymentsFacadeStub provides controllable behaviour for donation and webhook endpoints.
type PaymentsFacadeStub struct {
	CreateFn    func(context.Context, usecase.CreateOrderInput) (*model.CreatedOrder, error)
	CaptureFn   func(context.Context, string) (*model.CapturedOrder, error)
	DonationFn  func(context.Context, string) (*model.Donation, error)
	DonationsFn func(context.Context) ([]model.Donation, model.DonationSummary, error)

	mu       sync.Mutex
	Inputs   []usecase.CreateOrderInput
	Webhooks []model.WebhookEvent
}

// CreateOrder records input and delegates to override or returns a default order.
func (s *PaymentsFacadeStub) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.CreatedOrder, error) {
	s.mu.Lock()
	s.Inputs = append(s.Inputs, in)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.CreatedOrder{
		ID:     "ORDER-1",
		Status: "CREATED",
		Links:  []model.Link{{Href: "https://paypal.test/approve", Rel: "approve", Method: "GET"}},
	}, nil
}

// CaptureOrder delegates to override or returns a completed capture.
func (s *PaymentsFacadeStub) CaptureOrder(ctx context.Context, orderID string) (*model.CapturedOrder, error) {
	if s.CaptureFn != nil {
		return s.CaptureFn(ctx, orderID)
	}
	return &model.CapturedOrder{ID: orderID, Status: "COMPLETED"}, nil
}

// Donation delegates to override or reports not found.
func (s *PaymentsFacadeStub) Donation(ctx context.Context, id string) (*model.Donation, error) {
	if s.DonationFn != nil {
		return s.DonationFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// Donations delegates to override or returns an empty listing.
func (s *PaymentsFacadeStub) Donations(ctx context.Context) ([]model.Donation, model.DonationSummary, error) {
	if s.DonationsFn != nil {
		return s.DonationsFn(ctx)
	}
	return nil, model.Summarize(nil), nil
}

// RecordWebhook stores the event.
func (s *PaymentsFacadeStub) RecordWebhook(_ context.Context, event model.WebhookEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Webhooks = append(s.Webhooks, event)
}

// CredentialVerifierStub implements admin credential checks.
type CredentialVerifierStub struct {
	User     string
	Password string
	Disabled bool
}

// Enabled reports whether verification is active.
func (s CredentialVerifierStub) Enabled() bool {
	return !s.Disabled
}

// Verify accepts only the configured pair.
func (s CredentialVerifierStub) Verify(user, password string) error {
	if user != s.User || password != s.Password {
		return errInvalidCredentials
	}
	return nil
}
