package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/pawshope/internal/domain/errors"
	"github.com/polkiloo/pawshope/internal/domain/model"
	"github.com/polkiloo/pawshope/internal/domain/repository"
	"github.com/polkiloo/pawshope/internal/metrics"
)

// DonationSettings carries organisation details placed on every order.
type DonationSettings struct {
	BrandName  string
	PayeeEmail string
	Purpose    string
}

// CreateOrderInput is a donor request to start a donation.
type CreateOrderInput struct {
	Amount    decimal.Decimal
	Currency  string
	Frequency string
	Donor     model.DonorInfo
	Method    model.PaymentMethod
	ReturnURL string
	CancelURL string
}

// DonationUseCase drives the create and capture lifecycle of donations.
type DonationUseCase struct {
	ledger   repository.DonationRepository
	gateway  PaymentGateway
	settings DonationSettings
	metrics  *metrics.DonationMetrics
	logger   *slog.Logger
	locks    *keyedMutex

	now   func() time.Time
	newID func() string
}

// Option customises DonationUseCase.
type Option func(*DonationUseCase)

// WithClock overrides the time source used for CreatedAt and CapturedAt.
func WithClock(now func() time.Time) Option {
	return func(u *DonationUseCase) { u.now = now }
}

// WithReferenceIDs overrides the generator of order reference ids.
func WithReferenceIDs(newID func() string) Option {
	return func(u *DonationUseCase) { u.newID = newID }
}

// NewDonationUseCase constructs DonationUseCase.
func NewDonationUseCase(
	ledger repository.DonationRepository,
	gateway PaymentGateway,
	settings DonationSettings,
	m *metrics.DonationMetrics,
	logger *slog.Logger,
	opts ...Option,
) *DonationUseCase {
	u := &DonationUseCase{
		ledger:   ledger,
		gateway:  gateway,
		settings: settings,
		metrics:  m,
		logger:   logger,
		locks:    newKeyedMutex(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Description returns the order description for frequency.
func (u *DonationUseCase) Description(frequency model.Frequency) string {
	if frequency == model.FrequencyMonthly {
		return "Monthly donation to " + u.settings.Purpose
	}
	return "One-time donation to " + u.settings.Purpose
}

// CreateOrder validates input, opens an order at the processor and records it as CREATED.
func (u *DonationUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (*model.CreatedOrder, error) {
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = model.DefaultCurrency
	}
	// The ledger must hold exactly what the processor charges.
	if !model.FitsCurrency(in.Amount, currency) {
		return nil, domainErrors.ErrInvalidAmount
	}
	in.Donor.Email = strings.TrimSpace(in.Donor.Email)
	if in.Donor.Email == "" {
		return nil, domainErrors.ErrMissingDonorInfo
	}
	frequency := model.ParseFrequency(in.Frequency)

	req := model.CheckoutRequest{
		ReferenceID: u.newID(),
		Method:      in.Method,
		Amount:      in.Amount,
		Currency:    currency,
		Description: u.Description(frequency),
		BrandName:   u.settings.BrandName,
	}
	if in.Method == model.PaymentMethodAccount {
		req.PayeeEmail = u.settings.PayeeEmail
		req.ReturnURL = in.ReturnURL
		req.CancelURL = in.CancelURL
	}

	order, err := u.gateway.CreateOrder(ctx, req)
	if err != nil {
		u.metrics.IncGatewayFailure("create")
		u.logger.Error("create order failed",
			slog.String("method", string(in.Method)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	donation := model.Donation{
		ID:            order.ID,
		Amount:        in.Amount,
		Currency:      currency,
		Frequency:     frequency,
		Donor:         in.Donor,
		PaymentMethod: in.Method,
		Status:        model.DonationStatusCreated,
		CreatedAt:     u.now(),
	}
	if err := u.ledger.Put(ctx, donation); err != nil {
		return nil, fmt.Errorf("record donation %s: %w", order.ID, err)
	}

	u.metrics.IncCreated(string(in.Method))
	u.logger.Info("donation order created",
		slog.String("order_id", order.ID),
		slog.String("amount", in.Amount.String()),
		slog.String("currency", currency),
		slog.String("method", string(in.Method)),
	)
	return order, nil
}

// CaptureOrder captures an approved order and completes the local record.
// Captures of the same order are serialised.
func (u *DonationUseCase) CaptureOrder(ctx context.Context, orderID string) (*model.CapturedOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domainErrors.ErrMissingOrderID
	}

	unlock, err := u.locks.Lock(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("wait for capture of %s: %w", orderID, err)
	}
	defer unlock()

	captured, err := u.gateway.CaptureOrder(ctx, orderID)
	if err != nil {
		u.metrics.IncGatewayFailure("capture")
		u.logger.Error("capture order failed",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	u.complete(ctx, orderID, captured)
	return captured, nil
}

func (u *DonationUseCase) complete(ctx context.Context, orderID string, captured *model.CapturedOrder) {
	donation, err := u.ledger.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Warn("captured order has no local record", slog.String("order_id", orderID))
		} else {
			u.logger.Error("load donation failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
		}
		return
	}
	if donation.Completed() {
		u.logger.Info("donation already completed", slog.String("order_id", orderID))
		return
	}

	capturedAt := u.now()
	donation.Status = model.DonationStatusCompleted
	donation.CapturedAt = &capturedAt
	donation.ProcessorTransactionID = captured.TransactionID
	donation.ExclusiveDonor = model.QualifiesForExclusiveBenefits(donation.Amount)

	if err := u.ledger.Put(ctx, *donation); err != nil {
		u.logger.Error("record capture failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
		return
	}

	u.metrics.ObserveCaptured(donation.Amount, donation.ExclusiveDonor)
	if donation.ExclusiveDonor {
		u.logger.Info("exclusive donor benefits activated",
			slog.String("order_id", orderID),
			slog.String("donor", donation.Donor.DisplayName()),
			slog.String("email", donation.Donor.Email),
			slog.String("amount", donation.Amount.String()),
		)
	}
	u.logger.Info("donation captured",
		slog.String("order_id", orderID),
		slog.String("transaction_id", donation.ProcessorTransactionID),
		slog.String("amount", donation.Amount.String()),
		slog.String("donor", donation.Donor.DisplayName()),
	)
}

// Donation returns a single ledger record.
func (u *DonationUseCase) Donation(ctx context.Context, id string) (*model.Donation, error) {
	return u.ledger.Get(ctx, id)
}

// Donations returns all ledger records with their summary.
func (u *DonationUseCase) Donations(ctx context.Context) ([]model.Donation, model.DonationSummary, error) {
	list, err := u.ledger.List(ctx)
	if err != nil {
		return nil, model.DonationSummary{}, err
	}
	summary, err := u.ledger.Summarize(ctx)
	if err != nil {
		return nil, model.DonationSummary{}, err
	}
	return list, summary, nil
}
