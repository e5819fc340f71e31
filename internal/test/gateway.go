package test

import (
	"context"
	"sync"

	"github.com/polkiloo/pawshope/internal/domain/model"
)

// PaymentGatewayStub records processor calls and returns configurable results.
type PaymentGatewayStub struct {
	CreateFn  func(context.Context, model.CheckoutRequest) (*model.CreatedOrder, error)
	CaptureFn func(context.Context, string) (*model.CapturedOrder, error)

	mu       sync.Mutex
	created  []model.CheckoutRequest
	captured []string
}

// CreateOrder records req and returns a created order with a random id by default.
func (s *PaymentGatewayStub) CreateOrder(ctx context.Context, req model.CheckoutRequest) (*model.CreatedOrder, error) {
	s.mu.Lock()
	s.created = append(s.created, req)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, req)
	}
	return &model.CreatedOrder{ID: RandomOrderID(), Status: "CREATED"}, nil
}

// CaptureOrder records orderID and returns a completed capture by default.
func (s *PaymentGatewayStub) CaptureOrder(ctx context.Context, orderID string) (*model.CapturedOrder, error) {
	s.mu.Lock()
	s.captured = append(s.captured, orderID)
	s.mu.Unlock()
	if s.CaptureFn != nil {
		return s.CaptureFn(ctx, orderID)
	}
	return &model.CapturedOrder{ID: orderID, Status: "COMPLETED", TransactionID: "CAP-" + orderID}, nil
}

// CreateRequests returns recorded create calls.
func (s *PaymentGatewayStub) CreateRequests() []model.CheckoutRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CheckoutRequest(nil), s.created...)
}

// CaptureCalls returns recorded capture ids.
func (s *PaymentGatewayStub) CaptureCalls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.captured...)
}
