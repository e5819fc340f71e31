package test

import (
	"context"

	"github.com/polkiloo/pawshope/internal/domain/model"
	"github.com/polkiloo/pawshope/internal/domain/repository"
	"github.com/polkiloo/pawshope/internal/storage/memory"
)

// DonationRepositoryStub delegates to an in-memory ledger unless an override is set.
type DonationRepositoryStub struct {
	PutFn       func(context.Context, model.Donation) error
	GetFn       func(context.Context, string) (*model.Donation, error)
	ListFn      func(context.Context) ([]model.Donation, error)
	SummarizeFn func(context.Context) (model.DonationSummary, error)

	Ledger *memory.Ledger
}

// NewDonationRepositoryStub constructs stub repository backed by a fresh ledger.
func NewDonationRepositoryStub() *DonationRepositoryStub {
	return &DonationRepositoryStub{Ledger: memory.New()}
}

// Put stores donation.
func (s *DonationRepositoryStub) Put(ctx context.Context, d model.Donation) error {
	if s.PutFn != nil {
		return s.PutFn(ctx, d)
	}
	return s.Ledger.Put(ctx, d)
}

// Get returns stored donation.
func (s *DonationRepositoryStub) Get(ctx context.Context, id string) (*model.Donation, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return s.Ledger.Get(ctx, id)
}

// List returns stored donations.
func (s *DonationRepositoryStub) List(ctx context.Context) ([]model.Donation, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Ledger.List(ctx)
}

// Summarize aggregates stored donations.
func (s *DonationRepositoryStub) Summarize(ctx context.Context) (model.DonationSummary, error) {
	if s.SummarizeFn != nil {
		return s.SummarizeFn(ctx)
	}
	return s.Ledger.Summarize(ctx)
}

// HealthCheckerStub returns Err from HealthCheck.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck reports the configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

var (
	_ repository.DonationRepository = (*DonationRepositoryStub)(nil)
	_ repository.HealthChecker      = HealthCheckerStub{}
)
