package repository

import (
	"context"

	"github.com/polkiloo/pawshope/internal/domain/model"
)

// DonationRepository is the donation ledger. Implementations must be safe for concurrent use.
type DonationRepository interface {
	// Put inserts donation or overwrites the record with the same ID.
	Put(ctx context.Context, donation model.Donation) error
	// Get returns a copy of the stored record or errors.ErrNotFound.
	Get(ctx context.Context, id string) (*model.Donation, error)
	// List returns all records in creation order.
	List(ctx context.Context) ([]model.Donation, error)
	// Summarize aggregates all records without modifying them.
	Summarize(ctx context.Context) (model.DonationSummary, error)
}

// HealthChecker reports whether the ledger backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
