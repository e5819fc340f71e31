package memory

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/pawshope/internal/domain/errors"
	"github.com/polkiloo/pawshope/internal/domain/model"
	"github.com/polkiloo/pawshope/internal/domain/repository"
)

// Ledger keeps donations in process memory. Contents are lost on restart.
type Ledger struct {
	mu    sync.RWMutex
	items map[string]model.Donation
	order []string
}

// New creates empty Ledger.
func New() *Ledger {
	return &Ledger{items: make(map[string]model.Donation)}
}

func (l *Ledger) Put(_ context.Context, donation model.Donation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.items[donation.ID]; !exists {
		l.order = append(l.order, donation.ID)
	}
	l.items[donation.ID] = donation.Clone()
	return nil
}

func (l *Ledger) Get(_ context.Context, id string) (*model.Donation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	donation, ok := l.items[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	clone := donation.Clone()
	return &clone, nil
}

func (l *Ledger) List(_ context.Context) ([]model.Donation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]model.Donation, 0, len(l.order))
	for _, id := range l.order {
		result = append(result, l.items[id].Clone())
	}
	return result, nil
}

func (l *Ledger) Summarize(ctx context.Context) (model.DonationSummary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	donations := make([]model.Donation, 0, len(l.items))
	for _, d := range l.items {
		donations = append(donations, d)
	}
	return model.Summarize(donations), nil
}

var (
	_ repository.DonationRepository = (*Ledger)(nil)
	_ repository.HealthChecker      = (*Ledger)(nil)
)

// HealthCheck always succeeds for the in-process ledger.
func (l *Ledger) HealthCheck(context.Context) error {
	return nil
}
