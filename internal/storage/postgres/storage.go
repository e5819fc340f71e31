package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/pawshope/internal/domain/errors"
	"github.com/polkiloo/pawshope/internal/domain/model"
	"github.com/polkiloo/pawshope/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage is a donation ledger backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type donationRepository struct {
	storage *Storage
}

// New connects to database and bootstraps schema.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Donations returns ledger repository.
func (s *Storage) Donations() repository.DonationRepository {
	return &donationRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS donations (
            id TEXT PRIMARY KEY,
            amount NUMERIC NOT NULL,
            currency TEXT NOT NULL,
            frequency TEXT NOT NULL,
            donor_first_name TEXT NOT NULL DEFAULT '',
            donor_last_name TEXT NOT NULL DEFAULT '',
            donor_email TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            captured_at TIMESTAMPTZ,
            processor_transaction_id TEXT,
            exclusive_donor BOOLEAN NOT NULL DEFAULT FALSE
        )`,
		`CREATE INDEX IF NOT EXISTS idx_donations_created ON donations(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const donationColumns = `id, amount, currency, frequency, donor_first_name, donor_last_name, donor_email,
                         payment_method, status, created_at, captured_at, processor_transaction_id, exclusive_donor`

func (r *donationRepository) Put(ctx context.Context, d model.Donation) error {
	const query = `INSERT INTO donations (` + donationColumns + `)
                   VALUES ($1, $2::numeric, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
                   ON CONFLICT (id) DO UPDATE SET
                       status = EXCLUDED.status,
                       captured_at = EXCLUDED.captured_at,
                       processor_transaction_id = EXCLUDED.processor_transaction_id,
                       exclusive_donor = EXCLUDED.exclusive_donor`
	var txID *string
	if d.ProcessorTransactionID != "" {
		txID = &d.ProcessorTransactionID
	}
	_, err := r.storage.pool.Exec(ctx, query,
		d.ID, d.Amount.String(), d.Currency, string(d.Frequency),
		d.Donor.FirstName, d.Donor.LastName, d.Donor.Email,
		string(d.PaymentMethod), string(d.Status), d.CreatedAt, d.CapturedAt, txID, d.ExclusiveDonor,
	)
	if err != nil {
		return fmt.Errorf("put donation %s: %w", d.ID, err)
	}
	return nil
}

func (r *donationRepository) Get(ctx context.Context, id string) (*model.Donation, error) {
	query := `SELECT ` + selectColumns + ` FROM donations WHERE id=$1`
	d, err := scanDonation(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *donationRepository) List(ctx context.Context) ([]model.Donation, error) {
	query := `SELECT ` + selectColumns + ` FROM donations ORDER BY created_at, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Donation{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *donationRepository) Summarize(ctx context.Context) (model.DonationSummary, error) {
	const query = `SELECT COUNT(*),
                          COUNT(*) FILTER (WHERE status = 'COMPLETED'),
                          COALESCE(SUM(amount) FILTER (WHERE status = 'COMPLETED'), 0)::text
                   FROM donations`
	summary := model.DonationSummary{Currency: model.DefaultCurrency}
	var count, completed int64
	var total string
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&count, &completed, &total); err != nil {
		return model.DonationSummary{}, fmt.Errorf("summarize donations: %w", err)
	}
	amount, err := decimal.NewFromString(total)
	if err != nil {
		return model.DonationSummary{}, fmt.Errorf("parse donations total: %w", err)
	}
	summary.Count = int(count)
	summary.CompletedCount = int(completed)
	summary.CompletedTotal = amount
	return summary, nil
}

func scanDonation(row pgx.Row) (*model.Donation, error) {
	var (
		d          model.Donation
		amount     string
		frequency  string
		method     string
		status     string
		capturedAt *time.Time
		txID       *string
	)
	err := row.Scan(&d.ID, &amount, &d.Currency, &frequency, &d.Donor.FirstName, &d.Donor.LastName, &d.Donor.Email,
		&method, &status, &d.CreatedAt, &capturedAt, &txID, &d.ExclusiveDonor)
	if err != nil {
		return nil, err
	}
	if d.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse amount for %s: %w", d.ID, err)
	}
	d.Frequency = model.Frequency(frequency)
	d.PaymentMethod = model.PaymentMethod(method)
	d.Status = model.DonationStatus(status)
	d.CapturedAt = capturedAt
	if txID != nil {
		d.ProcessorTransactionID = *txID
	}
	return &d, nil
}

// selectColumns mirrors donationColumns with amount rendered as text to keep decimal precision.
const selectColumns = `id, amount::text, currency, frequency, donor_first_name, donor_last_name, donor_email,
                       payment_method, status, created_at, captured_at, processor_transaction_id, exclusive_donor`

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
