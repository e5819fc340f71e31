package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/pawshope/internal/config"
	"github.com/polkiloo/pawshope/internal/domain/repository"
	"github.com/polkiloo/pawshope/internal/storage/memory"
	"github.com/polkiloo/pawshope/internal/storage/postgres"
)

// Module wires the donation ledger. PostgreSQL is used when a DSN is configured.
var Module = fx.Provide(newDonationRepository)

type params struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

var openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (*postgres.Storage, error) {
	return postgres.New(ctx, dsn, logger)
}

type result struct {
	fx.Out

	Repo   repository.DonationRepository
	Health repository.HealthChecker
}

func newDonationRepository(p params) (result, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory donation ledger")
		ledger := memory.New()
		return result{Repo: ledger, Health: ledger}, nil
	}

	st, err := openPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return result{}, err
	}
	p.Logger.Info("using postgres donation ledger")
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			st.Close()
			return nil
		},
	})
	return result{Repo: st.Donations(), Health: st}, nil
}
