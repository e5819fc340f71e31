package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/pawshope/internal/config"
	"github.com/polkiloo/pawshope/internal/domain/repository"
	"github.com/polkiloo/pawshope/internal/storage/memory"
	"github.com/polkiloo/pawshope/internal/storage/postgres"
)

func newApp(t *testing.T, cfg *config.Config, out *repository.DonationRepository, health *repository.HealthChecker) *fxtest.App {
	t.Helper()
	return fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(func() context.Context { return context.Background() }),
		fx.Supply(slog.New(slog.NewJSONHandler(io.Discard, nil))),
		Module,
		fx.Populate(out, health),
	)
}

func TestModuleFallsBackToMemory(t *testing.T) {
	var repo repository.DonationRepository
	var health repository.HealthChecker
	app := newApp(t, &config.Config{}, &repo, &health)
	app.RequireStart()
	defer app.RequireStop()

	if _, ok := repo.(*memory.Ledger); !ok {
		t.Fatalf("expected memory ledger, got %T", repo)
	}
	if health != repo.(repository.HealthChecker) {
		t.Fatal("expected ledger to report its own health")
	}
	if err := health.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected health error: %v", err)
	}
}

func TestModuleUsesPostgresWhenConfigured(t *testing.T) {
	orig := openPostgres
	t.Cleanup(func() { openPostgres = orig })

	var gotDSN string
	openPostgres = func(_ context.Context, dsn string, _ *slog.Logger) (*postgres.Storage, error) {
		gotDSN = dsn
		return &postgres.Storage{}, nil
	}

	var repo repository.DonationRepository
	var health repository.HealthChecker
	app := newApp(t, &config.Config{DatabaseURI: "postgres://stub"}, &repo, &health)
	app.RequireStart()
	app.RequireStop()

	if gotDSN != "postgres://stub" {
		t.Fatalf("unexpected dsn %q", gotDSN)
	}
	if _, ok := repo.(*memory.Ledger); ok {
		t.Fatal("expected postgres repository")
	}
	if _, ok := health.(*postgres.Storage); !ok {
		t.Fatalf("expected postgres health checker, got %T", health)
	}
}

func TestModulePropagatesOpenError(t *testing.T) {
	orig := openPostgres
	t.Cleanup(func() { openPostgres = orig })
	openPostgres = func(context.Context, string, *slog.Logger) (*postgres.Storage, error) {
		return nil, errors.New("boom")
	}

	var repo repository.DonationRepository
	app := fx.New(
		fx.NopLogger,
		fx.Supply(&config.Config{DatabaseURI: "postgres://stub"}),
		fx.Provide(func() context.Context { return context.Background() }),
		fx.Supply(slog.New(slog.NewJSONHandler(io.Discard, nil))),
		Module,
		fx.Populate(&repo),
	)
	if app.Err() == nil {
		t.Fatal("expected graph error")
	}
}
