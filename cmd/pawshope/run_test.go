package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/fx"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	stopped := false
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStop: func(context.Context) error {
				stopped = true
				return nil
			}})
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	if err := run(ctx, app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stopped {
		t.Fatal("expected stop hooks to run")
	}
}

func TestRunReportsShutdownExitCode(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle, s fx.Shutdowner) {
			lc.Append(fx.Hook{OnStart: func(context.Context) error {
				time.AfterFunc(10*time.Millisecond, func() { _ = s.Shutdown(fx.ExitCode(3)) })
				return nil
			}})
		}),
	)

	err := run(context.Background(), app)
	if err == nil || !strings.Contains(err.Error(), "code 3") {
		t.Fatalf("expected exit code error, got %v", err)
	}
}

func TestRunReportsStartFailure(t *testing.T) {
	boom := errors.New("boom")
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStart: func(context.Context) error { return boom }})
		}),
	)

	if err := run(context.Background(), app); !errors.Is(err, boom) {
		t.Fatalf("expected start failure, got %v", err)
	}
}
