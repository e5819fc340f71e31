package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// run starts app and blocks until ctx is cancelled or app requests shutdown.
func run(ctx context.Context, app *fx.App) error {
	startCtx, cancelStart := context.WithTimeout(ctx, app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	var sig fx.ShutdownSignal
	select {
	case <-ctx.Done():
	case sig = <-app.Wait():
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop application: %w", err)
	}
	if sig.ExitCode != 0 {
		return fmt.Errorf("application exited with code %d", sig.ExitCode)
	}
	return nil
}
