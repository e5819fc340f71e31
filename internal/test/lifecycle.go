package test

import (
	"context"
	"sync/atomic"

	"go.uber.org/fx"
)

// LifecycleRecorder is an fx.Lifecycle that runs hooks on demand.
// Like fx, Stop only unwinds hooks whose OnStart succeeded.
type LifecycleRecorder struct {
	Hooks   []fx.Hook
	started int
}

func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

func (l *LifecycleRecorder) Start(ctx context.Context) error {
	for l.started < len(l.Hooks) {
		if h := l.Hooks[l.started]; h.OnStart != nil {
			if err := h.OnStart(ctx); err != nil {
				return err
			}
		}
		l.started++
	}
	return nil
}

func (l *LifecycleRecorder) Stop(ctx context.Context) error {
	for ; l.started > 0; l.started-- {
		if h := l.Hooks[l.started-1]; h.OnStop != nil {
			if err := h.OnStop(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// ShutdownerStub counts shutdown requests and optionally signals Called.
type ShutdownerStub struct {
	Called chan struct{}
	calls  atomic.Int32
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	s.calls.Add(1)
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}

// Calls reports how many times Shutdown was requested.
func (s *ShutdownerStub) Calls() int {
	return int(s.calls.Load())
}
