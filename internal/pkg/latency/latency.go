package latency

import (
	"context"
	"time"
)

// Simulator stands in for the network round-trip of the eventual backend.
// Every service operation waits on it exactly once before touching the
// store, so a cancelled wait never leaves a partial mutation.
type Simulator struct {
	Fetch    time.Duration
	List     time.Duration
	Mutation time.Duration
}

// Default matches the delays the UI mock layer was tuned against.
func Default() Simulator {
	return Simulator{
		Fetch:    300 * time.Millisecond,
		List:     500 * time.Millisecond,
		Mutation: 500 * time.Millisecond,
	}
}

// None disables all delays; used by tests.
func None() Simulator {
	return Simulator{}
}

func (s Simulator) WaitFetch(ctx context.Context) error {
	return wait(ctx, s.Fetch)
}

func (s Simulator) WaitList(ctx context.Context) error {
	return wait(ctx, s.List)
}

func (s Simulator) WaitMutation(ctx context.Context) error {
	return wait(ctx, s.Mutation)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
