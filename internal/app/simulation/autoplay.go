package simulation

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"ecosim/internal/domain/world"
)

// DefaultMaxBacklog bounds how many turns one tick may run to catch up.
const DefaultMaxBacklog = 10

// Autoplay advances one world on a wall-clock schedule.
type Autoplay struct {
	Turns      TurnUseCase
	Clock      world.Clock
	WorldID    string
	MaxBacklog int
	Now        func() time.Time

	done int64
}

// Step runs the turns owed at now and returns how many ran.
func (a *Autoplay) Step(ctx context.Context, now time.Time) (int, error) {
	max := a.MaxBacklog
	if max <= 0 {
		max = DefaultMaxBacklog
	}
	owed := a.Clock.Backlog(now, a.done, max)
	if owed == 0 {
		return 0, nil
	}
	if _, err := a.Turns.Execute(ctx, TurnRequest{WorldID: a.WorldID, Turns: owed}); err != nil {
		return 0, err
	}
	// turns skipped by the backlog cap are forfeited
	due, _ := a.Clock.TurnsDue(now)
	a.done = due
	return owed, nil
}

// Run ticks until ctx is done or the world disappears.
func (a *Autoplay) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.Clock.Interval())
	defer ticker.Stop()
	now := nowFunc(a.Now)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := a.Step(ctx, now()); err != nil {
				hlog.CtxWarnf(ctx, "simulation: autoplay world %s stopped: %v", a.WorldID, err)
				return err
			}
		}
	}
}
