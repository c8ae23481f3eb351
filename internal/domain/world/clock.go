package world

import "time"

// ClockConfig paces an auto-advancing world: one turn every TurnInterval
// after StartAt.
type ClockConfig struct {
	StartAt      time.Time
	TurnInterval time.Duration
}

type Clock struct {
	cfg ClockConfig
}

func NewClock(cfg ClockConfig) Clock {
	if cfg.TurnInterval <= 0 {
		cfg.TurnInterval = time.Second
	}
	if cfg.StartAt.IsZero() {
		cfg.StartAt = time.Unix(0, 0)
	}
	return Clock{cfg: cfg}
}

func (c Clock) Interval() time.Duration {
	return c.cfg.TurnInterval
}

// TurnsDue returns how many turns should have run by now and the time left
// until the next one.
func (c Clock) TurnsDue(now time.Time) (int64, time.Duration) {
	elapsed := now.Sub(c.cfg.StartAt)
	if elapsed < 0 {
		return 0, -elapsed + c.cfg.TurnInterval
	}
	due := int64(elapsed / c.cfg.TurnInterval)
	return due, c.cfg.TurnInterval - elapsed%c.cfg.TurnInterval
}

// Backlog caps the number of turns to run now so that a stalled ticker does
// not try to replay an unbounded gap in one step.
func (c Clock) Backlog(now time.Time, done int64, max int) int {
	due, _ := c.TurnsDue(now)
	owed := due - done
	if owed <= 0 {
		return 0
	}
	if max > 0 && owed > int64(max) {
		return max
	}
	return int(owed)
}
