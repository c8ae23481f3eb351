package ports

import (
	"context"
	"time"

	"ecosim/internal/domain/ecology"
)

type WorldMeta struct {
	ID        string
	Name      string
	Seed      uint64
	CreatedAt time.Time
}

// WorldRegistry owns live worlds. A world is only touched inside Update or
// View, which serialize access per world.
type WorldRegistry interface {
	Create(ctx context.Context, meta WorldMeta, w *ecology.World) (WorldMeta, error)
	Update(ctx context.Context, id string, fn func(w *ecology.World) error) error
	View(ctx context.Context, id string, fn func(w *ecology.World) error) error
	Meta(ctx context.Context, id string) (WorldMeta, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]WorldMeta, error)
}
