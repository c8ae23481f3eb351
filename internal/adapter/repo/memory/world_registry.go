package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"
)

type worldSlot struct {
	mu    sync.Mutex
	meta  ports.WorldMeta
	world *ecology.World
}

// WorldRegistry keeps live worlds in process memory. Each world has its own
// lock so separate worlds advance independently.
type WorldRegistry struct {
	mu     sync.RWMutex
	worlds map[string]*worldSlot
	now    func() time.Time
}

func NewWorldRegistry() *WorldRegistry {
	return &WorldRegistry{worlds: map[string]*worldSlot{}, now: time.Now}
}

func (r *WorldRegistry) Create(_ context.Context, meta ports.WorldMeta, w *ecology.World) (ports.WorldMeta, error) {
	if w == nil {
		return ports.WorldMeta{}, fmt.Errorf("register world: nil world")
	}
	meta.ID = strings.TrimSpace(meta.ID)
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = r.now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.worlds[meta.ID]; exists {
		return ports.WorldMeta{}, fmt.Errorf("world %s: %w", meta.ID, ports.ErrConflict)
	}
	r.worlds[meta.ID] = &worldSlot{meta: meta, world: w}
	return meta, nil
}

func (r *WorldRegistry) slot(id string) (*worldSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.worlds[id]
	if !ok {
		return nil, fmt.Errorf("world %s: %w", id, ports.ErrNotFound)
	}
	return s, nil
}

func (r *WorldRegistry) Update(ctx context.Context, id string, fn func(w *ecology.World) error) error {
	s, err := r.slot(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.world)
}

func (r *WorldRegistry) View(ctx context.Context, id string, fn func(w *ecology.World) error) error {
	return r.Update(ctx, id, fn)
}

func (r *WorldRegistry) Meta(_ context.Context, id string) (ports.WorldMeta, error) {
	s, err := r.slot(id)
	if err != nil {
		return ports.WorldMeta{}, err
	}
	return s.meta, nil
}

func (r *WorldRegistry) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.worlds[id]; !ok {
		return fmt.Errorf("world %s: %w", id, ports.ErrNotFound)
	}
	delete(r.worlds, id)
	return nil
}

func (r *WorldRegistry) List(_ context.Context) ([]ports.WorldMeta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ports.WorldMeta, 0, len(r.worlds))
	for _, s := range r.worlds {
		out = append(out, s.meta)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
