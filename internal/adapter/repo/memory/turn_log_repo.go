package memory

import (
	"context"
	"sort"

	"ecosim/internal/app/ports"
)

type TurnLogRepo struct {
	store *Store
}

func NewTurnLogRepo(store *Store) TurnLogRepo {
	return TurnLogRepo{store: store}
}

func (r TurnLogRepo) Append(ctx context.Context, records []ports.TurnRecord) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	for _, rec := range records {
		rec.Rows = append([]string(nil), rec.Rows...)
		r.store.turns[rec.WorldID] = append(r.store.turns[rec.WorldID], rec)
	}
	return nil
}

func (r TurnLogRepo) ListByWorldID(ctx context.Context, worldID string, limit int) ([]ports.TurnRecord, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	all, ok := r.store.turns[worldID]
	if !ok || len(all) == 0 {
		return nil, ports.ErrNotFound
	}
	// newest insertion first, then by turn, matching ORDER BY turn DESC, id DESC
	out := make([]ports.TurnRecord, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Turn > out[j].Turn })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// DeleteByWorldID drops a world's log.
func (r TurnLogRepo) DeleteByWorldID(ctx context.Context, worldID string) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	delete(r.store.turns, worldID)
	return nil
}
