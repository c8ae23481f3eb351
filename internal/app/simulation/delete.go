package simulation

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"ecosim/internal/app/ports"
)

// WorldCloser is notified when a world goes away, e.g. to hang up stream
// subscribers.
type WorldCloser interface {
	CloseWorld(worldID string)
}

type DeleteUseCase struct {
	Worlds    ports.WorldRegistry
	TurnLog   ports.TurnLogRepository
	TxManager ports.TxManager
	Closer    WorldCloser
}

func (u DeleteUseCase) Execute(ctx context.Context, req DeleteRequest) error {
	id := strings.TrimSpace(req.WorldID)
	if id == "" {
		return ErrInvalidRequest
	}
	if err := u.Worlds.Delete(ctx, id); err != nil {
		return err
	}
	if u.Closer != nil {
		u.Closer.CloseWorld(id)
	}
	if req.PurgeLog {
		if err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
			return u.TurnLog.DeleteByWorldID(txCtx, id)
		}); err != nil {
			return err
		}
	}
	hlog.CtxInfof(ctx, "simulation: deleted world %s (purge_log=%v)", id, req.PurgeLog)
	return nil
}

type ListUseCase struct {
	Worlds ports.WorldRegistry
}

func (u ListUseCase) Execute(ctx context.Context) (ListResponse, error) {
	metas, err := u.Worlds.List(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	out := ListResponse{Worlds: make([]WorldSummary, 0, len(metas))}
	for _, m := range metas {
		out.Worlds = append(out.Worlds, WorldSummary{
			WorldID:   m.ID,
			Name:      m.Name,
			Seed:      m.Seed,
			CreatedAt: m.CreatedAt.Unix(),
		})
	}
	return out, nil
}
