package observe

import (
	"context"
	"errors"
	"strings"

	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"
)

var ErrInvalidRequest = errors.New("invalid observe request")

type UseCase struct {
	Worlds ports.WorldRegistry
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.WorldID = strings.TrimSpace(req.WorldID)
	if req.WorldID == "" {
		return Response{}, ErrInvalidRequest
	}
	meta, err := u.Worlds.Meta(ctx, req.WorldID)
	if err != nil {
		return Response{}, err
	}
	out := Response{WorldID: meta.ID, Name: meta.Name}
	err = u.Worlds.View(ctx, req.WorldID, func(w *ecology.World) error {
		out.Snapshot = w.Snapshot()
		if req.Separator != "" {
			out.Rendered = w.Render(req.Separator)
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

// Snapshot adapts the use case to the stream hub's initial-snapshot hook.
func (u UseCase) Snapshot(ctx context.Context, worldID string) (ecology.Snapshot, error) {
	out, err := u.Execute(ctx, Request{WorldID: worldID})
	return out.Snapshot, err
}
