package status

import (
	"context"
	"errors"
	"strings"

	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Worlds ports.WorldRegistry
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.WorldID) == "" {
		return Response{}, ErrInvalidRequest
	}
	meta, err := u.Worlds.Meta(ctx, req.WorldID)
	if err != nil {
		return Response{}, err
	}
	var snap ecology.Snapshot
	if err := u.Worlds.View(ctx, req.WorldID, func(w *ecology.World) error {
		snap = w.Snapshot()
		return nil
	}); err != nil {
		return Response{}, err
	}
	return summarize(meta, snap), nil
}

func summarize(meta ports.WorldMeta, snap ecology.Snapshot) Response {
	out := Response{
		WorldID:     meta.ID,
		Name:        meta.Name,
		Turn:        snap.Turn,
		Policy:      string(snap.Policy),
		Population:  snap.Population(),
		TotalEnergy: snap.TotalEnergy(),
		ByKind:      map[string]Group{},
	}
	for _, sp := range snap.Census {
		if !sp.Kind.HasEnergy() {
			continue
		}
		g := out.ByKind[sp.Kind.String()]
		g.Count += sp.Count
		g.Energy += sp.Energy
		out.ByKind[sp.Kind.String()] = g
	}
	for k, g := range out.ByKind {
		if g.Count > 0 {
			g.AverageEnergy = g.Energy / float64(g.Count)
		}
		out.ByKind[k] = g
	}
	out.Extinct = out.Population == 0
	return out
}
