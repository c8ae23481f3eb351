package simulation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"
)

var ErrInvalidRequest = errors.New("invalid simulation request")

type CreateUseCase struct {
	Worlds    ports.WorldRegistry
	TurnLog   ports.TurnLogRepository
	TxManager ports.TxManager
	Scenarios ports.ScenarioLibrary
	Now       func() time.Time
	NewSeed   func() uint64
}

func (u CreateUseCase) Execute(ctx context.Context, req CreateRequest) (CreateResponse, error) {
	sc, err := u.resolveScenario(ctx, req)
	if err != nil {
		return CreateResponse{}, err
	}

	seed := u.seed(req.Seed, sc)
	w, err := ecology.New(sc.Config(ecology.NewRand(seed)))
	if err != nil {
		return CreateResponse{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	now := nowFunc(u.Now)()
	meta, err := u.Worlds.Create(ctx, ports.WorldMeta{Name: sc.Name, Seed: seed, CreatedAt: now}, w)
	if err != nil {
		return CreateResponse{}, err
	}

	snap := w.Snapshot()
	genesis := ports.NewTurnRecord(meta.ID, ecology.TurnReport{}, snap, now)
	if err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.TurnLog.Append(txCtx, []ports.TurnRecord{genesis})
	}); err != nil {
		hlog.CtxWarnf(ctx, "simulation: record genesis of world %s: %v", meta.ID, err)
	}
	hlog.CtxInfof(ctx, "simulation: created world %s (%s, %dx%d, policy=%s, seed=%d)",
		meta.ID, meta.Name, snap.Width, snap.Height, snap.Policy, seed)

	return CreateResponse{WorldID: meta.ID, Name: meta.Name, Seed: seed, Snapshot: snap}, nil
}

func (u CreateUseCase) resolveScenario(ctx context.Context, req CreateRequest) (ports.Scenario, error) {
	sources := 0
	for _, set := range []bool{len(req.Rows) > 0, strings.TrimSpace(req.ScenarioSource) != "", strings.TrimSpace(req.ScenarioName) != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return ports.Scenario{}, fmt.Errorf("%w: exactly one of rows, scenario or scenario_name is required", ErrInvalidRequest)
	}

	var (
		sc  ports.Scenario
		err error
	)
	switch {
	case len(req.Rows) > 0:
		sc, err = scenarioFromRows(req)
	case u.Scenarios == nil:
		return ports.Scenario{}, fmt.Errorf("%w: scenarios are not available", ErrInvalidRequest)
	case req.ScenarioName != "":
		sc, err = u.Scenarios.Load(ctx, strings.TrimSpace(req.ScenarioName))
	default:
		sc, err = u.Scenarios.Parse("request", req.ScenarioSource)
	}
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return ports.Scenario{}, err
		}
		if errors.Is(err, ports.ErrInvalidInput) || errors.Is(err, ecology.ErrConfiguration) {
			return ports.Scenario{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		return ports.Scenario{}, err
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		sc.Name = name
	}
	return sc, nil
}

func scenarioFromRows(req CreateRequest) (ports.Scenario, error) {
	legend, err := ecology.ParseLegend(req.Legend)
	if err != nil {
		return ports.Scenario{}, err
	}
	policy, ok := ecology.ParsePolicy(req.Policy)
	if !ok {
		return ports.Scenario{}, fmt.Errorf("%w: unknown policy %q", ecology.ErrConfiguration, req.Policy)
	}
	return ports.Scenario{Name: "custom", Policy: policy, Legend: legend, Map: req.Rows}, nil
}

func (u CreateUseCase) seed(requested *uint64, sc ports.Scenario) uint64 {
	switch {
	case requested != nil:
		return *requested
	case sc.HasSeed:
		return sc.Seed
	case u.NewSeed != nil:
		return u.NewSeed()
	default:
		return uint64(nowFunc(u.Now)().UnixNano())
	}
}

func nowFunc(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
