package simulation

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"
)

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubRegistry struct {
	seq    int
	metas  map[string]ports.WorldMeta
	worlds map[string]*ecology.World
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{metas: map[string]ports.WorldMeta{}, worlds: map[string]*ecology.World{}}
}

func (r *stubRegistry) Create(_ context.Context, meta ports.WorldMeta, w *ecology.World) (ports.WorldMeta, error) {
	r.seq++
	meta.ID = fmt.Sprintf("world-%d", r.seq)
	r.metas[meta.ID] = meta
	r.worlds[meta.ID] = w
	return meta, nil
}

func (r *stubRegistry) Update(_ context.Context, id string, fn func(w *ecology.World) error) error {
	w, ok := r.worlds[id]
	if !ok {
		return ports.ErrNotFound
	}
	return fn(w)
}

func (r *stubRegistry) View(ctx context.Context, id string, fn func(w *ecology.World) error) error {
	return r.Update(ctx, id, fn)
}

func (r *stubRegistry) Meta(_ context.Context, id string) (ports.WorldMeta, error) {
	m, ok := r.metas[id]
	if !ok {
		return ports.WorldMeta{}, ports.ErrNotFound
	}
	return m, nil
}

func (r *stubRegistry) Delete(_ context.Context, id string) error {
	if _, ok := r.worlds[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.worlds, id)
	delete(r.metas, id)
	return nil
}

func (r *stubRegistry) List(_ context.Context) ([]ports.WorldMeta, error) {
	out := make([]ports.WorldMeta, 0, len(r.metas))
	for _, m := range r.metas {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type stubTurnLog struct {
	records   []ports.TurnRecord
	appendErr error
	purged    []string
}

func (l *stubTurnLog) Append(_ context.Context, records []ports.TurnRecord) error {
	if l.appendErr != nil {
		return l.appendErr
	}
	l.records = append(l.records, records...)
	return nil
}

func (l *stubTurnLog) ListByWorldID(_ context.Context, worldID string, limit int) ([]ports.TurnRecord, error) {
	var out []ports.TurnRecord
	for i := len(l.records) - 1; i >= 0; i-- {
		if l.records[i].WorldID == worldID && (limit <= 0 || len(out) < limit) {
			out = append(out, l.records[i])
		}
	}
	if len(out) == 0 {
		return nil, ports.ErrNotFound
	}
	return out, nil
}

func (l *stubTurnLog) DeleteByWorldID(_ context.Context, worldID string) error {
	l.purged = append(l.purged, worldID)
	return nil
}

type stubPublisher struct {
	published []ecology.Snapshot
}

func (p *stubPublisher) Publish(_ context.Context, _ string, snap ecology.Snapshot) error {
	p.published = append(p.published, snap)
	return nil
}

type stubMetrics struct {
	turns    int
	failures int
	conflict int
}

func (m *stubMetrics) RecordTurn(ecology.TurnReport) { m.turns++ }
func (m *stubMetrics) RecordConflict()               { m.conflict++ }
func (m *stubMetrics) RecordFailure()                { m.failures++ }

type stubScenarios struct {
	byName map[string]ports.Scenario
}

func (s stubScenarios) Names(context.Context) ([]string, error) {
	out := make([]string, 0, len(s.byName))
	for n := range s.byName {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

func (s stubScenarios) Source(_ context.Context, name string) ([]byte, error) {
	if _, ok := s.byName[name]; !ok {
		return nil, ports.ErrNotFound
	}
	return []byte(name), nil
}

func (s stubScenarios) Load(_ context.Context, name string) (ports.Scenario, error) {
	sc, ok := s.byName[name]
	if !ok {
		return ports.Scenario{}, ports.ErrNotFound
	}
	return sc, nil
}

func (s stubScenarios) Parse(_, src string) (ports.Scenario, error) {
	if sc, ok := s.byName[src]; ok {
		return sc, nil
	}
	return ports.Scenario{}, fmt.Errorf("%w: cannot parse", ports.ErrInvalidInput)
}

var errBoom = errors.New("boom")

var boxScenario = ports.Scenario{
	Name:    "box",
	Policy:  ecology.PolicyEnergy,
	Seed:    9,
	HasSeed: true,
	Legend:  ecology.Legend{'#': ecology.KindWall, '*': ecology.KindPlant},
	Map:     []string{"####", "#* #", "####"},
}
