package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"
	"ecosim/internal/domain/world"
)

var fixedNow = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

func TestCreateUseCase_FromRows(t *testing.T) {
	reg := newStubRegistry()
	log := &stubTurnLog{}
	uc := CreateUseCase{Worlds: reg, TurnLog: log, TxManager: stubTxManager{}, Now: fixedNow}

	seed := uint64(5)
	out, err := uc.Execute(context.Background(), CreateRequest{
		Name:   "garden",
		Rows:   []string{"###", "#*#", "###"},
		Legend: map[string]string{"#": "wall", "*": "plant"},
		Seed:   &seed,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.WorldID == "" || out.Name != "garden" || out.Seed != 5 {
		t.Fatalf("unexpected response %+v", out)
	}
	if out.Snapshot.Policy != ecology.PolicyEnergy {
		t.Fatalf("expected default energy policy, got %s", out.Snapshot.Policy)
	}
	if len(log.records) != 1 || log.records[0].Turn != 0 || log.records[0].Population != 1 {
		t.Fatalf("expected genesis record, got %+v", log.records)
	}
}

func TestCreateUseCase_FromScenario(t *testing.T) {
	reg := newStubRegistry()
	uc := CreateUseCase{
		Worlds:    reg,
		TurnLog:   &stubTurnLog{},
		TxManager: stubTxManager{},
		Scenarios: stubScenarios{byName: map[string]ports.Scenario{"box": boxScenario}},
		Now:       fixedNow,
	}

	out, err := uc.Execute(context.Background(), CreateRequest{ScenarioName: "box"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Seed != 9 || out.Name != "box" {
		t.Fatalf("expected scenario seed and name, got %+v", out)
	}
	if diff := cmp.Diff(boxScenario.Map, out.Snapshot.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}

	if _, err := uc.Execute(context.Background(), CreateRequest{ScenarioName: "missing"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), CreateRequest{ScenarioSource: "garbage"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for bad source, got %v", err)
	}
}

func TestCreateUseCase_RejectsInvalidInput(t *testing.T) {
	uc := CreateUseCase{Worlds: newStubRegistry(), TurnLog: &stubTurnLog{}, TxManager: stubTxManager{}, NewSeed: func() uint64 { return 1 }}
	cases := map[string]CreateRequest{
		"nothing":      {},
		"two sources":  {Rows: []string{"#"}, ScenarioName: "box", Legend: map[string]string{"#": "wall"}},
		"ragged rows":  {Rows: []string{"##", "#"}, Legend: map[string]string{"#": "wall"}},
		"bad legend":   {Rows: []string{"#"}, Legend: map[string]string{"#": "dragon"}},
		"bad policy":   {Rows: []string{"#"}, Legend: map[string]string{"#": "wall"}, Policy: "chaos"},
		"unknown char": {Rows: []string{"#x"}, Legend: map[string]string{"#": "wall"}},
	}
	for name, req := range cases {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("%s: expected ErrInvalidRequest, got %v", name, err)
		}
	}
}

func TestTurnUseCase_AdvancesLogsAndPublishes(t *testing.T) {
	reg := newStubRegistry()
	log := &stubTurnLog{}
	create := CreateUseCase{Worlds: reg, TurnLog: log, TxManager: stubTxManager{}, Now: fixedNow}
	seed := uint64(1)
	created, err := create.Execute(context.Background(), CreateRequest{
		Rows:   []string{"#* #"},
		Legend: map[string]string{"#": "wall", "*": "plant"},
		Seed:   &seed,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pub := &stubPublisher{}
	metrics := &stubMetrics{}
	uc := TurnUseCase{Worlds: reg, TurnLog: log, TxManager: stubTxManager{}, Publisher: pub, Metrics: metrics, Now: fixedNow}
	out, err := uc.Execute(context.Background(), TurnRequest{WorldID: created.WorldID, Turns: 3})
	if err != nil {
		t.Fatalf("turn: %v", err)
	}
	if len(out.Reports) != 3 || out.Reports[2].Turn != 3 || out.Snapshot.Turn != 3 {
		t.Fatalf("expected three turns, got %+v", out)
	}
	if len(log.records) != 4 || log.records[3].Turn != 3 {
		t.Fatalf("expected genesis plus three records, got %d", len(log.records))
	}
	if len(pub.published) != 1 || pub.published[0].Turn != 3 {
		t.Fatalf("expected final snapshot published once, got %+v", pub.published)
	}
	if metrics.turns != 3 {
		t.Fatalf("expected 3 turns recorded, got %d", metrics.turns)
	}

	out, err = uc.Execute(context.Background(), TurnRequest{WorldID: created.WorldID})
	if err != nil || len(out.Reports) != DefaultTurns {
		t.Fatalf("expected default single turn, got %+v err=%v", out, err)
	}
}

func TestTurnUseCase_Errors(t *testing.T) {
	metrics := &stubMetrics{}
	uc := TurnUseCase{Worlds: newStubRegistry(), TurnLog: &stubTurnLog{}, TxManager: stubTxManager{}, Metrics: metrics}

	for _, req := range []TurnRequest{{}, {WorldID: "w", Turns: -1}, {WorldID: "w", Turns: MaxTurns + 1}} {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("%+v: expected ErrInvalidRequest, got %v", req, err)
		}
	}
	if _, err := uc.Execute(context.Background(), TurnRequest{WorldID: "missing"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if metrics.failures != 0 {
		t.Fatalf("missing world must not count as failure")
	}
}

func TestTurnUseCase_LogFailureDoesNotFailTurn(t *testing.T) {
	reg := newStubRegistry()
	w, err := ecology.New(boxScenario.Config(ecology.NewRand(1)))
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	meta, _ := reg.Create(context.Background(), ports.WorldMeta{}, w)

	metrics := &stubMetrics{}
	uc := TurnUseCase{Worlds: reg, TurnLog: &stubTurnLog{appendErr: errBoom}, TxManager: stubTxManager{}, Metrics: metrics}
	out, err := uc.Execute(context.Background(), TurnRequest{WorldID: meta.ID})
	if err != nil {
		t.Fatalf("expected turn to succeed, got %v", err)
	}
	if out.Snapshot.Turn != 1 || metrics.failures != 1 {
		t.Fatalf("expected advanced world and one recorded failure, got turn=%d failures=%d", out.Snapshot.Turn, metrics.failures)
	}
}

type closerSpy struct{ closed []string }

func (c *closerSpy) CloseWorld(id string) { c.closed = append(c.closed, id) }

func TestDeleteUseCase(t *testing.T) {
	reg := newStubRegistry()
	w, _ := ecology.New(boxScenario.Config(ecology.NewRand(1)))
	meta, _ := reg.Create(context.Background(), ports.WorldMeta{Name: "box"}, w)

	log := &stubTurnLog{}
	spy := &closerSpy{}
	uc := DeleteUseCase{Worlds: reg, TurnLog: log, TxManager: stubTxManager{}, Closer: spy}
	if err := uc.Execute(context.Background(), DeleteRequest{WorldID: meta.ID, PurgeLog: true}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(spy.closed) != 1 || len(log.purged) != 1 {
		t.Fatalf("expected subscribers closed and log purged, got %v %v", spy.closed, log.purged)
	}
	if err := uc.Execute(context.Background(), DeleteRequest{WorldID: meta.ID}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := uc.Execute(context.Background(), DeleteRequest{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}

	list, err := ListUseCase{Worlds: reg}.Execute(context.Background())
	if err != nil || len(list.Worlds) != 0 {
		t.Fatalf("expected empty list, got %+v err=%v", list, err)
	}
}

func TestAutoplay_StepRunsOwedTurns(t *testing.T) {
	reg := newStubRegistry()
	w, err := ecology.New(boxScenario.Config(ecology.NewRand(1)))
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	meta, _ := reg.Create(context.Background(), ports.WorldMeta{}, w)

	start := time.Unix(1000, 0)
	a := &Autoplay{
		Turns:      TurnUseCase{Worlds: reg, TurnLog: &stubTurnLog{}, TxManager: stubTxManager{}},
		Clock:      world.NewClock(world.ClockConfig{StartAt: start, TurnInterval: time.Second}),
		WorldID:    meta.ID,
		MaxBacklog: 5,
	}

	if n, err := a.Step(context.Background(), start.Add(500*time.Millisecond)); err != nil || n != 0 {
		t.Fatalf("expected nothing owed yet, got n=%d err=%v", n, err)
	}
	if n, err := a.Step(context.Background(), start.Add(2*time.Second)); err != nil || n != 2 {
		t.Fatalf("expected 2 turns, got n=%d err=%v", n, err)
	}
	if n, _ := a.Step(context.Background(), start.Add(30*time.Second)); n != 5 {
		t.Fatalf("expected backlog capped at 5, got %d", n)
	}
	if n, _ := a.Step(context.Background(), start.Add(31*time.Second)); n != 1 {
		t.Fatalf("expected forfeited backlog and 1 owed turn, got %d", n)
	}
	if w.TurnCount() != 8 {
		t.Fatalf("expected world at turn 8, got %d", w.TurnCount())
	}

	a.WorldID = "missing"
	if _, err := a.Step(context.Background(), start.Add(40*time.Second)); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
