package inmemory

import (
	"sync"

	"ecosim/internal/domain/ecology"
)

type Snapshot struct {
	TurnTotal     uint64            `json:"turn_total"`
	TurnConflict  uint64            `json:"turn_conflict"`
	TurnFailure   uint64            `json:"turn_failure"`
	EntityActions uint64            `json:"entity_actions"`
	ByOutcome     map[string]uint64 `json:"by_outcome"`
}

type Recorder struct {
	mu        sync.Mutex
	turns     uint64
	conflict  uint64
	failure   uint64
	acted     uint64
	byOutcome map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOutcome: map[string]uint64{},
	}
}

func (r *Recorder) RecordTurn(report ecology.TurnReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.turns++
	r.acted += uint64(report.Acted)
	for name, n := range map[string]int{
		"moved":    report.Moved,
		"ate":      report.Ate,
		"grew":     report.Grew,
		"born":     report.Born,
		"died":     report.Died,
		"rejected": report.Rejected,
		"idle":     report.Idle,
	} {
		if n > 0 {
			r.byOutcome[name] += uint64(n)
		}
	}
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		TurnTotal:     r.turns,
		TurnConflict:  r.conflict,
		TurnFailure:   r.failure,
		EntityActions: r.acted,
		ByOutcome:     make(map[string]uint64, len(r.byOutcome)),
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
