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

const (
	DefaultTurns = 1
	MaxTurns     = 500
)

type TurnUseCase struct {
	Worlds    ports.WorldRegistry
	TurnLog   ports.TurnLogRepository
	TxManager ports.TxManager
	Publisher ports.SnapshotPublisher
	Metrics   ports.TurnMetrics
	Now       func() time.Time
}

// Execute advances one world by req.Turns turns while holding the world's
// registry lock, then logs and publishes the result.
func (u TurnUseCase) Execute(ctx context.Context, req TurnRequest) (TurnResponse, error) {
	req.WorldID = strings.TrimSpace(req.WorldID)
	if req.Turns == 0 {
		req.Turns = DefaultTurns
	}
	if req.WorldID == "" || req.Turns < 0 || req.Turns > MaxTurns {
		return TurnResponse{}, ErrInvalidRequest
	}

	out := TurnResponse{WorldID: req.WorldID}
	var records []ports.TurnRecord
	err := u.Worlds.Update(ctx, req.WorldID, func(w *ecology.World) error {
		now := nowFunc(u.Now)()
		out.Reports = make([]ecology.TurnReport, 0, req.Turns)
		records = make([]ports.TurnRecord, 0, req.Turns)
		for i := 0; i < req.Turns; i++ {
			report := w.Turn()
			out.Reports = append(out.Reports, report)
			records = append(records, ports.NewTurnRecord(req.WorldID, report, w.Snapshot(), now))
		}
		out.Snapshot = w.Snapshot()
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else if !errors.Is(err, ports.ErrNotFound) {
				u.Metrics.RecordFailure()
			}
		}
		return TurnResponse{}, fmt.Errorf("advance world %s: %w", req.WorldID, err)
	}

	if u.Metrics != nil {
		for _, r := range out.Reports {
			u.Metrics.RecordTurn(r)
		}
	}
	if err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.TurnLog.Append(txCtx, records)
	}); err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		hlog.CtxWarnf(ctx, "simulation: append %d turn records for world %s: %v", len(records), req.WorldID, err)
	}
	if u.Publisher != nil {
		if err := u.Publisher.Publish(ctx, req.WorldID, out.Snapshot); err != nil {
			hlog.CtxWarnf(ctx, "simulation: publish world %s: %v", req.WorldID, err)
		}
	}
	return out, nil
}
