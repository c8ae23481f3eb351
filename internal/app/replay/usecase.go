package replay

import (
	"context"
	"errors"
	"strings"

	"ecosim/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const MaxLimit = 1000

type UseCase struct {
	TurnLog ports.TurnLogRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.WorldID) == "" || req.Limit < 0 || req.Limit > MaxLimit {
		return Response{}, ErrInvalidRequest
	}
	if req.FromTurn < 0 || req.ToTurn < 0 || (req.ToTurn > 0 && req.FromTurn > req.ToTurn) {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if req.FromTurn > 0 || req.ToTurn > 0 {
		// window filtering happens here, so the limit applies afterwards
		limit = 0
	}
	records, err := u.TurnLog.ListByWorldID(ctx, req.WorldID, limit)
	if err != nil {
		return Response{}, err
	}
	out := Response{}
	if len(records) > 0 {
		out.LatestRows = records[0].Rows
		out.LatestTurn = records[0].Turn
	}
	records = filterByTurnWindow(records, req.FromTurn, req.ToTurn)
	if req.Limit > 0 && len(records) > req.Limit {
		records = records[:req.Limit]
	}
	out.Records = records
	return out, nil
}

func filterByTurnWindow(records []ports.TurnRecord, from, to int64) []ports.TurnRecord {
	if from <= 0 && to <= 0 {
		return records
	}
	out := make([]ports.TurnRecord, 0, len(records))
	for _, rec := range records {
		if from > 0 && rec.Turn < from {
			continue
		}
		if to > 0 && rec.Turn > to {
			continue
		}
		out = append(out, rec)
	}
	return out
}
