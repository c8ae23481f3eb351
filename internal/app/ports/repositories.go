package ports

import (
	"context"
	"time"

	"ecosim/internal/domain/ecology"
)

// TurnRecord is one line of a world's audit trail. Turn 0 is the state the
// world was created in.
type TurnRecord struct {
	WorldID     string             `json:"world_id"`
	Turn        int64              `json:"turn"`
	Report      ecology.TurnReport `json:"report"`
	Population  int                `json:"population"`
	TotalEnergy float64            `json:"total_energy"`
	Rows        []string           `json:"rows"`
	RecordedAt  time.Time          `json:"recorded_at"`
}

type TurnLogRepository interface {
	Append(ctx context.Context, records []TurnRecord) error
	// ListByWorldID returns records newest first; limit <= 0 means all.
	ListByWorldID(ctx context.Context, worldID string, limit int) ([]TurnRecord, error)
	DeleteByWorldID(ctx context.Context, worldID string) error
}

func NewTurnRecord(worldID string, report ecology.TurnReport, snap ecology.Snapshot, at time.Time) TurnRecord {
	return TurnRecord{
		WorldID:     worldID,
		Turn:        snap.Turn,
		Report:      report,
		Population:  snap.Population(),
		TotalEnergy: snap.TotalEnergy(),
		Rows:        snap.Rows,
		RecordedAt:  at,
	}
}
