package gormrepo

import (
	"context"
	"strings"

	"ecosim/internal/adapter/repo/gorm/model"
	"ecosim/internal/app/ports"
	"ecosim/internal/domain/ecology"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const rowSeparator = "\n"

type TurnLogRepo struct {
	db *gorm.DB
}

func NewTurnLogRepo(db *gorm.DB) TurnLogRepo {
	return TurnLogRepo{db: db}
}

func (r TurnLogRepo) Append(ctx context.Context, records []ports.TurnRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]model.TurnRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toModel(rec))
	}
	return getDBFromCtx(ctx, r.db).WithContext(ctx).Create(&rows).Error
}

func (r TurnLogRepo) ListByWorldID(ctx context.Context, worldID string, limit int) ([]ports.TurnRecord, error) {
	rows := []model.TurnRecord{}
	query := getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where(&model.TurnRecord{WorldID: worldID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{
				{Column: clause.Column{Name: "turn"}, Desc: true},
				{Column: clause.Column{Name: "id"}, Desc: true},
			},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	out := make([]ports.TurnRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}

func (r TurnLogRepo) DeleteByWorldID(ctx context.Context, worldID string) error {
	return getDBFromCtx(ctx, r.db).WithContext(ctx).
		Where("world_id = ?", worldID).
		Delete(&model.TurnRecord{}).Error
}

func toModel(rec ports.TurnRecord) model.TurnRecord {
	return model.TurnRecord{
		WorldID:     rec.WorldID,
		Turn:        rec.Turn,
		Acted:       int32(rec.Report.Acted),
		Moved:       int32(rec.Report.Moved),
		Ate:         int32(rec.Report.Ate),
		Grew:        int32(rec.Report.Grew),
		Born:        int32(rec.Report.Born),
		Died:        int32(rec.Report.Died),
		Rejected:    int32(rec.Report.Rejected),
		Idle:        int32(rec.Report.Idle),
		Population:  int32(rec.Population),
		TotalEnergy: rec.TotalEnergy,
		Grid:        strings.Join(rec.Rows, rowSeparator),
		RecordedAt:  rec.RecordedAt,
	}
}

func fromModel(m model.TurnRecord) ports.TurnRecord {
	var rows []string
	if m.Grid != "" {
		rows = strings.Split(m.Grid, rowSeparator)
	}
	return ports.TurnRecord{
		WorldID: m.WorldID,
		Turn:    m.Turn,
		Report: ecology.TurnReport{
			Turn:     m.Turn,
			Acted:    int(m.Acted),
			Moved:    int(m.Moved),
			Ate:      int(m.Ate),
			Grew:     int(m.Grew),
			Born:     int(m.Born),
			Died:     int(m.Died),
			Rejected: int(m.Rejected),
			Idle:     int(m.Idle),
		},
		Population:  int(m.Population),
		TotalEnergy: m.TotalEnergy,
		Rows:        rows,
		RecordedAt:  m.RecordedAt,
	}
}
