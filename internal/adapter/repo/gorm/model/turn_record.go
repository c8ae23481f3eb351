package model

import "time"

const TableNameTurnRecord = "turn_records"

// TurnRecord mapped from table <turn_records>
type TurnRecord struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	WorldID     string    `gorm:"column:world_id;not null" json:"world_id"`
	Turn        int64     `gorm:"column:turn;not null" json:"turn"`
	Acted       int32     `gorm:"column:acted;not null" json:"acted"`
	Moved       int32     `gorm:"column:moved;not null" json:"moved"`
	Ate         int32     `gorm:"column:ate;not null" json:"ate"`
	Grew        int32     `gorm:"column:grew;not null" json:"grew"`
	Born        int32     `gorm:"column:born;not null" json:"born"`
	Died        int32     `gorm:"column:died;not null" json:"died"`
	Rejected    int32     `gorm:"column:rejected;not null" json:"rejected"`
	Idle        int32     `gorm:"column:idle;not null" json:"idle"`
	Population  int32     `gorm:"column:population;not null" json:"population"`
	TotalEnergy float64   `gorm:"column:total_energy;not null" json:"total_energy"`
	Grid        string    `gorm:"column:grid;not null" json:"grid"`
	RecordedAt  time.Time `gorm:"column:recorded_at;not null;default:now()" json:"recorded_at"`
}

// TableName TurnRecord's table name
func (*TurnRecord) TableName() string {
	return TableNameTurnRecord
}
