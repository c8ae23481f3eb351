package replay

import "ecosim/internal/app/ports"

type Request struct {
	WorldID  string
	Limit    int
	FromTurn int64
	ToTurn   int64
}

type Response struct {
	Records    []ports.TurnRecord `json:"records"`
	LatestRows []string           `json:"latest_rows"`
	LatestTurn int64              `json:"latest_turn"`
}
