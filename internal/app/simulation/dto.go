package simulation

import "ecosim/internal/domain/ecology"

type CreateRequest struct {
	Name   string
	Rows   []string
	Legend map[string]string
	Policy string
	Seed   *uint64
	// ScenarioSource is inline scenario text; ScenarioName refers to the
	// library. Both are mutually exclusive with Rows.
	ScenarioSource string
	ScenarioName   string
}

type CreateResponse struct {
	WorldID  string           `json:"world_id"`
	Name     string           `json:"name"`
	Seed     uint64           `json:"seed"`
	Snapshot ecology.Snapshot `json:"snapshot"`
}

type TurnRequest struct {
	WorldID string
	Turns   int
}

type TurnResponse struct {
	WorldID  string               `json:"world_id"`
	Snapshot ecology.Snapshot     `json:"snapshot"`
	Reports  []ecology.TurnReport `json:"reports"`
}

type DeleteRequest struct {
	WorldID  string
	PurgeLog bool
}

type ListResponse struct {
	Worlds []WorldSummary `json:"worlds"`
}

type WorldSummary struct {
	WorldID   string `json:"world_id"`
	Name      string `json:"name"`
	Seed      uint64 `json:"seed"`
	CreatedAt int64  `json:"created_at"`
}
