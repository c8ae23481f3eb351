package observe

import "ecosim/internal/domain/ecology"

type Request struct {
	WorldID string
	// Separator, when set, also renders the grid as one string.
	Separator string
}

type Response struct {
	WorldID  string           `json:"world_id"`
	Name     string           `json:"name"`
	Snapshot ecology.Snapshot `json:"snapshot"`
	Rendered string           `json:"rendered,omitempty"`
}
