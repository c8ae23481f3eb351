package status

type Request struct {
	WorldID string
}

type Response struct {
	WorldID     string           `json:"world_id"`
	Name        string           `json:"name"`
	Turn        int64            `json:"turn"`
	Policy      string           `json:"policy"`
	Population  int              `json:"population"`
	TotalEnergy float64          `json:"total_energy"`
	ByKind      map[string]Group `json:"by_kind"`
	Extinct     bool             `json:"extinct"`
}

type Group struct {
	Count         int     `json:"count"`
	Energy        float64 `json:"energy"`
	AverageEnergy float64 `json:"average_energy"`
}
