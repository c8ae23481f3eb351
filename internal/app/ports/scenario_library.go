package ports

import (
	"context"

	"ecosim/internal/domain/ecology"
)

// Scenario is a parsed world description.
type Scenario struct {
	Name    string
	Policy  ecology.Policy
	Seed    uint64
	HasSeed bool
	Legend  ecology.Legend
	Diet    ecology.Diet
	Map     []string
}

// Config turns the scenario into world settings driven by rng.
func (s Scenario) Config(rng ecology.Rand) ecology.Config {
	return ecology.Config{
		Map:    append([]string(nil), s.Map...),
		Legend: s.Legend,
		Policy: s.Policy,
		Rand:   rng,
		Diet:   s.Diet,
	}
}

type ScenarioLibrary interface {
	Names(ctx context.Context) ([]string, error)
	Source(ctx context.Context, name string) ([]byte, error)
	Load(ctx context.Context, name string) (Scenario, error)
	Parse(filename, src string) (Scenario, error)
}
