package ecology

import (
	"sort"

	"ecosim/internal/domain/world"
)

type Species struct {
	Symbol string  `json:"symbol"`
	Kind   Kind    `json:"kind"`
	Count  int     `json:"count"`
	Energy float64 `json:"energy"`
}

type Snapshot struct {
	Turn   int64     `json:"turn"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Policy Policy    `json:"policy"`
	Rows   []string  `json:"rows"`
	Census []Species `json:"census"`
}

// Population is the number of entities that track energy.
func (s Snapshot) Population() int {
	n := 0
	for _, sp := range s.Census {
		if sp.Kind.HasEnergy() {
			n += sp.Count
		}
	}
	return n
}

func (s Snapshot) TotalEnergy() float64 {
	total := 0.0
	for _, sp := range s.Census {
		total += sp.Energy
	}
	return total
}

func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Turn:   w.turn,
		Width:  w.grid.Width(),
		Height: w.grid.Height(),
		Policy: w.policy,
		Rows:   w.Rows(),
		Census: w.Census(),
	}
}

// Census groups live entities by symbol, ordered by symbol.
func (w *World) Census() []Species {
	bySymbol := map[byte]*Species{}
	w.grid.ForEachOccupied(func(e *Entity, _ world.Point) {
		sp, ok := bySymbol[e.Symbol]
		if !ok {
			sp = &Species{Symbol: string(e.Symbol), Kind: e.Kind}
			bySymbol[e.Symbol] = sp
		}
		sp.Count++
		if e.HasEnergy() {
			sp.Energy += e.Energy
		}
	})
	out := make([]Species, 0, len(bySymbol))
	for _, sp := range bySymbol {
		out = append(out, *sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
