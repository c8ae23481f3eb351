package ecology

import "ecosim/internal/domain/world"

const (
	SymbolEmpty byte = ' '
	SymbolEdge  byte = '#'
)

// View is an entity's read-only window onto its eight neighbours. Cells past
// the grid edge read as SymbolEdge, so walls and the border look alike.
type View struct {
	grid   *Grid
	origin world.Point
	rng    Rand
}

func NewView(grid *Grid, origin world.Point, rng Rand) View {
	return View{grid: grid, origin: origin, rng: rng}
}

func (v View) Origin() world.Point {
	return v.origin
}

func (v View) Look(d world.Direction) byte {
	offset, ok := d.Offset()
	if !ok {
		return SymbolEdge
	}
	target := v.origin.Plus(offset)
	if !v.grid.Inside(target) {
		return SymbolEdge
	}
	return symbolOf(v.grid.Get(target))
}

func (v View) FindAll(symbol byte) []world.Direction {
	found := make([]world.Direction, 0, 8)
	for _, d := range world.Directions() {
		if v.Look(d) == symbol {
			found = append(found, d)
		}
	}
	return found
}

// Find picks uniformly among the matching directions.
func (v View) Find(symbol byte) (world.Direction, bool) {
	return randomDirection(v.rng, v.FindAll(symbol))
}

func symbolOf(e *Entity) byte {
	if e == nil {
		return SymbolEmpty
	}
	return e.Symbol
}
