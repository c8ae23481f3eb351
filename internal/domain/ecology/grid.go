package ecology

import "ecosim/internal/domain/world"

// Grid is a dense width*height board holding at most one entity per cell.
type Grid struct {
	width  int
	height int
	cells  []*Entity
}

func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{width: width, height: height, cells: make([]*Entity, width*height)}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) Inside(p world.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the occupant at p, or nil. It panics with *OutOfBoundsError
// when p is outside the grid.
func (g *Grid) Get(p world.Point) *Entity {
	return g.cells[g.index(p)]
}

// Set places e at p (nil clears the cell). Same bounds rule as Get.
func (g *Grid) Set(p world.Point, e *Entity) {
	g.cells[g.index(p)] = e
}

// ForEachOccupied visits non-empty cells in row-major order, reading each
// cell at the moment it is reached.
func (g *Grid) ForEachOccupied(visit func(e *Entity, at world.Point)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if e := g.cells[x+g.width*y]; e != nil {
				visit(e, world.Point{X: x, Y: y})
			}
		}
	}
}

func (g *Grid) index(p world.Point) int {
	if !g.Inside(p) {
		panic(&OutOfBoundsError{At: p, Width: g.width, Height: g.height})
	}
	return p.X + g.width*p.Y
}
