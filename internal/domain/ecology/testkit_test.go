package ecology

import (
	"math"
	"testing"

	"ecosim/internal/domain/world"
)

// stubRand replays queued values, then returns zero forever.
type stubRand struct {
	ints   []int
	floats []float64
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

var testLegend = Legend{
	'#': KindWall,
	'*': KindPlant,
	'o': KindBouncingCritter,
	'~': KindSnake,
	'O': KindPlantEater,
	'@': KindPredator,
}

func newTestWorld(t *testing.T, policy Policy, rows ...string) *World {
	t.Helper()
	w, err := New(Config{Map: rows, Legend: testLegend, Policy: policy, Rand: &stubRand{}})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return w
}

func mustEntity(t *testing.T, w *World, x, y int) *Entity {
	t.Helper()
	e := w.Grid().Get(world.Point{X: x, Y: y})
	if e == nil {
		t.Fatalf("expected entity at (%d, %d)", x, y)
	}
	return e
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
