package ecology

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"ecosim/internal/domain/world"
)

func TestViewLook(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(world.Point{X: 1, Y: 0}, &Entity{Symbol: '*'})
	v := NewView(g, world.Point{X: 0, Y: 0}, &stubRand{})

	if got := v.Look(world.East); got != '*' {
		t.Fatalf("expected plant east, got %q", got)
	}
	if got := v.Look(world.South); got != SymbolEmpty {
		t.Fatalf("expected empty south, got %q", got)
	}
	if got := v.Look(world.North); got != SymbolEdge {
		t.Fatalf("expected edge north, got %q", got)
	}
	if got := v.Look(world.NoDirection); got != SymbolEdge {
		t.Fatalf("expected edge for unknown direction, got %q", got)
	}
}

func TestViewFindAllTableOrder(t *testing.T) {
	g := NewGrid(3, 3)
	for _, p := range []world.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}} {
		g.Set(p, &Entity{Symbol: '*'})
	}
	v := NewView(g, world.Point{X: 1, Y: 1}, &stubRand{})

	want := []world.Direction{world.East, world.South, world.NorthWest}
	if diff := cmp.Diff(want, v.FindAll('*')); diff != "" {
		t.Fatalf("FindAll mismatch (-want +got):\n%s", diff)
	}
}

func TestViewFindUsesRandomChoice(t *testing.T) {
	g := NewGrid(3, 1)
	v := NewView(g, world.Point{X: 1, Y: 0}, &stubRand{ints: []int{1}})

	d, ok := v.Find(SymbolEmpty)
	if !ok || d != world.West {
		t.Fatalf("expected second empty match (w), got %v ok=%v", d, ok)
	}
	if _, ok := v.Find('@'); ok {
		t.Fatalf("expected no match for absent symbol")
	}
}
