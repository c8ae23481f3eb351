package ecology

import (
	"golang.org/x/exp/rand"

	"ecosim/internal/domain/world"
)

// Rand is the only source of non-determinism in a world.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

func randomDirection(rng Rand, dirs []world.Direction) (world.Direction, bool) {
	if len(dirs) == 0 {
		return world.NoDirection, false
	}
	return dirs[rng.Intn(len(dirs))], true
}

func randomHeading(rng Rand) world.Direction {
	d, _ := randomDirection(rng, world.Directions())
	return d
}
