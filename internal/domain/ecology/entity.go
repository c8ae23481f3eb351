package ecology

import "ecosim/internal/domain/world"

type EntityID uint64

type Entity struct {
	ID      EntityID
	Kind    Kind
	Symbol  byte
	Energy  float64
	Heading world.Direction
}

func (e *Entity) HasEnergy() bool {
	return e.Kind.HasEnergy()
}

func (e *Entity) CanAct() bool {
	return e.Kind.HasEnergy()
}

// newEntity builds a fresh, unregistered instance of kind with its default
// energy and heading.
func newEntity(kind Kind, symbol byte, rng Rand) *Entity {
	e := &Entity{Kind: kind, Symbol: symbol, Heading: world.NoDirection}
	switch kind {
	case KindWall:
	case KindPlant:
		e.Energy = PlantBaseEnergy + rng.Float64()*PlantEnergySpread
	case KindBouncingCritter:
		e.Energy = CritterBaseEnergy
		e.Heading = randomHeading(rng)
	case KindSnake:
		e.Energy = SnakeBaseEnergy
		e.Heading = world.South
	case KindPlantEater:
		e.Energy = PlantEaterBaseEnergy
		e.Heading = randomHeading(rng)
	case KindPredator:
		e.Energy = PredatorBaseEnergy
	}
	return e
}
