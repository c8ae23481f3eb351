package ecology

import "ecosim/internal/domain/world"

// act asks e for its intent this turn. ok is false when the entity chooses to
// do nothing. Behaviours may update the entity's heading but never its
// energy or position; those change only through the resolver.
func (e *Entity) act(v View, diet Diet) (Action, bool) {
	switch e.Kind {
	case KindWall:
		return Action{}, false
	case KindBouncingCritter:
		return e.bounce(v)
	case KindPlant:
		return e.photosynthesize(v)
	case KindPlantEater:
		return e.graze(v, diet)
	case KindSnake:
		return e.followWall(v, diet)
	case KindPredator:
		return e.hunt(v, diet)
	default:
		return Action{}, false
	}
}

func (e *Entity) bounce(v View) (Action, bool) {
	if v.Look(e.Heading) != SymbolEmpty {
		if d, ok := v.Find(SymbolEmpty); ok {
			e.Heading = d
		} else {
			e.Heading = world.South
		}
	}
	return Move(e.Heading), true
}

func (e *Entity) photosynthesize(v View) (Action, bool) {
	if e.Energy > PlantReproduceThreshold {
		if d, ok := v.Find(SymbolEmpty); ok {
			return Reproduce(d), true
		}
	}
	if e.Energy < PlantMaxGrowEnergy {
		return Grow(), true
	}
	return Action{}, false
}

func (e *Entity) graze(v View, diet Diet) (Action, bool) {
	if v.Look(e.Heading) != SymbolEmpty {
		e.Heading, _ = v.Find(SymbolEmpty)
	}
	space := e.Heading
	if e.Energy > PlantEaterReproduceThreshold && space.Valid() {
		return Reproduce(space), true
	}
	if a, ok := eatPlants(v, diet); ok {
		return a, true
	}
	if space.Valid() {
		return Move(space), true
	}
	return Action{}, false
}

// followWall keeps a wall on the snake's left: it turns left when the cell
// behind-left is blocked, then sweeps clockwise to the first open cell.
func (e *Entity) followWall(v View, diet Diet) (Action, bool) {
	if !e.Heading.Valid() {
		e.Heading = world.South
	}
	start := e.Heading
	if v.Look(mustRotate(e.Heading, -135)) != SymbolEmpty {
		e.Heading = mustRotate(e.Heading, -90)
		start = e.Heading
	}
	for v.Look(e.Heading) != SymbolEmpty {
		e.Heading = mustRotate(e.Heading, 45)
		if e.Heading == start {
			break
		}
	}
	space := e.Heading
	if e.Energy > SnakeReproduceThreshold {
		return Reproduce(space), true
	}
	if a, ok := eatPlants(v, diet); ok {
		return a, true
	}
	return Move(space), true
}

func (e *Entity) hunt(v View, diet Diet) (Action, bool) {
	space, open := v.Find(SymbolEmpty)
	if e.Energy > PredatorReproduceThreshold && open {
		return Reproduce(space), true
	}
	for _, prey := range diet.Prey {
		if d, ok := v.Find(prey); ok {
			return Eat(d), true
		}
	}
	if open {
		return Move(space), true
	}
	return Action{}, false
}

func eatPlants(v View, diet Diet) (Action, bool) {
	plants := v.FindAll(diet.Plant)
	if len(plants) < MinVisiblePlantsToEat {
		return Action{}, false
	}
	d, _ := randomDirection(v.rng, plants)
	return Eat(d), true
}

func mustRotate(d world.Direction, degrees int) world.Direction {
	out, err := d.Rotate(degrees)
	if err != nil {
		panic(err)
	}
	return out
}
