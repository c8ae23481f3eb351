package ecology

import "ecosim/internal/domain/world"

// Outcome classifies what happened to an acting entity during its slot.
type Outcome int

const (
	OutcomeIdle Outcome = iota
	OutcomeMoved
	OutcomeAte
	OutcomeGrew
	OutcomeReproduced
	OutcomeRejected
	OutcomeDied
)

// actionHandler applies a for e standing at at. It reports false when the
// action is illegal, in which case the world is left untouched.
type actionHandler func(w *World, e *Entity, at world.Point, a Action) bool

type actionSpec struct {
	Outcome Outcome
	Handler actionHandler
}

type policySpec struct {
	Actions map[ActionType]actionSpec
	// Penalize charges FailedActionCost for absent or unhandled actions and
	// removes entities whose energy drops to zero.
	Penalize bool
}

func policyRegistry() map[Policy]policySpec {
	return map[Policy]policySpec{
		PolicyInert: {
			Actions: map[ActionType]actionSpec{
				ActionMove: {Outcome: OutcomeMoved, Handler: plainMove},
			},
		},
		PolicyEnergy: {
			Actions: map[ActionType]actionSpec{
				ActionMove:      {Outcome: OutcomeMoved, Handler: metabolicMove},
				ActionEat:       {Outcome: OutcomeAte, Handler: eat},
				ActionGrow:      {Outcome: OutcomeGrew, Handler: grow},
				ActionReproduce: {Outcome: OutcomeReproduced, Handler: reproduce},
			},
			Penalize: true,
		},
	}
}

func (w *World) resolve(e *Entity, at world.Point, a Action, ok bool) Outcome {
	if ok {
		if spec, found := w.spec.Actions[a.Type]; found && spec.Handler(w, e, at, a) {
			return spec.Outcome
		}
	}
	failed := OutcomeRejected
	if !ok {
		failed = OutcomeIdle
	}
	if !w.spec.Penalize {
		return failed
	}
	e.Energy -= FailedActionCost
	if e.Energy <= 0 {
		w.grid.Set(at, nil)
		return OutcomeDied
	}
	return failed
}

// destination is at+offset(d) when d is a compass direction and the result
// lies inside the grid.
func (w *World) destination(at world.Point, d world.Direction) (world.Point, bool) {
	offset, ok := d.Offset()
	if !ok {
		return world.Point{}, false
	}
	dest := at.Plus(offset)
	if !w.grid.Inside(dest) {
		return world.Point{}, false
	}
	return dest, true
}

func (w *World) relocate(e *Entity, from, to world.Point) {
	w.grid.Set(from, nil)
	w.grid.Set(to, e)
}

func plainMove(w *World, e *Entity, at world.Point, a Action) bool {
	dest, ok := w.destination(at, a.Direction)
	if !ok || w.grid.Get(dest) != nil {
		return false
	}
	w.relocate(e, at, dest)
	return true
}

func metabolicMove(w *World, e *Entity, at world.Point, a Action) bool {
	dest, ok := w.destination(at, a.Direction)
	if !ok || e.Energy <= MinMoveEnergy || w.grid.Get(dest) != nil {
		return false
	}
	e.Energy -= MoveEnergyCost
	w.relocate(e, at, dest)
	return true
}

func eat(w *World, e *Entity, at world.Point, a Action) bool {
	dest, ok := w.destination(at, a.Direction)
	if !ok {
		return false
	}
	victim := w.grid.Get(dest)
	if victim == nil || !victim.HasEnergy() {
		return false
	}
	e.Energy += victim.Energy
	w.grid.Set(dest, nil)
	return true
}

func grow(_ *World, e *Entity, _ world.Point, _ Action) bool {
	if !e.HasEnergy() {
		return false
	}
	e.Energy += GrowEnergy
	return true
}

func reproduce(w *World, e *Entity, at world.Point, a Action) bool {
	kind, ok := w.legend[e.Symbol]
	if !ok || !kind.HasEnergy() {
		return false
	}
	baby := newEntity(kind, e.Symbol, w.rng)
	dest, ok := w.destination(at, a.Direction)
	if !ok || w.grid.Get(dest) != nil {
		return false
	}
	cost := OffspringFactor * baby.Energy
	if e.Energy <= cost {
		return false
	}
	e.Energy -= cost
	w.place(dest, baby)
	return true
}
