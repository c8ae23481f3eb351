package ecology

import "ecosim/internal/domain/world"

type ActionType string

const (
	ActionMove      ActionType = "move"
	ActionEat       ActionType = "eat"
	ActionGrow      ActionType = "grow"
	ActionReproduce ActionType = "reproduce"
)

// Action is a one-turn intent; Direction is ignored for grow.
type Action struct {
	Type      ActionType
	Direction world.Direction
}

func Move(d world.Direction) Action      { return Action{Type: ActionMove, Direction: d} }
func Eat(d world.Direction) Action       { return Action{Type: ActionEat, Direction: d} }
func Reproduce(d world.Direction) Action { return Action{Type: ActionReproduce, Direction: d} }
func Grow() Action                       { return Action{Type: ActionGrow, Direction: world.NoDirection} }
