package world

import (
	"errors"
	"fmt"
)

// Direction is one of the eight compass headings, ordered clockwise from north.
type Direction int8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NoDirection marks an absent heading.
const NoDirection Direction = -1

const directionCount = 8

var (
	ErrInvalidRotation  = errors.New("rotation must be a multiple of 45 degrees")
	ErrUnknownDirection = errors.New("unknown direction")
)

var directionNames = [directionCount]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

var directionOffsets = [directionCount]Point{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
}

func Directions() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

func (d Direction) String() string {
	if !d.Valid() {
		return ""
	}
	return directionNames[d]
}

// Offset returns the unit step for d; ok is false for unrecognized values.
func (d Direction) Offset() (Point, bool) {
	if !d.Valid() {
		return Point{}, false
	}
	return directionOffsets[d], true
}

// Rotate turns d by degrees, clockwise for positive values. Only multiples of
// 45 are accepted.
func (d Direction) Rotate(degrees int) (Direction, error) {
	if degrees%45 != 0 {
		return NoDirection, fmt.Errorf("%w: %d", ErrInvalidRotation, degrees)
	}
	if !d.Valid() {
		return NoDirection, ErrUnknownDirection
	}
	steps := (degrees / 45) % directionCount
	return Direction((int(d) + steps + directionCount) % directionCount), nil
}

func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return NoDirection, false
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = NoDirection
		return nil
	}
	parsed, ok := ParseDirection(string(b))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, string(b))
	}
	*d = parsed
	return nil
}
