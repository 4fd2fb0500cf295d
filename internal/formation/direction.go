package formation

import "fmt"

// Direction is the collective movement state of a formation.
type Direction uint8

const (
	Right Direction = iota
	Left
	DescendThenRight
	DescendThenLeft
	Idle
)

var directionNames = [...]string{
	Right:            "right",
	Left:             "left",
	DescendThenRight: "descend-then-right",
	DescendThenLeft:  "descend-then-left",
	Idle:             "idle",
}

// String returns the lower-case name used in logs and the HUD.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// IsDescend reports whether d is one of the one-tick descend states.
func (d Direction) IsDescend() bool {
	return d == DescendThenRight || d == DescendThenLeft
}

// Displacement returns the per-invader move applied on a tick where d is current.
// The playfield y axis points up, so descending subtracts stepY.
func (d Direction) Displacement(stepX, stepY float64) Vec {
	switch d {
	case Right:
		return Vec{X: stepX}
	case Left:
		return Vec{X: -stepX}
	case DescendThenRight, DescendThenLeft:
		return Vec{Y: -stepY}
	default:
		return Vec{}
	}
}

// nextDirection is the transition function of the movement state machine.
// It depends only on its arguments.
func nextDirection(current Direction, ext Extent, width, epsilon float64) Direction {
	switch current {
	case Right:
		if ext.degenerate(width, epsilon) {
			return Idle
		}
		if ext.MaxX >= width-epsilon {
			return DescendThenLeft
		}
	case Left:
		if ext.degenerate(width, epsilon) {
			return Idle
		}
		if ext.MinX <= epsilon {
			return DescendThenRight
		}
	case DescendThenLeft:
		return Left
	case DescendThenRight:
		return Right
	}
	return current
}
