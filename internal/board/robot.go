package board

import (
	"fmt"
	"strings"

	"toyrobot/internal/geo"
)

// Robot is the robot's pose on the board.
type Robot struct {
	Position geo.Vector
	Facing   geo.Direction
}

func NewRobot(position geo.Vector, facing geo.Direction) Robot {
	return Robot{Position: position, Facing: facing}
}

func (r Robot) WithPosition(position geo.Vector) Robot {
	r.Position = position
	return r
}

func (r Robot) WithFacing(facing geo.Direction) Robot {
	r.Facing = facing
	return r
}

// Ahead is the cell the robot would enter on MOVE.
func (r Robot) Ahead() geo.Vector {
	return r.Position.Translate(r.Facing)
}

// String formats the pose the way REPORT prints it, e.g. "1,2,NORTH".
func (r Robot) String() string {
	return fmt.Sprintf("%d,%d,%s", r.Position.X, r.Position.Y, strings.ToUpper(r.Facing.String()))
}
