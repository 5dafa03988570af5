// Package board models the grid: its bounds, the optional robot and the
// obstacle cells. A Board is a value; every With* method returns a new Board
// and leaves the receiver untouched.
package board

import (
	"cmp"
	"slices"

	"toyrobot/internal/geo"
)

// DefaultCorner is the top right corner of the standard 5x5 board.
var DefaultCorner = geo.Vector{X: 4, Y: 4}

type Board struct {
	bounds    geo.Square
	robot     Robot
	placed    bool
	obstacles map[geo.Vector]struct{}
}

// New returns an empty board with the given bounds.
func New(bounds geo.Square) Board {
	return Board{bounds: bounds}
}

// EmptyWithCorner spans from the origin to corner.
func EmptyWithCorner(corner geo.Vector) Board {
	return New(geo.WithCorners(geo.Vector{}, corner))
}

// Default is the 5x5 board with corners (0,0) and (4,4).
func Default() Board {
	return EmptyWithCorner(DefaultCorner)
}

func (b Board) Bounds() geo.Square {
	return b.bounds
}

// Robot reports the robot pose and whether a robot has been placed.
func (b Board) Robot() (Robot, bool) {
	return b.robot, b.placed
}

func (b Board) HasObstacle(v geo.Vector) bool {
	_, ok := b.obstacles[v]
	return ok
}

// Obstacles returns the obstacle cells sorted by row then column.
func (b Board) Obstacles() []geo.Vector {
	out := make([]geo.Vector, 0, len(b.obstacles))
	for v := range b.obstacles {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b geo.Vector) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

func (b Board) WithRobot(r Robot) Board {
	return Board{
		bounds:    b.bounds,
		robot:     r,
		placed:    true,
		obstacles: b.cloneObstacles(),
	}
}

// WithObstacleAt adds an obstacle. Adding an existing one is a no-op.
func (b Board) WithObstacleAt(v geo.Vector) Board {
	obstacles := b.cloneObstacles()
	if obstacles == nil {
		obstacles = make(map[geo.Vector]struct{}, 1)
	}
	obstacles[v] = struct{}{}
	return Board{
		bounds:    b.bounds,
		robot:     b.robot,
		placed:    b.placed,
		obstacles: obstacles,
	}
}

func (b Board) cloneObstacles() map[geo.Vector]struct{} {
	if len(b.obstacles) == 0 {
		return nil
	}
	out := make(map[geo.Vector]struct{}, len(b.obstacles))
	for v := range b.obstacles {
		out[v] = struct{}{}
	}
	return out
}

// Equal compares bounds, robot and obstacle set.
func (b Board) Equal(other Board) bool {
	if b.bounds != other.bounds || b.placed != other.placed {
		return false
	}
	if b.placed && b.robot != other.robot {
		return false
	}
	if len(b.obstacles) != len(other.obstacles) {
		return false
	}
	for v := range b.obstacles {
		if _, ok := other.obstacles[v]; !ok {
			return false
		}
	}
	return true
}
