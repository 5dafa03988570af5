// Package engine applies commands to boards. Every function here is pure:
// it reads the Board it is given and returns a new value.
package engine

import (
	"fmt"

	"toyrobot/internal/board"
	"toyrobot/internal/command"
)

// Update returns the board after cmd. It never fails; whether the result is
// acceptable is decided by Valid.
func Update(b board.Board, cmd command.Command) board.Board {
	if p, ok := cmd.(command.Place); ok {
		return b.WithRobot(board.NewRobot(p.Location, p.Facing))
	}

	robot, placed := b.Robot()
	if !placed {
		return b
	}

	switch c := cmd.(type) {
	case command.Move:
		return b.WithRobot(robot.WithPosition(robot.Ahead()))
	case command.Rotate:
		return b.WithRobot(robot.WithFacing(robot.Facing.Rotate(c.Direction)))
	case command.PlaceObject:
		return b.WithObstacleAt(robot.Ahead())
	case command.Report, command.Map:
		return b
	default:
		panic(fmt.Sprintf("engine: unhandled command %T", cmd))
	}
}

// Output is what cmd prints when run against b, if anything.
func Output(b board.Board, cmd command.Command) (string, bool) {
	switch cmd.(type) {
	case command.Report:
		robot, placed := b.Robot()
		if !placed {
			return "", false
		}
		return robot.String(), true
	case command.Map:
		return b.Render(), true
	default:
		return "", false
	}
}

// Valid holds when there is no robot, or the robot is inside the bounds and
// not standing on an obstacle.
func Valid(b board.Board) bool {
	robot, placed := b.Robot()
	if !placed {
		return true
	}
	return b.Bounds().Contains(robot.Position) && !b.HasObstacle(robot.Position)
}
