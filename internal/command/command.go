// Package command holds the robot's command set and the line parser.
package command

import (
	"fmt"
	"strings"

	"toyrobot/internal/geo"
)

// Command is one of Place, Move, Rotate, Report, PlaceObject or Map.
// The set is closed: only this package can add members.
type Command interface {
	fmt.Stringer
	command()
}

// Place puts the robot at Location facing Facing, replacing any previous pose.
type Place struct {
	Location geo.Vector
	Facing   geo.Direction
}

type Move struct{}

type Rotate struct {
	Direction geo.RelativeDirection
}

type Report struct{}

// PlaceObject drops an obstacle on the cell in front of the robot.
type PlaceObject struct{}

// Map renders the whole board.
type Map struct{}

func (Place) command()       {}
func (Move) command()        {}
func (Rotate) command()      {}
func (Report) command()      {}
func (PlaceObject) command() {}
func (Map) command()         {}

func (p Place) String() string {
	return fmt.Sprintf("PLACE %d,%d,%s", p.Location.X, p.Location.Y, strings.ToUpper(p.Facing.String()))
}

func (Move) String() string { return "MOVE" }

func (r Rotate) String() string { return strings.ToUpper(r.Direction.String()) }

func (Report) String() string      { return "REPORT" }
func (PlaceObject) String() string { return "PLACE_OBJECT" }
func (Map) String() string         { return "MAP" }
