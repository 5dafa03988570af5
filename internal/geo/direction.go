package geo

import (
	"fmt"
	"strings"
)

// Direction is a compass facing on the grid.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// RelativeDirection is a turn relative to the current facing.
type RelativeDirection int

const (
	Left RelativeDirection = iota
	Right
)

var directionNames = [...]string{
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

// Rotate returns the facing after a quarter turn.
func (d Direction) Rotate(rel RelativeDirection) Direction {
	switch rel {
	case Left:
		switch d {
		case North:
			return West
		case West:
			return South
		case South:
			return East
		case East:
			return North
		}
	case Right:
		switch d {
		case North:
			return East
		case East:
			return South
		case South:
			return West
		case West:
			return North
		}
	}
	return d
}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection matches a direction name case-insensitively.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(name) {
	case "north":
		return North, true
	case "south":
		return South, true
	case "east":
		return East, true
	case "west":
		return West, true
	}
	return North, false
}

func (r RelativeDirection) String() string {
	switch r {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("RelativeDirection(%d)", int(r))
}
