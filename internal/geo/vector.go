package geo

import (
	"fmt"
	"math"
)

// Vector is a cell coordinate. Comparable with ==.
type Vector struct {
	X, Y int16
}

func NewVector(x, y int16) Vector {
	return Vector{X: x, Y: y}
}

// Translate moves one cell towards d. Coordinates saturate at the int16 limits.
func (v Vector) Translate(d Direction) Vector {
	switch d {
	case North:
		v.Y = step(v.Y, 1)
	case South:
		v.Y = step(v.Y, -1)
	case East:
		v.X = step(v.X, 1)
	case West:
		v.X = step(v.X, -1)
	}
	return v
}

func step(c int16, delta int16) int16 {
	if delta > 0 && c == math.MaxInt16 {
		return c
	}
	if delta < 0 && c == math.MinInt16 {
		return c
	}
	return c + delta
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
