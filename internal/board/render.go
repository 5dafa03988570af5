package board

import (
	"strings"

	"toyrobot/internal/geo"
)

const (
	glyphEmpty    = '0'
	glyphObstacle = 'X'
)

var robotGlyphs = map[geo.Direction]byte{
	geo.North: '^',
	geo.South: 'v',
	geo.East:  '>',
	geo.West:  '<',
}

// Render draws the board from the top row down, one character per cell:
// the robot glyph, X for an obstacle, 0 for an empty cell. Rows are joined by
// newlines with no trailing newline.
func (b Board) Render() string {
	bl, tr := b.bounds.BottomLeft, b.bounds.TopRight
	rows := make([]string, 0, b.bounds.Height())
	line := make([]byte, 0, b.bounds.Width())

	for y := int(tr.Y); y >= int(bl.Y); y-- {
		line = line[:0]
		for x := int(bl.X); x <= int(tr.X); x++ {
			line = append(line, b.glyphAt(geo.Vector{X: int16(x), Y: int16(y)}))
		}
		rows = append(rows, string(line))
	}
	return strings.Join(rows, "\n")
}

func (b Board) glyphAt(v geo.Vector) byte {
	if b.placed && b.robot.Position == v {
		return robotGlyphs[b.robot.Facing]
	}
	if b.HasObstacle(v) {
		return glyphObstacle
	}
	return glyphEmpty
}
