package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"toyrobot/internal/geo"
)

const placePrefix = "place "

// The lexer has no whitespace rule, so any blank inside the parameters is a
// lexing error rather than something to skip.
var placeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Comma", Pattern: `,`},
})

type placeParams struct {
	X      coordinate `parser:"@Int"`
	Y      coordinate `parser:"',' @Int"`
	Facing heading    `parser:"',' @Word"`
}

// coordinate converts in base 10 only; participle's built-in integer
// conversion would read a leading zero as octal.
type coordinate int16

func (c *coordinate) Capture(values []string) error {
	n, err := strconv.ParseInt(strings.Join(values, ""), 10, 16)
	if err != nil {
		return err
	}
	*c = coordinate(n)
	return nil
}

type heading geo.Direction

func (h *heading) Capture(values []string) error {
	name := strings.Join(values, "")
	d, ok := geo.ParseDirection(name)
	if !ok {
		return fmt.Errorf("unknown direction %q", name)
	}
	*h = heading(d)
	return nil
}

var placeParser = participle.MustBuild[placeParams](participle.Lexer(placeLexer))

// Parse turns one input line into a Command. Keywords match case-insensitively
// against the whole line; surrounding whitespace is not trimmed.
func Parse(line string) (Command, error) {
	lower := strings.ToLower(line)

	switch lower {
	case "move":
		return Move{}, nil
	case "left":
		return Rotate{Direction: geo.Left}, nil
	case "right":
		return Rotate{Direction: geo.Right}, nil
	case "report":
		return Report{}, nil
	case "place_object":
		return PlaceObject{}, nil
	case "map":
		return Map{}, nil
	}

	if len(line) >= len(placePrefix) && strings.EqualFold(line[:len(placePrefix)], placePrefix) {
		return parsePlace(line[len(placePrefix):])
	}
	return nil, &UnrecognisedCommandError{Input: line}
}

func parsePlace(params string) (Command, error) {
	p, err := placeParser.ParseString("", params)
	if err != nil {
		return nil, &BadPlaceParametersError{Params: params, Err: err}
	}
	return Place{
		Location: geo.Vector{X: int16(p.X), Y: int16(p.Y)},
		Facing:   geo.Direction(p.Facing),
	}, nil
}
