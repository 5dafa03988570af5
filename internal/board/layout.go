package board

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"toyrobot/internal/geo"
)

// Layout describes a board to start from. File format (YAML):
//
//	bounds:
//	  bottom_left: {x: 0, y: 0}
//	  top_right: {x: 4, y: 4}
//	obstacles:
//	  - {x: 2, y: 2}
//
// Corner order does not matter; the bounds are normalized.
type Layout struct {
	Bounds    LayoutBounds `yaml:"bounds"`
	Obstacles []Cell       `yaml:"obstacles,omitempty"`
}

type LayoutBounds struct {
	BottomLeft Cell `yaml:"bottom_left"`
	TopRight   Cell `yaml:"top_right"`
}

type Cell struct {
	X int16 `yaml:"x"`
	Y int16 `yaml:"y"`
}

func (c Cell) Vector() geo.Vector {
	return geo.Vector{X: c.X, Y: c.Y}
}

//go:embed layout.schema.json
var layoutSchemaJSON string

var layoutSchema = jsonschema.MustCompileString("layout.schema.json", layoutSchemaJSON)

// DefaultLayout matches Default().
func DefaultLayout() Layout {
	return Layout{
		Bounds: LayoutBounds{
			TopRight: Cell{X: DefaultCorner.X, Y: DefaultCorner.Y},
		},
	}
}

// LoadLayout reads and validates a layout file.
func LoadLayout(path string) (Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	l, err := ParseLayout(raw)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ParseLayout checks the document against the layout schema before decoding it.
func ParseLayout(raw []byte) (Layout, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Layout{}, err
	}
	// The schema validator wants JSON values, so round-trip through
	// encoding/json to turn YAML ints into float64 and maps into map[string]any.
	js, err := json.Marshal(doc)
	if err != nil {
		return Layout{}, fmt.Errorf("layout is not a JSON-compatible document: %w", err)
	}
	var generic any
	if err := json.Unmarshal(js, &generic); err != nil {
		return Layout{}, err
	}
	if err := layoutSchema.Validate(generic); err != nil {
		return Layout{}, err
	}

	var l Layout
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return Layout{}, err
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func (l Layout) Square() geo.Square {
	return geo.WithCorners(l.Bounds.BottomLeft.Vector(), l.Bounds.TopRight.Vector())
}

// Validate rejects obstacles outside the bounds.
func (l Layout) Validate() error {
	bounds := l.Square()
	for i, o := range l.Obstacles {
		if !bounds.Contains(o.Vector()) {
			return fmt.Errorf("obstacle %d at %v is outside bounds %v-%v",
				i, o.Vector(), bounds.BottomLeft, bounds.TopRight)
		}
	}
	return nil
}

// Board builds the starting board: no robot, the listed obstacles.
func (l Layout) Board() Board {
	b := New(l.Square())
	for _, o := range l.Obstacles {
		b = b.WithObstacleAt(o.Vector())
	}
	return b
}
