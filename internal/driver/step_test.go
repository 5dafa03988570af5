package driver

import (
	"testing"

	"toyrobot/internal/board"
	"toyrobot/internal/geo"
)

func TestStepParseErrorKeepsBoard(t *testing.T) {
	start := board.Default().WithRobot(board.NewRobot(geo.Vector{X: 2, Y: 2}, geo.North))
	next, out, err := Step(start, "explode")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !next.Equal(start) {
		t.Errorf("board changed on parse error")
	}
	if out.Command != nil || out.Committed {
		t.Errorf("outcome = %+v", out)
	}
}

func TestStepOutputUsesBoardBeforeUpdate(t *testing.T) {
	start := board.Default().WithRobot(board.NewRobot(geo.Vector{X: 0, Y: 0}, geo.North))
	_, out, err := Step(start, "MAP")
	if err != nil {
		t.Fatal(err)
	}
	if out.Output != "00000\n00000\n00000\n00000\n^0000" {
		t.Errorf("map = %q", out.Output)
	}
}

func TestStepValidityGate(t *testing.T) {
	start := board.Default().WithRobot(board.NewRobot(geo.Vector{X: 4, Y: 4}, geo.North))
	next, out, err := Step(start, "MOVE")
	if err != nil {
		t.Fatal(err)
	}
	if out.Committed {
		t.Errorf("move off the board committed")
	}
	if !next.Equal(start) {
		t.Errorf("rejected candidate replaced the board")
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		robot  string
		output []string
	}{
		{"example a", []string{"PLACE 0,0,NORTH", "MOVE", "REPORT"}, "0,1,NORTH", []string{"0,1,NORTH"}},
		{"example b", []string{"PLACE 0,0,NORTH", "LEFT", "REPORT"}, "0,0,WEST", []string{"0,0,WEST"}},
		{"example c", []string{"PLACE 1,2,EAST", "MOVE", "MOVE", "LEFT", "MOVE", "REPORT"}, "3,3,NORTH", []string{"3,3,NORTH"}},
		{"walk into the wall", []string{"PLACE 0,4,NORTH", "MOVE", "MOVE", "RIGHT", "MOVE", "REPORT"}, "1,4,EAST", []string{"1,4,EAST"}},
		{"errors skipped", []string{"nope", "PLACE 2,2,SOUTH", "PLACE 2,2", "REPORT"}, "2,2,SOUTH", []string{"2,2,SOUTH"}},
		{"spin", []string{"PLACE 1,1,EAST", "RIGHT", "RIGHT", "RIGHT", "RIGHT", "REPORT"}, "1,1,EAST", []string{"1,1,EAST"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final, output := Fold(board.Default(), tt.lines)
			r, ok := final.Robot()
			if !ok {
				t.Fatalf("no robot on final board")
			}
			if r.String() != tt.robot {
				t.Errorf("robot = %s, want %s", r, tt.robot)
			}
			if len(output) != len(tt.output) {
				t.Fatalf("output = %q, want %q", output, tt.output)
			}
			for i := range output {
				if output[i] != tt.output[i] {
					t.Errorf("output[%d] = %q, want %q", i, output[i], tt.output[i])
				}
			}
		})
	}
}

func TestFoldNeverLeavesInvalidBoard(t *testing.T) {
	lines := []string{
		"PLACE 4,4,EAST", "MOVE", "LEFT", "MOVE", "PLACE_OBJECT", "LEFT", "LEFT", "MOVE", "MOVE",
		"PLACE -1,0,NORTH", "PLACE 3,3,WEST", "PLACE_OBJECT", "LEFT", "PLACE_OBJECT", "MOVE",
	}
	b := board.Default()
	for i := range lines {
		b, _ = Fold(b, lines[i:i+1])
		r, ok := b.Robot()
		if !ok {
			t.Fatalf("robot lost after %q", lines[i])
		}
		if !b.Bounds().Contains(r.Position) || b.HasObstacle(r.Position) {
			t.Fatalf("invalid board after %q: %s", lines[i], r)
		}
	}
}
