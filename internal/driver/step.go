// Package driver runs the read-evaluate-print loop over command lines.
package driver

import (
	"toyrobot/internal/board"
	"toyrobot/internal/command"
	"toyrobot/internal/engine"
)

// Outcome describes what one accepted line did.
type Outcome struct {
	Command command.Command
	// Output is set when HasOutput is true; it is computed from the board
	// before the command is applied.
	Output    string
	HasOutput bool
	// Committed is false when the candidate board failed engine.Valid and
	// was dropped.
	Committed bool
}

// Step applies one line to b and returns the board to carry forward.
// On a parse error b is returned unchanged along with the error.
func Step(b board.Board, line string) (board.Board, Outcome, error) {
	cmd, err := command.Parse(line)
	if err != nil {
		return b, Outcome{}, err
	}

	out := Outcome{Command: cmd}
	out.Output, out.HasOutput = engine.Output(b, cmd)

	candidate := engine.Update(b, cmd)
	if !engine.Valid(candidate) {
		return b, out, nil
	}
	out.Committed = true
	return candidate, out, nil
}

// Fold runs every line from start and returns the final board and the
// printed outputs in order. Parse errors are skipped.
func Fold(start board.Board, lines []string) (board.Board, []string) {
	b := start
	var printed []string
	for _, line := range lines {
		next, out, err := Step(b, line)
		if err != nil {
			continue
		}
		if out.HasOutput {
			printed = append(printed, out.Output)
		}
		b = next
	}
	return b, printed
}
