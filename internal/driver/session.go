package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"toyrobot/internal/board"
	"toyrobot/internal/command"
	"toyrobot/internal/transcript"
)

const maxLineSize = 1 << 20

// Recorder receives one entry per processed line.
type Recorder interface {
	Record(transcript.Entry) error
}

// Session owns the live board between lines.
type Session struct {
	Logger   *slog.Logger
	Recorder Recorder
	RunID    string

	board board.Board
	seq   int
}

func NewSession(start board.Board) *Session {
	return &Session{
		Logger: slog.Default(),
		RunID:  uuid.NewString(),
		board:  start,
	}
}

// Board is the last committed board.
func (s *Session) Board() board.Board {
	return s.board
}

// Execute processes one line. A parse error is returned as is and leaves the
// board untouched; any other error comes from the recorder.
func (s *Session) Execute(line string) (Outcome, error) {
	s.seq++
	logger := s.Logger.With("run_id", s.RunID, "seq", s.seq)

	next, out, err := Step(s.board, line)
	switch {
	case err != nil:
		var bad *command.BadPlaceParametersError
		if errors.As(err, &bad) && bad.Err != nil {
			logger.Debug("bad place parameters", "params", bad.Params, "cause", bad.Err)
		} else {
			logger.Debug("unrecognised command", "line", line)
		}
	case !out.Committed:
		logger.Debug("candidate board rejected", "command", out.Command.String())
	default:
		logger.Debug("command applied", "command", out.Command.String())
	}
	s.board = next

	if rerr := s.record(line, out, err); rerr != nil {
		return out, fmt.Errorf("record transcript: %w", rerr)
	}
	return out, err
}

func (s *Session) record(line string, out Outcome, err error) error {
	if s.Recorder == nil {
		return nil
	}
	e := transcript.Entry{
		RunID:     s.RunID,
		Seq:       s.seq,
		Line:      line,
		Output:    out.Output,
		Committed: out.Committed,
		Obstacles: len(s.board.Obstacles()),
	}
	if out.Command != nil {
		e.Command = out.Command.String()
	}
	if err != nil {
		e.Error = err.Error()
	}
	if r, ok := s.board.Robot(); ok {
		e.Robot = r.String()
	}
	return s.Recorder.Record(e)
}

// Run reads commands from r until EOF. Outputs go to stdout one per line,
// parse errors to stderr. It returns only on read, write or recorder failure.
func (s *Session) Run(r io.Reader, stdout, stderr io.Writer) error {
	bounds := s.board.Bounds()
	s.Logger.Info("session started",
		"run_id", s.RunID,
		"bottom_left", bounds.BottomLeft.String(),
		"top_right", bounds.TopRight.String(),
		"obstacles", len(s.board.Obstacles()))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		out, err := s.Execute(scanner.Text())
		if err != nil {
			if !isParseError(err) {
				return err
			}
			if _, werr := fmt.Fprintln(stderr, err); werr != nil {
				return werr
			}
			continue
		}
		if out.HasOutput {
			if _, werr := fmt.Fprintln(stdout, out.Output); werr != nil {
				return werr
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}

	s.Logger.Info("session finished", "run_id", s.RunID, "lines", s.seq)
	return nil
}

func isParseError(err error) bool {
	var unrecognised *command.UnrecognisedCommandError
	var bad *command.BadPlaceParametersError
	return errors.As(err, &unrecognised) || errors.As(err, &bad)
}
