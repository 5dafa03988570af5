package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"toyrobot/internal/board"
	"toyrobot/internal/config"
	"toyrobot/internal/driver"
	"toyrobot/internal/transcript"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [script file]\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.Error("robot failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	layout := board.DefaultLayout()
	if cfg.LayoutPath != "" {
		l, err := board.LoadLayout(cfg.LayoutPath)
		if err != nil {
			return fmt.Errorf("load layout: %w", err)
		}
		layout = l
	}

	input := stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		input = f
	}

	session := driver.NewSession(layout.Board())
	session.Logger = logger

	if cfg.TranscriptPath != "" {
		w, err := transcript.Create(cfg.TranscriptPath)
		if err != nil {
			return fmt.Errorf("open transcript: %w", err)
		}
		session.Recorder = w
		runErr := session.Run(input, stdout, stderr)
		if err := w.Close(); err != nil && runErr == nil {
			return fmt.Errorf("close transcript: %w", err)
		}
		return runErr
	}
	return session.Run(input, stdout, stderr)
}
