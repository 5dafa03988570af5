package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	defaultLogLevel  = slog.LevelWarn
	defaultLogFormat = LogFormatText
)

type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config controls logging and the optional layout and transcript files.
type Config struct {
	LogLevel  slog.Level
	LogFormat LogFormat
	// LayoutPath is a YAML board layout; empty means the default 5x5 board.
	LayoutPath string
	// TranscriptPath enables the compressed command transcript when set.
	TranscriptPath string
}

func Default() Config {
	return Config{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load reads configuration from ROBOT_* environment variables.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if level := strings.TrimSpace(getenv("ROBOT_LOG_LEVEL")); level != "" {
		parsed, err := parseLogLevel(level)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = parsed
	}
	if format := strings.TrimSpace(getenv("ROBOT_LOG_FORMAT")); format != "" {
		parsed, err := parseLogFormat(format)
		if err != nil {
			return Config{}, err
		}
		cfg.LogFormat = parsed
	}
	if path := strings.TrimSpace(getenv("ROBOT_LAYOUT")); path != "" {
		cfg.LayoutPath = path
	}
	if path := strings.TrimSpace(getenv("ROBOT_TRANSCRIPT")); path != "" {
		cfg.TranscriptPath = path
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.LogLevel {
	case slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError:
	default:
		return fmt.Errorf(
			"validate config: unsupported ROBOT_LOG_LEVEL %q (allowed: %q, %q, %q, %q)",
			c.LogLevel.String(),
			slog.LevelDebug.String(),
			slog.LevelInfo.String(),
			slog.LevelWarn.String(),
			slog.LevelError.String(),
		)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf(
			"validate config: unsupported ROBOT_LOG_FORMAT %q (allowed: %q, %q)",
			c.LogFormat,
			LogFormatText,
			LogFormatJSON,
		)
	}

	if c.LayoutPath != "" && c.LayoutPath == c.TranscriptPath {
		return fmt.Errorf("validate config: ROBOT_LAYOUT and ROBOT_TRANSCRIPT point at the same file %q", c.LayoutPath)
	}
	return nil
}

func parseLogLevel(input string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf(
			"parse ROBOT_LOG_LEVEL: unsupported value %q (allowed: %q, %q, %q, %q)",
			input,
			slog.LevelDebug.String(),
			slog.LevelInfo.String(),
			slog.LevelWarn.String(),
			slog.LevelError.String(),
		)
	}
}

func parseLogFormat(input string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(LogFormatText):
		return LogFormatText, nil
	case string(LogFormatJSON):
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf(
			"parse ROBOT_LOG_FORMAT: unsupported value %q (allowed: %q, %q)",
			input,
			LogFormatText,
			LogFormatJSON,
		)
	}
}
