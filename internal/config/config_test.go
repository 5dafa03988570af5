package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(envFrom(nil))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, slog.LevelWarn, cfg.LogLevel)
	require.Equal(t, LogFormatText, cfg.LogFormat)
	require.Empty(t, cfg.LayoutPath)
	require.Empty(t, cfg.TranscriptPath)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(envFrom(map[string]string{
		"ROBOT_LOG_LEVEL":  " Debug ",
		"ROBOT_LOG_FORMAT": "JSON",
		"ROBOT_LAYOUT":     "boards/7x7.yaml",
		"ROBOT_TRANSCRIPT": "out/run.jsonl.zst",
	}))
	require.NoError(t, err)
	require.Equal(t, Config{
		LogLevel:       slog.LevelDebug,
		LogFormat:      LogFormatJSON,
		LayoutPath:     "boards/7x7.yaml",
		TranscriptPath: "out/run.jsonl.zst",
	}, cfg)
}

func TestLoadWarningAlias(t *testing.T) {
	cfg, err := load(envFrom(map[string]string{"ROBOT_LOG_LEVEL": "warning"}))
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"log level", map[string]string{"ROBOT_LOG_LEVEL": "loud"}, "parse ROBOT_LOG_LEVEL"},
		{"log format", map[string]string{"ROBOT_LOG_FORMAT": "xml"}, "parse ROBOT_LOG_FORMAT"},
		{"same file", map[string]string{"ROBOT_LAYOUT": "a", "ROBOT_TRANSCRIPT": "a"}, "same file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(envFrom(tt.env))
			require.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestValidateRejectsOddLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = slog.Level(3)
	require.ErrorContains(t, cfg.Validate(), "unsupported ROBOT_LOG_LEVEL")

	cfg = Default()
	cfg.LogFormat = "yaml"
	require.ErrorContains(t, cfg.Validate(), "unsupported ROBOT_LOG_FORMAT")
}
