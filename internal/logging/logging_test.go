package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "info", Format: FormatJSON}, &buf)

	logger.Debug().Msg("filtered out")
	logger.Info().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "filtered out")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, `"level":"info"`)
}

func TestNewWithWriter_LevelFallback(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "empty level", level: "", want: zerolog.InfoLevel},
		{name: "garbage level", level: "loud", want: zerolog.InfoLevel},
		{name: "debug level", level: "debug", want: zerolog.DebugLevel},
		{name: "error level", level: "error", want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(Config{Level: tt.level, Format: FormatJSON}, &buf)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(NewWithWriter(Config{Format: FormatJSON}, &buf), "cli")

	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"cli"`)
}
