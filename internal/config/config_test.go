package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name: "zero results per page is valid",
			mutate: func(c *Config) {
				c.ResultsPerPage = 0
			},
		},
		{
			name: "negative width is valid",
			mutate: func(c *Config) {
				c.Width = -10
			},
		},
		{
			name: "negative results per page",
			mutate: func(c *Config) {
				c.ResultsPerPage = -1
			},
			wantErr: true,
			errMsg:  "results_per_page cannot be negative",
		},
		{
			name: "multi-rune line character",
			mutate: func(c *Config) {
				c.Line.Character = "--"
			},
			wantErr: true,
			errMsg:  "character must be a single rune",
		},
		{
			name: "unknown button color",
			mutate: func(c *Config) {
				c.NextButton.Color = "chartreuse"
			},
			wantErr: true,
			errMsg:  `unknown color name: got "chartreuse"`,
		},
		{
			name: "element name in error",
			mutate: func(c *Config) {
				c.PreviousButton.Character = "ab"
			},
			wantErr: true,
			errMsg:  "previous_button:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pager.yaml")
	data := `
width: 40
results_per_page: 10
title: Tasks
line:
  character: "="
  color: blue
next_button:
  character: ">"
  color: bright_green
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 10, cfg.ResultsPerPage)
	assert.Equal(t, "Tasks", cfg.Title)
	assert.Equal(t, "=", cfg.Line.Character)
	assert.Equal(t, ">", cfg.NextButton.Character)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Keys absent from the file keep their defaults.
	assert.Empty(t, cfg.PreviousButton.Character)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("width: [oops"), 0o600))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("results_per_page: -3"), 0o600))
		_, err := Load(path)
		require.ErrorIs(t, err, ErrNegativeResultsPerPage)
	})
}

func TestElementConfig_Fallbacks(t *testing.T) {
	var element ElementConfig
	assert.Equal(t, '-', element.Rune('-'))

	fallback := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	assert.Equal(t, fallback, element.Style(fallback))

	element = ElementConfig{Character: "»", Color: "green"}
	assert.Equal(t, '»', element.Rune('-'))
	assert.NotEqual(t, fallback, element.Style(fallback))
}
