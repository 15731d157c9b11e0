// Package config loads and validates the YAML configuration of the pager
// tool: page layout, divider and button appearance, and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Default display values for the pager tool.
const (
	DefaultWidth          = 55
	DefaultResultsPerPage = 6
	DefaultTitle          = "Results"
)

// Configuration validation errors.
var (
	ErrNegativeResultsPerPage = errors.New("results_per_page cannot be negative")
	ErrInvalidCharacter       = errors.New("character must be a single rune")
	ErrUnknownColor           = errors.New("unknown color name")
)

// colorNames maps configuration color names to ANSI palette colors.
var colorNames = map[string]lipgloss.Color{
	"black":        lipgloss.Color("0"),
	"red":          lipgloss.Color("1"),
	"green":        lipgloss.Color("2"),
	"yellow":       lipgloss.Color("3"),
	"blue":         lipgloss.Color("4"),
	"magenta":      lipgloss.Color("5"),
	"cyan":         lipgloss.Color("6"),
	"gray":         lipgloss.Color("7"),
	"dark_gray":    lipgloss.Color("8"),
	"bright_red":   lipgloss.Color("9"),
	"bright_green": lipgloss.Color("10"),
	"white":        lipgloss.Color("15"),
}

// ElementConfig is the appearance of one interface element: a character and
// the color it is rendered in. Empty fields fall back to the library
// defaults.
type ElementConfig struct {
	// Character is the element's character. Must be a single rune when set.
	Character string `yaml:"character,omitempty"`
	// Color is a named ANSI color (e.g. "red", "dark_gray").
	Color string `yaml:"color,omitempty"`
}

// Validate checks the element configuration.
func (e ElementConfig) Validate() error {
	if e.Character != "" && utf8.RuneCountInString(e.Character) != 1 {
		return fmt.Errorf("%w: got %q", ErrInvalidCharacter, e.Character)
	}
	if e.Color != "" {
		if _, ok := colorNames[e.Color]; !ok {
			return fmt.Errorf("%w: got %q", ErrUnknownColor, e.Color)
		}
	}
	return nil
}

// Rune returns the configured character, or fallback when unset.
func (e ElementConfig) Rune(fallback rune) rune {
	if e.Character == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(e.Character)
	return r
}

// Style returns a style for the configured color, or fallback when unset.
func (e ElementConfig) Style(fallback lipgloss.Style) lipgloss.Style {
	color, ok := colorNames[e.Color]
	if !ok {
		return fallback
	}
	return lipgloss.NewStyle().Foreground(color)
}

// LoggingConfig controls log output of the pager tool.
type LoggingConfig struct {
	// Level is the minimum level to emit ("debug", "info", "warn", "error").
	// Unparseable or empty levels fall back to "info".
	Level string `yaml:"level,omitempty"`
	// Format selects "console" or "json" output.
	Format string `yaml:"format,omitempty"`
}

// Config is the pager tool configuration.
type Config struct {
	// Width is the divider line width in columns.
	Width int `yaml:"width,omitempty"`
	// ResultsPerPage is the number of rows per page. Zero disables
	// pagination so one page holds everything.
	ResultsPerPage int `yaml:"results_per_page"`
	// Title is the header title.
	Title string `yaml:"title,omitempty"`
	// Line is the appearance of the footer divider.
	Line ElementConfig `yaml:"line,omitempty"`
	// PreviousButton is the appearance of the previous page button.
	PreviousButton ElementConfig `yaml:"previous_button,omitempty"`
	// NextButton is the appearance of the next page button.
	NextButton ElementConfig `yaml:"next_button,omitempty"`
	// Logging controls log output.
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Width:          DefaultWidth,
		ResultsPerPage: DefaultResultsPerPage,
		Title:          DefaultTitle,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML configuration file on top of the defaults and validates
// the result. Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration. Width is deliberately unchecked: any
// value is accepted and small or negative widths just shrink the divider.
func (c Config) Validate() error {
	if c.ResultsPerPage < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeResultsPerPage, c.ResultsPerPage)
	}
	elements := map[string]ElementConfig{
		"line":            c.Line,
		"previous_button": c.PreviousButton,
		"next_button":     c.NextButton,
	}
	for name, element := range elements {
		if err := element.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
