package pagination

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Builder validation errors.
var (
	ErrNegativeResultsPerPage = errors.New("results per page cannot be negative")
	ErrNilRenderer            = errors.New("renderer cannot be nil")
	ErrMissingTitle           = errors.New("title must be set")
	ErrMissingRowRenderer     = errors.New("row renderer must be set")
	ErrMissingPageCommand     = errors.New("page command function must be set")
)

// CharacterAndStyle is a character paired with the style it is rendered
// with. Builder configurators receive one for editing; the builder reads it
// back when the pagination is built.
type CharacterAndStyle struct {
	character rune
	style     lipgloss.Style
}

// Character sets the character.
func (c *CharacterAndStyle) Character(character rune) *CharacterAndStyle {
	c.character = character
	return c
}

// Style sets the style.
func (c *CharacterAndStyle) Style(style lipgloss.Style) *CharacterAndStyle {
	c.style = style
	return c
}

// Builder accumulates pagination configuration. Setters chain and never
// fail mid-chain; out-of-domain values are recorded and surfaced by Build.
// A builder is not safe for concurrent use; the Pagination it builds is.
type Builder[T any] struct {
	width          int
	resultsPerPage int
	renderer       Renderer
	line           CharacterAndStyle
	previousButton CharacterAndStyle
	nextButton     CharacterAndStyle
	err            error
}

// New creates a builder seeded with the default configuration.
func New[T any]() *Builder[T] {
	return &Builder[T]{
		width:          DefaultWidth,
		resultsPerPage: DefaultResultsPerPage,
		renderer:       DefaultRenderer{},
		line: CharacterAndStyle{
			character: DefaultLineCharacter,
			style:     DefaultLineStyle,
		},
		previousButton: CharacterAndStyle{
			character: DefaultPreviousButtonCharacter,
			style:     DefaultPreviousButtonStyle,
		},
		nextButton: CharacterAndStyle{
			character: DefaultNextButtonCharacter,
			style:     DefaultNextButtonStyle,
		},
	}
}

// Width sets the divider line width in columns. Any value is accepted; zero
// or negative widths simply produce an empty divider.
func (b *Builder[T]) Width(width int) *Builder[T] {
	b.width = width
	return b
}

// ResultsPerPage sets the number of results per page. Zero disables
// pagination so a single page holds the whole collection. Negative values
// are rejected at Build time.
func (b *Builder[T]) ResultsPerPage(resultsPerPage int) *Builder[T] {
	if resultsPerPage < 0 {
		b.recordErr(fmt.Errorf("%w: got %d", ErrNegativeResultsPerPage, resultsPerPage))
		return b
	}
	b.resultsPerPage = resultsPerPage
	return b
}

// Renderer replaces the default renderer.
func (b *Builder[T]) Renderer(renderer Renderer) *Builder[T] {
	if renderer == nil {
		b.recordErr(ErrNilRenderer)
		return b
	}
	b.renderer = renderer
	return b
}

// Line edits the divider line character and style.
func (b *Builder[T]) Line(line func(*CharacterAndStyle)) *Builder[T] {
	line(&b.line)
	return b
}

// PreviousButton edits the previous page button character and style.
func (b *Builder[T]) PreviousButton(previousButton func(*CharacterAndStyle)) *Builder[T] {
	previousButton(&b.previousButton)
	return b
}

// NextButton edits the next page button character and style.
func (b *Builder[T]) NextButton(nextButton func(*CharacterAndStyle)) *Builder[T] {
	nextButton(&b.nextButton)
	return b
}

// Build validates the accumulated configuration and freezes it into an
// immutable Pagination. The first error recorded by a setter is returned
// before the required-field checks. Further edits to the builder do not
// affect the built value.
func (b *Builder[T]) Build(
	title string,
	rowRenderer RowRenderer[T],
	pageCommand PageCommandFunc,
) (Pagination[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if title == "" {
		return nil, ErrMissingTitle
	}
	if rowRenderer == nil {
		return nil, ErrMissingRowRenderer
	}
	if pageCommand == nil {
		return nil, ErrMissingPageCommand
	}
	return &paginator[T]{
		width:          b.width,
		resultsPerPage: b.resultsPerPage,
		renderer:       b.renderer,
		line:           b.line,
		previousButton: b.previousButton,
		nextButton:     b.nextButton,
		title:          title,
		rowRenderer:    rowRenderer,
		pageCommand:    pageCommand,
	}, nil
}

// recordErr keeps the first configuration error for Build to surface.
func (b *Builder[T]) recordErr(err error) {
	if b.err == nil {
		b.err = err
	}
}
