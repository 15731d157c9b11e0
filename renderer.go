package pagination

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// RowRenderer renders one content value into zero or more styled lines.
// value is the item at the given absolute, zero-based index; it may be the
// type's zero value when the source collection permits gaps.
type RowRenderer[T any] func(value T, index int) []string

// Renderer turns pagination state into styled text. DefaultRenderer
// implements every hook; custom renderers can embed it and override only
// the hooks they care about.
type Renderer interface {
	// RenderEmpty renders the output for an empty collection. No header or
	// footer accompany it.
	RenderEmpty() string
	// RenderUnknownPage renders the output for an out-of-range page
	// request. pages is the true total page count.
	RenderUnknownPage(page, pages int) string
	// RenderHeader renders the page header.
	RenderHeader(title string, page, pages int) string
	// RenderPreviousPageButton renders the previous page button.
	RenderPreviousPageButton(character rune, style lipgloss.Style, target Target) string
	// RenderNextPageButton renders the next page button.
	RenderNextPageButton(character rune, style lipgloss.Style, target Target) string
}

// Styles for the fixed fragments of the default renderer.
var (
	grayStyle  = lipgloss.NewStyle().Foreground(ColorGray)
	whiteStyle = lipgloss.NewStyle().Foreground(ColorWhite)
)

// DefaultRenderer is the stock renderer: gray chrome, white page numbers,
// bracketed navigation buttons.
type DefaultRenderer struct{}

// RenderEmpty implements Renderer.
func (DefaultRenderer) RenderEmpty() string {
	return grayStyle.Render("No results match.")
}

// RenderUnknownPage implements Renderer.
func (DefaultRenderer) RenderUnknownPage(_, pages int) string {
	return grayStyle.Render(fmt.Sprintf("Unknown page selected. %d total pages.", pages))
}

// RenderHeader implements Renderer.
func (DefaultRenderer) RenderHeader(title string, page, pages int) string {
	return " " + title + " " +
		grayStyle.Render("(") +
		whiteStyle.Render(strconv.Itoa(page)) +
		grayStyle.Render("/") +
		whiteStyle.Render(strconv.Itoa(pages)) +
		grayStyle.Render(")") + " "
}

// RenderPreviousPageButton implements Renderer.
func (DefaultRenderer) RenderPreviousPageButton(
	character rune,
	style lipgloss.Style,
	target Target,
) string {
	return renderButton(character, style, target)
}

// RenderNextPageButton implements Renderer.
func (DefaultRenderer) RenderNextPageButton(
	character rune,
	style lipgloss.Style,
	target Target,
) string {
	return renderButton(character, style, target)
}

// renderButton wraps the styled button character in gray brackets and an
// OSC 8 hyperlink carrying the page command. Terminals without hyperlink
// support show the plain bracketed button.
func renderButton(character rune, style lipgloss.Style, target Target) string {
	return " " + grayStyle.Render("[") +
		hyperlink(target.Command, style.Render(string(character))) +
		grayStyle.Render("]") + " "
}

// hyperlink wraps text in an OSC 8 sequence with the command as the link
// target.
func hyperlink(command, text string) string {
	if command == "" {
		return text
	}
	return "\x1b]8;;" + command + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
