package pagination

import "github.com/charmbracelet/lipgloss"

// Default layout values used by New.
const (
	// DefaultWidth is the default interface width in columns.
	DefaultWidth = 55
	// DefaultResultsPerPage is the default number of results per page.
	DefaultResultsPerPage = 6
	// DefaultLineCharacter is the default divider line character.
	DefaultLineCharacter = '-'
	// DefaultPreviousButtonCharacter is the default previous page button character.
	DefaultPreviousButtonCharacter = '«'
	// DefaultNextButtonCharacter is the default next page button character.
	DefaultNextButtonCharacter = '»'
)

// Colors used by the default styles and the default renderer.
var (
	ColorDarkGray = lipgloss.Color("8")
	ColorGray     = lipgloss.Color("7")
	ColorWhite    = lipgloss.Color("15")
	ColorRed      = lipgloss.Color("1")
	ColorGreen    = lipgloss.Color("2")
)

// Default styles for the divider line and the navigation buttons.
var (
	DefaultLineStyle           = lipgloss.NewStyle().Foreground(ColorDarkGray)
	DefaultPreviousButtonStyle = lipgloss.NewStyle().Foreground(ColorRed)
	DefaultNextButtonStyle     = lipgloss.NewStyle().Foreground(ColorGreen)
)

// PageCommandFunc returns the command that displays the given page.
type PageCommandFunc func(page int) string

// Target is the navigation action bound to a page button. Command holds the
// literal command string for the destination page; executing it belongs to
// the host interface, not this package.
type Target struct {
	Command string
}

// Pagination renders a collection of values into pages of styled text
// lines. Implementations are immutable once built: Render never mutates
// shared state, so a single instance may be shared across goroutines and
// reused with varying content and page arguments.
type Pagination[T any] interface {
	// Render produces the lines for the requested 1-based page: a header,
	// the rows of the page in collection order, and a footer with
	// navigation buttons. An empty collection yields the renderer's empty
	// notice and an out-of-range page yields its unknown-page notice, each
	// as a single line with no header or footer.
	Render(content []T, page int) []string
}
