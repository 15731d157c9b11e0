package pagination

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// buttonChromeWidth is the column count of the " [" and "] " chrome around
// a button character in the default renderer's layout.
const buttonChromeWidth = 4

// paginator is the frozen configuration produced by Builder.Build.
type paginator[T any] struct {
	width          int
	resultsPerPage int
	renderer       Renderer
	line           CharacterAndStyle
	previousButton CharacterAndStyle
	nextButton     CharacterAndStyle
	title          string
	rowRenderer    RowRenderer[T]
	pageCommand    PageCommandFunc
}

// Render implements Pagination.
func (p *paginator[T]) Render(content []T, page int) []string {
	if len(content) == 0 {
		return []string{p.renderer.RenderEmpty()}
	}
	pages := p.pages(len(content))
	if page < 1 || page > pages {
		return []string{p.renderer.RenderUnknownPage(page, pages)}
	}
	start, end := p.pageBounds(len(content), page)
	lines := make([]string, 0, end-start+2)
	lines = append(lines, p.renderer.RenderHeader(p.title, page, pages))
	for i := start; i < end; i++ {
		lines = append(lines, p.rowRenderer(content[i], i)...)
	}
	lines = append(lines, p.renderFooter(page, pages))
	return lines
}

// pages returns the total page count, never below one. A results-per-page
// of zero means the whole collection fits on a single page.
func (p *paginator[T]) pages(items int) int {
	if p.resultsPerPage == 0 {
		return 1
	}
	pages := items / p.resultsPerPage
	if items%p.resultsPerPage > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

// pageBounds returns the zero-based half-open index range of the rows on
// the given page.
func (p *paginator[T]) pageBounds(items, page int) (int, int) {
	if p.resultsPerPage == 0 {
		return 0, items
	}
	start := (page - 1) * p.resultsPerPage
	end := start + p.resultsPerPage
	if end > items {
		end = items
	}
	return start, end
}

// renderFooter assembles the navigation line: the previous button when a
// previous page exists, the divider, then the next button when a next page
// exists. The divider absorbs the width left over by the buttons. The page
// command function is only invoked for pages that exist.
func (p *paginator[T]) renderFooter(page, pages int) string {
	var previous, next string
	width := p.width
	if page > 1 {
		target := Target{Command: p.pageCommand(page - 1)}
		previous = p.renderer.RenderPreviousPageButton(
			p.previousButton.character, p.previousButton.style, target)
		width -= buttonWidth(p.previousButton.character)
	}
	if page < pages {
		target := Target{Command: p.pageCommand(page + 1)}
		next = p.renderer.RenderNextPageButton(
			p.nextButton.character, p.nextButton.style, target)
		width -= buttonWidth(p.nextButton.character)
	}
	return previous + p.renderLine(width) + next
}

// buttonWidth is the printable width a rendered button occupies, accounting
// for wide characters.
func buttonWidth(character rune) int {
	return runewidth.RuneWidth(character) + buttonChromeWidth
}

// renderLine repeats the divider character until it fills the given width.
func (p *paginator[T]) renderLine(width int) string {
	characterWidth := runewidth.RuneWidth(p.line.character)
	if width <= 0 || characterWidth == 0 {
		return ""
	}
	return p.line.style.Render(strings.Repeat(string(p.line.character), width/characterWidth))
}
