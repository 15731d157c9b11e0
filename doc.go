// Package pagination slices ordered collections into pages of styled text
// lines for chat-style interfaces.
//
// A Builder accumulates configuration (width, results per page, renderer,
// divider and navigation button characters and styles) and freezes it into
// an immutable Pagination value:
//
//	pager, err := pagination.New[string]().
//		ResultsPerPage(8).
//		Build("Results", func(value string, index int) []string {
//			return []string{fmt.Sprintf("%d. %s", index+1, value)}
//		}, func(page int) string {
//			return fmt.Sprintf("/results view %d", page)
//		})
//
// Render is a pure function of the frozen configuration, the content, and
// the requested page: it emits a header, the rows of the page, and a footer
// with previous/next buttons bound to page commands. Empty collections and
// out-of-range pages render as single-line notices rather than errors, so
// callers never handle failures on the render path.
package pagination
