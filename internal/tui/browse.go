// Package tui implements the interactive page browser of the pager tool.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/textfeature/pagination"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

// Model browses paginated content one page at a time. Pages are produced by
// the pagination library; the model only tracks which page is shown.
type Model struct {
	pager     pagination.Pagination[string]
	items     []string
	paginator paginator.Model
	quitting  bool
}

// NewModel creates a browser over the given content. resultsPerPage zero or
// below means everything fits on a single page.
func NewModel(pager pagination.Pagination[string], items []string, resultsPerPage int) Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Render("•")
	p.InactiveDot = helpStyle.Render("◦")
	// Navigation keys are handled by this model, not the paginator.
	p.KeyMap = paginator.KeyMap{}

	if resultsPerPage <= 0 {
		resultsPerPage = len(items)
	}
	if resultsPerPage == 0 {
		resultsPerPage = 1
	}
	p.PerPage = resultsPerPage
	p.SetTotalPages(len(items))

	return Model{pager: pager, items: items, paginator: p}
}

// Page returns the 1-based page currently shown.
func (m Model) Page() int {
	return m.paginator.Page + 1
}

// TotalPages returns the page count.
func (m Model) TotalPages() int {
	return m.paginator.TotalPages
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "left", "h", "p":
			m.paginator.PrevPage()
		case "right", "l", "n":
			m.paginator.NextPage()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Join(m.pager.Render(m.items, m.Page()), "\n"))
	b.WriteString("\n\n  ")
	b.WriteString(m.paginator.View())
	b.WriteString("\n  ")
	b.WriteString(helpStyle.Render("←/→ page • q quit"))
	b.WriteString("\n")
	return b.String()
}
