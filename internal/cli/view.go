package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/textfeature/pagination"
	"github.com/textfeature/pagination/internal/config"
)

// indexStyle renders the row number prefix.
var indexStyle = lipgloss.NewStyle().Foreground(pagination.ColorDarkGray)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Render one page of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd, args)
			if err != nil {
				return err
			}

			pager, _, err := buildPagination(cmd)
			if err != nil {
				return err
			}

			page, _ := cmd.Flags().GetInt("page")
			for _, line := range pager.Render(content, page) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			logger.Debug().Int("page", page).Int("items", len(content)).Msg("rendered page")
			return nil
		},
	}

	cmd.Flags().Int("page", 1, "1-based page to render")
	addRenderFlags(cmd)
	return cmd
}

// addRenderFlags registers the layout flags shared by view and browse.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().Int("per-page", config.DefaultResultsPerPage,
		"results per page (0 puts everything on one page)")
	cmd.Flags().Int("width", config.DefaultWidth, "footer divider width in columns")
	cmd.Flags().String("title", config.DefaultTitle, "header title")
}

// buildPagination assembles a pagination from the loaded configuration and
// any flag overrides, and returns it with the effective results per page.
func buildPagination(cmd *cobra.Command) (pagination.Pagination[string], int, error) {
	// Flag beats config file beats terminal autodetection.
	width := cfg.Width
	if cmd.Flags().Changed("width") {
		width, _ = cmd.Flags().GetInt("width")
	} else if width == config.DefaultWidth {
		if w, ok := terminalWidth(); ok {
			width = w
		}
	}

	resultsPerPage := cfg.ResultsPerPage
	if cmd.Flags().Changed("per-page") {
		resultsPerPage, _ = cmd.Flags().GetInt("per-page")
	}

	title := cfg.Title
	if cmd.Flags().Changed("title") {
		title, _ = cmd.Flags().GetString("title")
	}

	pager, err := pagination.New[string]().
		Width(width).
		ResultsPerPage(resultsPerPage).
		Line(func(c *pagination.CharacterAndStyle) {
			c.Character(cfg.Line.Rune(pagination.DefaultLineCharacter)).
				Style(cfg.Line.Style(pagination.DefaultLineStyle))
		}).
		PreviousButton(func(c *pagination.CharacterAndStyle) {
			c.Character(cfg.PreviousButton.Rune(pagination.DefaultPreviousButtonCharacter)).
				Style(cfg.PreviousButton.Style(pagination.DefaultPreviousButtonStyle))
		}).
		NextButton(func(c *pagination.CharacterAndStyle) {
			c.Character(cfg.NextButton.Rune(pagination.DefaultNextButtonCharacter)).
				Style(cfg.NextButton.Style(pagination.DefaultNextButtonStyle))
		}).
		Build(title, renderRow, pageCommand)
	if err != nil {
		return nil, 0, err
	}
	return pager, resultsPerPage, nil
}

// renderRow prints one input line prefixed with its 1-based number.
func renderRow(value string, index int) []string {
	return []string{fmt.Sprintf("%s %s", indexStyle.Render(fmt.Sprintf("%3d.", index+1)), value)}
}

// pageCommand is the command a navigation button runs to show a page.
func pageCommand(page int) string {
	return fmt.Sprintf("pager view --page %d", page)
}

// readContent reads the lines to paginate from the file argument, or from
// stdin when no file is given. A trailing newline does not produce an empty
// final row.
func readContent(cmd *cobra.Command, args []string) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}

	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// terminalWidth returns the width of the attached terminal, if any.
func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
