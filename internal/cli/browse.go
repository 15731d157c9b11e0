package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/textfeature/pagination/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse pages interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd, args)
			if err != nil {
				return err
			}

			pager, resultsPerPage, err := buildPagination(cmd)
			if err != nil {
				return err
			}

			logger.Debug().Int("items", len(content)).Msg("starting browser")
			model := tui.NewModel(pager, content, resultsPerPage)
			program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()))
			_, err = program.Run()
			return err
		},
	}

	addRenderFlags(cmd)
	return cmd
}
