// Package cli wires the pager command line: a root command with view and
// browse subcommands built on the pagination library.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/textfeature/pagination/internal/config"
	"github.com/textfeature/pagination/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // shared by the subcommands

// cfg is the configuration loaded by the root command's pre-run.
var cfg config.Config //nolint:gochecknoglobals // shared by the subcommands

// NewRootCmd creates the root command for the pager CLI. It loads the
// configuration, sets up logging, and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pager",
		Short:         "Paginate text into styled pages",
		Long:          "pager slices line-oriented input into pages of styled text with a header and navigation footer.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path != "" {
				loaded, err := config.Load(path)
				if err != nil {
					return err
				}
				cfg = loaded
			} else {
				cfg = config.Default()
			}

			loggingCfg := logging.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				loggingCfg.Level = "debug"
				loggingCfg.Format = logging.FormatConsole
			}
			logger = logging.ComponentLogger(logging.New(loggingCfg), "cli")
			return nil
		},
	}

	cmd.PersistentFlags().String("config", "", "path to a YAML config file")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newViewCmd(), newBrowseCmd())

	return cmd
}

const rootCmdExample = `  # Render the second page of a file, six rows per page
  pager view notes.txt --page 2

  # Paginate stdin with a custom layout
  ls | pager view --per-page 10 --width 40 --title Files

  # Browse a file interactively
  pager browse notes.txt`
