package commands

import (
	"fmt"
	"os"

	"github.com/conduit-lang/typedesc/internal/cli/ui"
	"github.com/conduit-lang/typedesc/internal/format"
	"github.com/spf13/cobra"
)

func newFormatConfigCommand(s *session) *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "format-config",
		Short: "Write the default formatting configuration file",
		Long: `Write the default value formatting configuration as YAML. The file is
written to the configured format_config path unless --path is given.
Edit it to change number patterns, delimiters and string quoting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = s.cfg.FormatConfig
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := format.SaveConfig(path, format.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write format config: %w", err)
			}
			ui.WriteSuccess(cmd.OutOrStdout(), "Wrote "+path, noColor())
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Destination file (default: format_config setting)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
