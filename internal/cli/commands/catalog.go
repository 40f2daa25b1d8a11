package commands

import (
	"strconv"

	"github.com/conduit-lang/typedesc/internal/cli/ui"
	"github.com/conduit-lang/typedesc/pkg/typedesc"
	"github.com/spf13/cobra"
)

type catalogRow struct {
	Constant string            `json:"constant"`
	Type     typedesc.TypeDesc `json:"type"`
	Size     int               `json:"size"`
}

func newCatalogCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the well-known type descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := typedesc.Catalog()
			rows := make([]catalogRow, len(entries))
			for i, entry := range entries {
				rows[i] = catalogRow{Constant: entry.Name, Type: entry.Type, Size: entry.Type.Size()}
			}

			handled, err := s.emit(cmd.OutOrStdout(), rows)
			if err != nil || handled {
				return err
			}

			table := ui.NewTable(cmd.OutOrStdout(), []string{"Constant", "Name", "Size"}, noColor())
			for _, row := range rows {
				table.AddRow(row.Constant, row.Type.String(), strconv.Itoa(row.Size))
			}
			table.Render()
			return nil
		},
	}
}
