package commands

import (
	"fmt"

	"github.com/conduit-lang/typedesc/pkg/typedesc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type mergeResult struct {
	Types []typedesc.TypeDesc `json:"types"`
	Base  string              `json:"base"`
}

func newMergeCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <type> <type> [<type>...]",
		Short: "Find a base kind that can hold values of every given type",
		Long: `Merge the base kinds of two or more types. The result is the narrowest
base kind that can represent values of all inputs: mixed signedness
promotes to a wider signed integer, and integers merged with floats
promote to a float wide enough for the integer range.`,
		Example: `  typedesc merge uint8 int8        # int16
  typedesc merge half int32 color  # double`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make([]typedesc.TypeDesc, len(args))
			for i, arg := range args {
				td, err := typedesc.Parse(arg)
				if err != nil {
					return fmt.Errorf("type %d: %w", i+1, err)
				}
				types[i] = td
			}

			merged := typedesc.MergeBaseTypes(types...)
			s.logger.Debug("merged base kinds", zap.Int("inputs", len(types)), zap.Stringer("base", merged))

			handled, err := s.emit(cmd.OutOrStdout(), mergeResult{Types: types, Base: merged.String()})
			if err != nil || handled {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), merged)
			return nil
		},
	}
}
