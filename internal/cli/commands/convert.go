package commands

import (
	"fmt"

	"github.com/conduit-lang/typedesc/internal/cli/config"
	"github.com/conduit-lang/typedesc/internal/cli/ui"
	"github.com/conduit-lang/typedesc/internal/codec"
	"github.com/conduit-lang/typedesc/pkg/typedesc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConvertCommand(s *session) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert --from <type> --to <type> <values...>",
		Short: "Convert values from one type to another",
		Long: `Read the given component values as the --from type, convert them to the
--to type and print the result. An unsized array type ("int[]") takes its
length from the number of values given.

Integer narrowing keeps the low bits (300 as uint8 is 44). Floats
converted to integers are truncated toward zero and clamped to the
target range. Text output uses the formatting configuration file.`,
		Example: `  typedesc convert --from "int[]" --to "float[]" 1 2 3
  typedesc convert --from vector --to string 1 2 3
  typedesc convert --from string --to int32 42
  typedesc convert --from "float[]" --to "half[]" -o cbor 0.5 1e5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := typedesc.Parse(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			dst, err := typedesc.Parse(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			return runConvert(cmd, s, src, dst, args)
		},
	}

	cmd.Flags().StringVar(&from, "from", "string", "Type of the input values")
	cmd.Flags().StringVar(&to, "to", "", "Type to convert to")
	cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(cmd *cobra.Command, s *session, src, dst typedesc.TypeDesc, args []string) error {
	src, srcBuf, err := s.converter.ParseValues(src, args)
	if err != nil {
		return err
	}

	dst, err = resolveLength(src, dst)
	if err != nil {
		return err
	}

	dstBuf := make([]byte, dst.Size())
	if !s.converter.Convert(src, srcBuf, dst, dstBuf, 1) {
		fmt.Fprint(cmd.ErrOrStderr(), ui.ConversionError(src, dst, noColor()))
		return fmt.Errorf("cannot convert %s to %s", src, dst)
	}
	s.logger.Debug("converted values",
		zap.Stringer("from", src), zap.Stringer("to", dst), zap.Int("bytes", len(dstBuf)))

	if s.cfg.Output == config.OutputText {
		fmt.Fprintln(cmd.OutOrStdout(), s.converter.ToString(dst, dstBuf, s.formatting))
		return nil
	}

	values, err := s.converter.Values(dst, dstBuf)
	if err != nil {
		return err
	}
	_, err = s.emit(cmd.OutOrStdout(), codec.Record{Type: dst, Values: values})
	return err
}

// resolveLength gives an unsized destination the length that holds every
// source value.
func resolveLength(src, dst typedesc.TypeDesc) (typedesc.TypeDesc, error) {
	if !dst.IsUnsizedArray() {
		return dst, nil
	}
	values := src.ScalarValueCount()
	per := dst.Aggregate.Count()
	if values%per != 0 {
		return dst, fmt.Errorf("%d values do not fill whole %s elements", values, dst.ElementType())
	}
	dst.ArrayLen = int32(values / per)
	return dst, nil
}
