package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/conduit-lang/typedesc/internal/cli/config"
	"github.com/conduit-lang/typedesc/internal/cli/ui"
	"github.com/conduit-lang/typedesc/pkg/typedesc"
	"github.com/spf13/cobra"
)

// typeInfo is the exported description of one parsed type name.
type typeInfo struct {
	Input       string               `json:"input"`
	Name        string               `json:"name,omitempty"`
	Base        string               `json:"base,omitempty"`
	Aggregate   string               `json:"aggregate,omitempty"`
	Semantics   string               `json:"semantics,omitempty"`
	ArrayLen    int32                `json:"arraylen"`
	Size        *int                 `json:"size,omitempty"`
	ElementSize int                  `json:"element_size,omitempty"`
	Consumed    int                  `json:"consumed"`
	Error       *typedesc.ParseError `json:"error,omitempty"`
}

func describe(input string) typeInfo {
	info := typeInfo{Input: input}

	var probe typedesc.TypeDesc
	info.Consumed = probe.FromString(input)

	td, err := typedesc.Parse(input)
	if err != nil {
		var perr *typedesc.ParseError
		if errors.As(err, &perr) {
			info.Error = perr
		}
		return info
	}

	info.Name = td.String()
	info.Base = td.BaseType.String()
	info.Aggregate = td.Aggregate.String()
	info.Semantics = td.VecSemantics.String()
	info.ArrayLen = td.ArrayLen
	info.ElementSize = td.ElementSize()
	if !td.IsUnsizedArray() {
		size := td.Size()
		info.Size = &size
	}
	return info
}

func newParseCommand(s *session) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <name>...",
		Short: "Parse type names and show their fields",
		Long: `Parse one or more type names, printing the canonical name, fields and
byte sizes of each. Names that fail to parse are reported with the
position of the problem and the closest known keyword.`,
		Example: `  typedesc parse "float[3]" point "vec3:half[]"
  typedesc parse --json matrix33`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				s.cfg.Output = config.OutputJSON
			}
			return runParse(cmd, s, args)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Shorthand for --output json")

	return cmd
}

func runParse(cmd *cobra.Command, s *session, args []string) error {
	infos := make([]typeInfo, len(args))
	failed := 0
	for i, arg := range args {
		infos[i] = describe(arg)
		if infos[i].Error != nil {
			failed++
		}
	}

	handled, err := s.emit(cmd.OutOrStdout(), infos)
	if err != nil {
		return err
	}
	if !handled {
		for i, info := range infos {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if info.Error != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.TypeNameError(info.Error, noColor()))
				continue
			}
			renderTypeInfo(cmd, info)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d type names failed to parse", failed, len(args))
	}
	return nil
}

func renderTypeInfo(cmd *cobra.Command, info typeInfo) {
	out := cmd.OutOrStdout()
	ui.Header(out, info.Name, noColor())

	kv := ui.NewKeyValueTable(out, noColor())
	kv.AddRow("base", info.Base)
	kv.AddRow("aggregate", info.Aggregate)
	kv.AddRow("semantics", info.Semantics)
	switch {
	case info.ArrayLen < 0:
		kv.AddRow("array", "unsized")
	case info.ArrayLen > 0:
		kv.AddRow("array", strconv.Itoa(int(info.ArrayLen)))
	default:
		kv.AddRow("array", "no")
	}
	if info.Size != nil {
		kv.AddRow("size", fmt.Sprintf("%d bytes", *info.Size))
	} else {
		kv.AddRow("size", "unknown until the array length is resolved")
	}
	kv.AddRow("element size", fmt.Sprintf("%d bytes", info.ElementSize))
	kv.AddRow("consumed", fmt.Sprintf("%d of %d characters", info.Consumed, len(info.Input)))
	kv.Render()
}
