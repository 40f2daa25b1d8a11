package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/conduit-lang/typedesc/internal/cli/config"
	"github.com/conduit-lang/typedesc/internal/codec"
	"github.com/fatih/color"
)

// emit writes v in the configured machine-readable style. It reports false
// for text output, leaving rendering to the caller.
func (s *session) emit(w io.Writer, v any) (bool, error) {
	switch s.cfg.Output {
	case config.OutputJSON:
		return true, writeJSON(w, v)
	case config.OutputCBOR:
		return true, writeCBOR(w, v)
	}
	return false, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeCBOR prints the encoding as hex followed by its diagnostic notation.
func writeCBOR(w io.Writer, v any) error {
	data, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode CBOR: %w", err)
	}
	diag, err := codec.Diagnose(data)
	if err != nil {
		return fmt.Errorf("failed to diagnose CBOR: %w", err)
	}
	fmt.Fprintf(w, "%x\n%s\n", data, diag)
	return nil
}

// noColor reports whether colored output is disabled for this process.
func noColor() bool {
	return color.NoColor
}
