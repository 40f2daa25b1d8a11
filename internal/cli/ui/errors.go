package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/conduit-lang/typedesc/pkg/typedesc"
	"github.com/fatih/color"
)

// ErrorOptions configures the error message formatting
type ErrorOptions struct {
	Context      string
	Problem      string
	Detail       string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError creates a standardized error message with suggestions and help commands
//
// Example output:
//
//	✗ TYPE NAME: unknown type keyword "flaot"
//	   flaot[3]
//	   ^
//
//	   Did you mean: float?
//
//	   → List known types: typedesc catalog
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	headerColor := color.New(color.FgRed, color.Bold)
	bodyColor := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)
	if opts.NoColor {
		headerColor.DisableColor()
		bodyColor.DisableColor()
		yellow.DisableColor()
		cyan.DisableColor()
	}

	if opts.Context != "" {
		headerColor.Fprintf(&b, "✗ %s: %s\n", strings.ToUpper(opts.Context), opts.Problem)
	} else {
		headerColor.Fprintf(&b, "✗ %s\n", opts.Problem)
	}

	if opts.Detail != "" {
		for _, line := range strings.Split(strings.TrimRight(opts.Detail, "\n"), "\n") {
			bodyColor.Fprintf(&b, "   %s\n", line)
		}
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to the writer
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// FormatSuccess creates a success message
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success message to the writer
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// TypeNameError renders a failed type name with a caret under the offending
// position.
func TypeNameError(err *typedesc.ParseError, noColor bool) string {
	opts := ErrorOptions{
		Context: "type name " + string(err.Code),
		Problem: err.Message,
		Detail:  err.Input + "\n" + strings.Repeat(" ", err.Offset) + "^",
		HelpCommands: []string{
			"List known types: typedesc catalog",
		},
		NoColor: noColor,
	}
	if err.Suggestion != "" {
		opts.Suggestions = []string{err.Suggestion}
	}
	return FormatError(opts)
}

// ConversionError renders a failed value conversion.
func ConversionError(from, to typedesc.TypeDesc, noColor bool) string {
	return FormatError(ErrorOptions{
		Context: "conversion failed",
		Problem: fmt.Sprintf("cannot convert %s to %s", from, to),
		HelpCommands: []string{
			"Show why: typedesc convert --verbose ...",
		},
		NoColor: noColor,
	})
}
