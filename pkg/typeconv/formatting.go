// Package typeconv renders and converts raw buffers described by a
// typedesc.TypeDesc. Buffers use the native byte order and the packed layout
// implied by the descriptor; string and ustringhash values are 8-byte
// references resolved through a StringTable.
package typeconv

// Formatting controls how ToString renders values. Patterns use fmt verbs:
// signed integers receive an int64, unsigned integers a uint64, floats a
// float32 (half and float) or float64 (double), strings a string and
// pointers a uintptr. An empty pattern falls back to the default; delimiters
// and separators are used exactly as given.
type Formatting struct {
	IntFormat    string `yaml:"int_format"`
	UintFormat   string `yaml:"uint_format"`
	FloatFormat  string `yaml:"float_format"`
	StringFormat string `yaml:"string_format"`
	PtrFormat    string `yaml:"ptr_format"`

	AggregateBegin string `yaml:"aggregate_begin"`
	AggregateEnd   string `yaml:"aggregate_end"`
	AggregateSep   string `yaml:"aggregate_sep"`

	ArrayBegin string `yaml:"array_begin"`
	ArrayEnd   string `yaml:"array_end"`
	ArraySep   string `yaml:"array_sep"`

	// EscapeStrings backslash-escapes quotes, backslashes and control
	// characters before StringFormat is applied.
	EscapeStrings bool `yaml:"escape_strings"`
	// QuoteSingleString applies StringFormat to a lone non-array string.
	// When false such a value renders as its raw text.
	QuoteSingleString bool `yaml:"quote_single_string"`
}

const (
	defaultIntFormat    = "%d"
	defaultUintFormat   = "%d"
	defaultFloatFormat  = "%g"
	defaultStringFormat = `"%s"`
	defaultPtrFormat    = "%#x"
)

// DefaultFormatting returns the standard rendering: "%g" floats, quoted and
// escaped strings, "(a,b)" aggregates and "{x,y}" arrays.
func DefaultFormatting() Formatting {
	return Formatting{
		IntFormat:      defaultIntFormat,
		UintFormat:     defaultUintFormat,
		FloatFormat:    defaultFloatFormat,
		StringFormat:   defaultStringFormat,
		PtrFormat:      defaultPtrFormat,
		AggregateBegin: "(",
		AggregateEnd:   ")",
		AggregateSep:   ",",
		ArrayBegin:     "{",
		ArrayEnd:       "}",
		ArraySep:       ",",
		EscapeStrings:  true,
	}
}

func orDefault(pattern, fallback string) string {
	if pattern == "" {
		return fallback
	}
	return pattern
}
