package typeconv

import (
	"fmt"
	"strings"

	"github.com/conduit-lang/typedesc/pkg/typedesc"
)

// ToString renders the value of type t held in data. It panics if t is an
// unsized array or data is shorter than t.Size(). Unknown and void values
// render as the empty string.
func (c *Converter) ToString(t typedesc.TypeDesc, data []byte, f Formatting) string {
	c = c.ready()
	if t.BaseType == typedesc.Unknown || t.BaseType == typedesc.None || t.BaseType >= typedesc.LastBase {
		return ""
	}
	size := t.Size()
	if len(data) < size {
		panic(fmt.Sprintf("typeconv: ToString of %s needs %d bytes, buffer has %d", t, size, len(data)))
	}

	aggCount := t.Aggregate.Count()
	baseSize := t.BaseSize()

	if !t.IsArray() && aggCount == 1 && !f.QuoteSingleString && isStringKind(t.BaseType) {
		v := c.loadForRender(t.BaseType, data)
		if v.kind == kindString || (v.kind == kindHash && v.s != "") {
			return v.s
		}
	}

	var sb strings.Builder
	element := func(off int) {
		if aggCount == 1 {
			sb.WriteString(c.renderScalar(c.loadForRender(t.BaseType, data[off:]), f))
			return
		}
		sb.WriteString(f.AggregateBegin)
		for i := 0; i < aggCount; i++ {
			if i > 0 {
				sb.WriteString(f.AggregateSep)
			}
			sb.WriteString(c.renderScalar(c.loadForRender(t.BaseType, data[off+i*baseSize:]), f))
		}
		sb.WriteString(f.AggregateEnd)
	}

	if !t.IsArray() {
		element(0)
		return sb.String()
	}

	elemSize := t.ElementSize()
	sb.WriteString(f.ArrayBegin)
	for i := 0; i < int(t.ArrayLen); i++ {
		if i > 0 {
			sb.WriteString(f.ArraySep)
		}
		element(i * elemSize)
	}
	sb.WriteString(f.ArrayEnd)
	return sb.String()
}

func isStringKind(b typedesc.BaseType) bool {
	return b == typedesc.String || b == typedesc.Ustringhash
}

// loadForRender reads one value, treating a handle missing from the string
// table as the empty string.
func (c *Converter) loadForRender(b typedesc.BaseType, buf []byte) scalar {
	v, ok := c.load(b, buf)
	if !ok {
		return scalar{kind: kindString}
	}
	return v
}

func (c *Converter) renderScalar(v scalar, f Formatting) string {
	switch v.kind {
	case kindString:
		return renderString(v.s, f)
	case kindHash:
		if v.s != "" {
			return renderString(v.s, f)
		}
		return fmt.Sprintf(orDefault(f.UintFormat, defaultUintFormat), v.u)
	}
	return formatNumber(v, f)
}

func renderString(s string, f Formatting) string {
	if f.EscapeStrings {
		s = escapeString(s)
	}
	return fmt.Sprintf(orDefault(f.StringFormat, defaultStringFormat), s)
}

func formatNumber(v scalar, f Formatting) string {
	switch v.kind {
	case kindInt:
		return fmt.Sprintf(orDefault(f.IntFormat, defaultIntFormat), v.i)
	case kindUint:
		return fmt.Sprintf(orDefault(f.UintFormat, defaultUintFormat), v.u)
	case kindFloat:
		pattern := orDefault(f.FloatFormat, defaultFloatFormat)
		if v.narrow {
			return fmt.Sprintf(pattern, float32(v.f))
		}
		return fmt.Sprintf(pattern, v.f)
	case kindPtr:
		return fmt.Sprintf(orDefault(f.PtrFormat, defaultPtrFormat), uintptr(v.u))
	}
	return ""
}

// escapeString backslash-escapes quotes, backslashes and the common control
// characters.
func escapeString(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\r\t") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
