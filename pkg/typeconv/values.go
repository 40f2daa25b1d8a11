package typeconv

import (
	"errors"
	"fmt"

	"github.com/conduit-lang/typedesc/pkg/typedesc"
)

var (
	// ErrNoValue is returned for descriptors that hold no data.
	ErrNoValue = errors.New("type holds no values")
	// ErrShortBuffer is returned when a buffer is smaller than its type.
	ErrShortBuffer = errors.New("buffer shorter than type")
)

// Values decodes data into one Go value per element. Aggregate elements
// decode to []any of their components. Signed integers become int64,
// unsigned integers uint64, half and float float32, double float64, strings
// string, pointers uint64, and ustringhash values their string when known
// or the uint64 hash otherwise.
func (c *Converter) Values(t typedesc.TypeDesc, data []byte) ([]any, error) {
	c = c.ready()
	if !convertible(t.BaseType) {
		return nil, fmt.Errorf("decode %s: %w", t, ErrNoValue)
	}
	if t.IsUnsizedArray() {
		return nil, fmt.Errorf("decode %s: unsized array", t)
	}
	if len(data) < t.Size() {
		return nil, fmt.Errorf("decode %s: need %d bytes, have %d: %w", t, t.Size(), len(data), ErrShortBuffer)
	}

	aggCount := t.Aggregate.Count()
	baseSize := t.BaseSize()
	out := make([]any, t.ElementCount())
	for i := range out {
		off := i * t.ElementSize()
		if aggCount == 1 {
			v, err := c.decodeScalar(t.BaseType, data[off:])
			if err != nil {
				return nil, fmt.Errorf("decode %s element %d: %w", t, i, err)
			}
			out[i] = v
			continue
		}
		comps := make([]any, aggCount)
		for j := range comps {
			v, err := c.decodeScalar(t.BaseType, data[off+j*baseSize:])
			if err != nil {
				return nil, fmt.Errorf("decode %s element %d component %d: %w", t, i, j, err)
			}
			comps[j] = v
		}
		out[i] = comps
	}
	return out, nil
}

func (c *Converter) decodeScalar(b typedesc.BaseType, buf []byte) (any, error) {
	v, ok := c.load(b, buf)
	if !ok {
		return nil, fmt.Errorf("unknown string handle %#x", order.Uint64(buf))
	}
	switch v.kind {
	case kindInt:
		return v.i, nil
	case kindUint, kindPtr:
		return v.u, nil
	case kindFloat:
		if v.narrow {
			return float32(v.f), nil
		}
		return v.f, nil
	case kindString:
		return v.s, nil
	case kindHash:
		if v.s != "" {
			return v.s, nil
		}
		return v.u, nil
	}
	return nil, ErrNoValue
}

// ValueError identifies the textual value ParseValues could not convert.
type ValueError struct {
	Index int
	Text  string
	Type  typedesc.TypeDesc
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("value %d (%q) is not a valid %s", e.Index, e.Text, e.Type.BaseType)
}

// ParseValues converts textual component values into a buffer of type t.
// An unsized array is resolved from the number of texts, which must then
// fill whole elements; otherwise the number of texts must equal
// t.ScalarValueCount(). The resolved type is returned with the buffer.
func (c *Converter) ParseValues(t typedesc.TypeDesc, texts []string) (typedesc.TypeDesc, []byte, error) {
	c = c.ready()
	if !convertible(t.BaseType) {
		return t, nil, fmt.Errorf("parse values for %s: %w", t, ErrNoValue)
	}

	aggCount := t.Aggregate.Count()
	if t.IsUnsizedArray() {
		if len(texts) == 0 || len(texts)%aggCount != 0 {
			return t, nil, fmt.Errorf("parse values for %s: %d values do not fill whole elements of %d", t, len(texts), aggCount)
		}
		t.ArrayLen = int32(len(texts) / aggCount)
	}
	if want := t.ScalarValueCount(); len(texts) != want {
		return t, nil, fmt.Errorf("parse values for %s: got %d values, want %d", t, len(texts), want)
	}

	buf := make([]byte, t.Size())
	baseSize := t.BaseSize()
	for i, text := range texts {
		if !c.store(t.BaseType, buf[i*baseSize:], scalar{kind: kindString, s: text}) {
			return t, nil, &ValueError{Index: i, Text: text, Type: t}
		}
	}
	return t, buf, nil
}

// ParseValues converts texts with the package default converter.
func ParseValues(t typedesc.TypeDesc, texts []string) (typedesc.TypeDesc, []byte, error) {
	return std.ParseValues(t, texts)
}
