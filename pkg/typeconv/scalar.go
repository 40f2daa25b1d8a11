package typeconv

import (
	"encoding/binary"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/conduit-lang/typedesc/pkg/typedesc"
	"github.com/conduit-lang/typedesc/pkg/ustring"
	"github.com/x448/float16"
)

var order = binary.NativeEndian

type scalarKind uint8

const (
	kindInvalid scalarKind = iota
	kindInt
	kindUint
	kindFloat
	kindString
	kindPtr
	kindHash
)

// scalar is one base value lifted out of a buffer.
type scalar struct {
	kind scalarKind
	i    int64
	u    uint64 // unsigned, pointer and hash payloads
	f    float64
	s    string
	// narrow is set for half and float values so rendering keeps float32
	// precision.
	narrow bool
}

func (c *Converter) load(b typedesc.BaseType, buf []byte) (scalar, bool) {
	switch b {
	case typedesc.Uint8:
		return scalar{kind: kindUint, u: uint64(buf[0])}, true
	case typedesc.Int8:
		return scalar{kind: kindInt, i: int64(int8(buf[0]))}, true
	case typedesc.Uint16:
		return scalar{kind: kindUint, u: uint64(order.Uint16(buf))}, true
	case typedesc.Int16:
		return scalar{kind: kindInt, i: int64(int16(order.Uint16(buf)))}, true
	case typedesc.Uint32:
		return scalar{kind: kindUint, u: uint64(order.Uint32(buf))}, true
	case typedesc.Int32:
		return scalar{kind: kindInt, i: int64(int32(order.Uint32(buf)))}, true
	case typedesc.Uint64:
		return scalar{kind: kindUint, u: order.Uint64(buf)}, true
	case typedesc.Int64:
		return scalar{kind: kindInt, i: int64(order.Uint64(buf))}, true
	case typedesc.Half:
		h := float16.Frombits(order.Uint16(buf))
		return scalar{kind: kindFloat, f: float64(h.Float32()), narrow: true}, true
	case typedesc.Float:
		return scalar{kind: kindFloat, f: float64(math.Float32frombits(order.Uint32(buf))), narrow: true}, true
	case typedesc.Double:
		return scalar{kind: kindFloat, f: math.Float64frombits(order.Uint64(buf))}, true
	case typedesc.String:
		s, ok := c.Strings.Lookup(ustring.Handle(order.Uint64(buf)))
		if !ok {
			return scalar{}, false
		}
		return scalar{kind: kindString, s: s}, true
	case typedesc.Ptr:
		return scalar{kind: kindPtr, u: loadUintptr(buf)}, true
	case typedesc.Ustringhash:
		h := ustring.Hash(order.Uint64(buf))
		v := scalar{kind: kindHash, u: uint64(h)}
		v.s, _ = c.Strings.Unhash(h)
		return v, true
	}
	return scalar{}, false
}

func (c *Converter) store(b typedesc.BaseType, buf []byte, v scalar) bool {
	switch {
	case b.IsInteger():
		x, ok := toIntegerBits(v, b)
		if !ok {
			return false
		}
		storeIntegerBits(b, buf, x)
		return true

	case b.IsFloatingPoint():
		f, ok := toFloat(v)
		if !ok {
			return false
		}
		switch b {
		case typedesc.Half:
			order.PutUint16(buf, float16.Fromfloat32(float32(f)).Bits())
		case typedesc.Float:
			order.PutUint32(buf, math.Float32bits(float32(f)))
		default:
			order.PutUint64(buf, math.Float64bits(f))
		}
		return true

	case b == typedesc.String:
		s, ok := c.scalarText(v)
		if !ok {
			return false
		}
		order.PutUint64(buf, uint64(c.Strings.Intern(s)))
		return true

	case b == typedesc.Ustringhash:
		switch v.kind {
		case kindString:
			order.PutUint64(buf, uint64(c.Strings.Hash(v.s)))
		case kindHash:
			order.PutUint64(buf, v.u)
		default:
			return false
		}
		return true

	case b == typedesc.Ptr:
		if v.kind != kindPtr {
			return false
		}
		storeUintptr(buf, v.u)
		return true
	}
	return false
}

// toIntegerBits produces the two's-complement bits of v for an integer of
// kind b. Integer sources are passed through whole and truncated on store;
// float sources are truncated toward zero and clamped to b's range.
func toIntegerBits(v scalar, b typedesc.BaseType) (uint64, bool) {
	switch v.kind {
	case kindInt:
		return uint64(v.i), true
	case kindUint:
		return v.u, true
	case kindFloat:
		return floatToIntegerBits(v.f, b)
	case kindString:
		text := strings.TrimSpace(v.s)
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return uint64(i), true
		}
		if u, err := strconv.ParseUint(text, 10, 64); err == nil {
			return u, true
		}
	}
	return 0, false
}

func floatToIntegerBits(f float64, b typedesc.BaseType) (uint64, bool) {
	if math.IsNaN(f) {
		return 0, false
	}
	f = math.Trunc(f)
	width := uint(b.Size() * 8)

	if b.IsSigned() {
		hi := int64(1)<<(width-1) - 1
		lo := -hi - 1
		switch {
		case f <= float64(lo):
			return uint64(lo), true
		case f >= float64(hi):
			return uint64(hi), true
		}
		return uint64(int64(f)), true
	}

	hi := uint64(math.MaxUint64) >> (64 - width)
	switch {
	case f <= 0:
		return 0, true
	case f >= float64(hi):
		return hi, true
	}
	return uint64(f), true
}

func storeIntegerBits(b typedesc.BaseType, buf []byte, x uint64) {
	switch b.Size() {
	case 1:
		buf[0] = byte(x)
	case 2:
		order.PutUint16(buf, uint16(x))
	case 4:
		order.PutUint32(buf, uint32(x))
	default:
		order.PutUint64(buf, x)
	}
}

func toFloat(v scalar) (float64, bool) {
	switch v.kind {
	case kindInt:
		return float64(v.i), true
	case kindUint:
		return float64(v.u), true
	case kindFloat:
		return v.f, true
	case kindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// scalarText renders v for storage in a string slot: numbers with the
// default patterns, strings as-is.
func (c *Converter) scalarText(v scalar) (string, bool) {
	switch v.kind {
	case kindString:
		return v.s, true
	case kindHash:
		if v.s != "" {
			return v.s, true
		}
		return strconv.FormatUint(v.u, 10), true
	case kindInt, kindUint, kindFloat, kindPtr:
		return formatNumber(v, DefaultFormatting()), true
	}
	return "", false
}

func loadUintptr(buf []byte) uint64 {
	if bits.UintSize == 32 {
		return uint64(order.Uint32(buf))
	}
	return order.Uint64(buf)
}

func storeUintptr(buf []byte, x uint64) {
	if bits.UintSize == 32 {
		order.PutUint32(buf, uint32(x))
		return
	}
	order.PutUint64(buf, x)
}
