package typedesc

import "math/bits"

// BaseType is the atomic scalar category of a value. The order is stable and
// LastBase bounds the valid range.
type BaseType uint8

const (
	Unknown BaseType = iota
	None
	Uint8
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Half
	Float
	Double
	String
	Ptr
	Ustringhash
	LastBase
)

// Names matching the corresponding native types.
const (
	UChar     = Uint8
	Char      = Int8
	UShort    = Uint16
	Short     = Int16
	UInt      = Uint32
	Int       = Int32
	ULongLong = Uint64
	LongLong  = Int64
)

var baseNames = [...]string{
	Unknown:     "unknown",
	None:        "void",
	Uint8:       "uint8",
	Int8:        "int8",
	Uint16:      "uint16",
	Int16:       "int16",
	Uint32:      "uint",
	Int32:       "int",
	Uint64:      "uint64",
	Int64:       "int64",
	Half:        "half",
	Float:       "float",
	Double:      "double",
	String:      "string",
	Ptr:         "pointer",
	Ustringhash: "ustringhash",
}

// baseAliases are accepted by the parser in addition to baseNames.
var baseAliases = map[string]BaseType{
	"none":      None,
	"uchar":     Uint8,
	"char":      Int8,
	"ushort":    Uint16,
	"short":     Int16,
	"uint32":    Uint32,
	"int32":     Int32,
	"ulonglong": Uint64,
	"longlong":  Int64,
	"ptr":       Ptr,
}

// handleSize is the width of the out-of-line payload reference stored for
// string and ustringhash values.
const handleSize = 8

var baseSizes = [...]int{
	Unknown:     0,
	None:        0,
	Uint8:       1,
	Int8:        1,
	Uint16:      2,
	Int16:       2,
	Uint32:      4,
	Int32:       4,
	Uint64:      8,
	Int64:       8,
	Half:        2,
	Float:       4,
	Double:      8,
	String:      handleSize,
	Ptr:         bits.UintSize / 8,
	Ustringhash: handleSize,
}

func (b BaseType) String() string {
	if b < LastBase {
		return baseNames[b]
	}
	return baseNames[Unknown]
}

// Size returns the number of bytes one value of b occupies in a buffer.
func (b BaseType) Size() int {
	if b < LastBase {
		return baseSizes[b]
	}
	return 0
}

// IsFloatingPoint reports whether b is half, float or double.
func (b BaseType) IsFloatingPoint() bool {
	return b == Half || b == Float || b == Double
}

// IsSigned reports whether b can hold negative values.
func (b BaseType) IsSigned() bool {
	switch b {
	case Int8, Int16, Int32, Int64, Half, Float, Double:
		return true
	}
	return false
}

// IsInteger reports whether b is one of the fixed-width integer kinds.
func (b BaseType) IsInteger() bool {
	return b >= Uint8 && b <= Int64
}

// IsNumeric reports whether b is an integer or floating-point kind.
func (b BaseType) IsNumeric() bool {
	return b >= Uint8 && b <= Double
}

// lookupBase resolves a base keyword or alias.
func lookupBase(name string) (BaseType, bool) {
	for i, n := range baseNames {
		if n == name {
			return BaseType(i), true
		}
	}
	b, ok := baseAliases[name]
	return b, ok
}
