package typedesc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseTypeMerge(t *testing.T) {
	tests := []struct {
		name     string
		a, b     BaseType
		expected BaseType
	}{
		{"same", Float, Float, Float},
		{"unknown defers", Unknown, Int16, Int16},
		{"unsigned widths", Uint8, Uint32, Uint32},
		{"signed widths", Int16, Int64, Int64},
		{"signed holds narrower unsigned", Int32, Uint16, Int32},
		{"uint8 with int8", Uint8, Int8, Int16},
		{"uint16 with int16", Uint16, Int16, Int32},
		{"uint32 with int8", Uint32, Int8, Int64},
		{"uint64 with int64", Uint64, Int64, Double},
		{"half with uint8", Half, Uint8, Half},
		{"half with int16", Half, Int16, Float},
		{"float with int32", Float, Int32, Double},
		{"float with int8", Float, Int8, Float},
		{"double with int64", Double, Int64, Double},
		{"half with float", Half, Float, Float},
		{"float with double", Float, Double, Double},
		{"string falls back", String, Int32, Float},
		{"pointer falls back", Ptr, Float, Float},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BaseTypeMerge(New(tt.a), New(tt.b)))
			assert.Equal(t, tt.expected, BaseTypeMerge(New(tt.b), New(tt.a)), "merge must be symmetric")
		})
	}
}

func TestBaseTypeMerge_Properties(t *testing.T) {
	for a := Unknown; a < LastBase; a++ {
		assert.Equal(t, a, BaseTypeMerge(New(a), New(a)), "merge(%s,%s)", a, a)
		for b := Unknown; b < LastBase; b++ {
			ab := BaseTypeMerge(New(a), New(b))
			assert.Equal(t, ab, BaseTypeMerge(New(b), New(a)), "merge(%s,%s) symmetry", a, b)

			if a.IsInteger() && b.IsFloatingPoint() {
				assert.True(t, ab.IsFloatingPoint(), "merge(%s,%s) = %s", a, b, ab)
				assert.GreaterOrEqual(t, maxFloat(ab), maxInteger(a), "merge(%s,%s) = %s must hold the range of %s", a, b, ab, a)
			}
		}
	}
}

func TestBaseTypeMerge_IgnoresShape(t *testing.T) {
	assert.Equal(t, Double, BaseTypeMerge(TypePoint, NewArray(Int32, 4)))
}

func TestMergeBaseTypes(t *testing.T) {
	assert.Equal(t, Unknown, MergeBaseTypes())
	assert.Equal(t, Uint8, MergeBaseTypes(TypeUInt8))
	assert.Equal(t, Int32, MergeBaseTypes(TypeUInt8, TypeInt8, TypeUInt16))
	assert.Equal(t, Float, MergeBaseTypes(TypeUInt8, TypeHalf, TypeInt16))
	assert.Equal(t,
		BaseTypeMerge(New(BaseTypeMerge(TypeInt8, TypeUInt32)), TypeHalf),
		MergeBaseTypes(TypeInt8, TypeUInt32, TypeHalf))
}

func maxFloat(b BaseType) float64 {
	switch b {
	case Half:
		return 65504
	case Float:
		return math.MaxFloat32
	}
	return math.MaxFloat64
}

func maxInteger(b BaseType) float64 {
	switch b {
	case Uint8:
		return math.MaxUint8
	case Int8:
		return math.MaxInt8
	case Uint16:
		return math.MaxUint16
	case Int16:
		return math.MaxInt16
	case Uint32:
		return math.MaxUint32
	case Int32:
		return math.MaxInt32
	case Uint64:
		return math.MaxUint64
	}
	return math.MaxInt64
}
