// Package typedesc implements a compact runtime descriptor for data passed
// through untyped buffers: its base scalar kind, aggregate shape, semantic
// hint and array length. Descriptors are small comparable values; the
// algorithms built on them (name parsing, merging, sizing) never allocate
// beyond the strings they return.
package typedesc

import (
	"cmp"
	"fmt"
	"math"
	"math/bits"
)

// TypeDesc describes the shape of a value. ArrayLen is 0 for a non-array,
// positive for a fixed-length array and negative for an array whose length
// is not yet known.
//
// Build descriptors with the constructors or take them from the catalog; the
// zero TypeDesc has no aggregate set and is treated as an unknown scalar.
type TypeDesc struct {
	BaseType     BaseType
	Aggregate    Aggregate
	VecSemantics VecSemantics
	ArrayLen     int32
}

// New returns a non-array scalar of base kind b.
func New(b BaseType) TypeDesc {
	return TypeDesc{BaseType: b, Aggregate: Scalar}
}

// NewArray returns an array of n scalars of base kind b. A negative n makes
// an unsized array.
func NewArray(b BaseType, n int) TypeDesc {
	return TypeDesc{BaseType: b, Aggregate: Scalar, ArrayLen: int32(n)}
}

// NewAggregate returns a descriptor with every field set.
func NewAggregate(b BaseType, agg Aggregate, sem VecSemantics, arrayLen int) TypeDesc {
	return TypeDesc{BaseType: b, Aggregate: agg, VecSemantics: sem, ArrayLen: int32(arrayLen)}
}

// ElementCount returns 1 for a non-array or the array length. It panics for
// an unsized array, which has no element count.
func (t TypeDesc) ElementCount() int {
	if t.ArrayLen < 0 {
		panic(fmt.Sprintf("typedesc: ElementCount called on unsized array %s (arraylen %d)", t, t.ArrayLen))
	}
	if t.ArrayLen >= 1 {
		return int(t.ArrayLen)
	}
	return 1
}

// ScalarValueCount returns the number of base values: element count times
// aggregate count. It panics for an unsized array.
func (t TypeDesc) ScalarValueCount() int {
	return MulSize(t.ElementCount(), t.Aggregate.Count())
}

// Size returns the byte size of the whole value, saturating at math.MaxInt.
// It panics for an unsized array.
func (t TypeDesc) Size() int {
	if t.ArrayLen < 0 {
		panic(fmt.Sprintf("typedesc: Size called on unsized array %s (arraylen %d)", t, t.ArrayLen))
	}
	return MulSize(t.ElementCount(), t.ElementSize())
}

// ElementSize returns the byte size of one element, ignoring array-ness.
func (t TypeDesc) ElementSize() int {
	return t.Aggregate.Count() * t.BaseSize()
}

// BaseSize returns the byte size of one base value.
func (t TypeDesc) BaseSize() int {
	return t.BaseType.Size()
}

// ElementType strips the array-ness.
func (t TypeDesc) ElementType() TypeDesc {
	t.ArrayLen = 0
	return t
}

// ScalarType strips both array-ness and aggregate shape.
func (t TypeDesc) ScalarType() TypeDesc {
	return New(t.BaseType)
}

// Unarray demotes t to a non-array in place.
func (t *TypeDesc) Unarray() {
	t.ArrayLen = 0
}

func (t TypeDesc) IsArray() bool        { return t.ArrayLen != 0 }
func (t TypeDesc) IsUnsizedArray() bool { return t.ArrayLen < 0 }
func (t TypeDesc) IsSizedArray() bool   { return t.ArrayLen > 0 }

// IsUnknown reports whether the base kind is Unknown.
func (t TypeDesc) IsUnknown() bool { return t.BaseType == Unknown }

// IsKnown is the truth value of a descriptor: the base kind is not Unknown.
// Aggregate, semantics and array length are not considered.
func (t TypeDesc) IsKnown() bool { return t.BaseType != Unknown }

func (t TypeDesc) IsFloatingPoint() bool { return t.BaseType.IsFloatingPoint() }
func (t TypeDesc) IsSigned() bool        { return t.BaseType.IsSigned() }

// IsVec2 reports whether t is a non-array 2-vector of base kind b.
func (t TypeDesc) IsVec2(b BaseType) bool {
	return t.Aggregate == Vec2 && t.BaseType == b && !t.IsArray()
}

// IsVec3 reports whether t is a non-array 3-vector of base kind b.
func (t TypeDesc) IsVec3(b BaseType) bool {
	return t.Aggregate == Vec3 && t.BaseType == b && !t.IsArray()
}

// IsVec4 reports whether t is a non-array 4-vector of base kind b.
func (t TypeDesc) IsVec4(b BaseType) bool {
	return t.Aggregate == Vec4 && t.BaseType == b && !t.IsArray()
}

// IsColor reports whether t is a non-array 3-vector of base kind b marked as a color.
func (t TypeDesc) IsColor(b BaseType) bool {
	return t.IsVec3(b) && t.VecSemantics == Color
}

// IsPoint reports whether t is a non-array 3-vector of base kind b marked as a point.
func (t TypeDesc) IsPoint(b BaseType) bool {
	return t.IsVec3(b) && t.VecSemantics == Point
}

// IsBox2 reports whether t is a pair of 2-vectors of base kind b marked as a box.
func (t TypeDesc) IsBox2(b BaseType) bool {
	return t.Aggregate == Vec2 && t.BaseType == b && t.ArrayLen == 2 && t.VecSemantics == Box
}

// IsBox3 reports whether t is a pair of 3-vectors of base kind b marked as a box.
func (t TypeDesc) IsBox3(b BaseType) bool {
	return t.Aggregate == Vec3 && t.BaseType == b && t.ArrayLen == 2 && t.VecSemantics == Box
}

// EqualsBase reports whether t is a non-array scalar of base kind b.
func (t TypeDesc) EqualsBase(b BaseType) bool {
	return t.BaseType == b && t.Aggregate == Scalar && !t.IsArray()
}

// Equivalent reports whether t and o describe the same data up to semantic
// hints, treating an unsized array as matching any sized array.
func (t TypeDesc) Equivalent(o TypeDesc) bool {
	return Equivalent(t, o)
}

// Equivalent reports whether a and b match on base kind and aggregate shape
// and either share an array length or pair an unsized array with a sized one.
func Equivalent(a, b TypeDesc) bool {
	return a.BaseType == b.BaseType && a.Aggregate == b.Aggregate &&
		(a.ArrayLen == b.ArrayLen ||
			(a.IsUnsizedArray() && b.IsSizedArray()) ||
			(a.IsSizedArray() && b.IsUnsizedArray()))
}

// Compare orders descriptors by base kind, then aggregate, then semantics,
// then array length. It returns 0 only for equal descriptors.
func (t TypeDesc) Compare(o TypeDesc) int {
	if c := cmp.Compare(t.BaseType, o.BaseType); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Aggregate, o.Aggregate); c != 0 {
		return c
	}
	if c := cmp.Compare(t.VecSemantics, o.VecSemantics); c != 0 {
		return c
	}
	return cmp.Compare(t.ArrayLen, o.ArrayLen)
}

// Less reports whether t sorts before o.
func (t TypeDesc) Less(o TypeDesc) bool {
	return t.Compare(o) < 0
}

// MulSize multiplies two non-negative sizes, saturating at math.MaxInt
// instead of wrapping.
func MulSize(a, b int) int {
	if a < 0 || b < 0 {
		panic(fmt.Sprintf("typedesc: MulSize called with negative operand (%d, %d)", a, b))
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return math.MaxInt
	}
	return int(lo)
}
