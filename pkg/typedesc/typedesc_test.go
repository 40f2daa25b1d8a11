package typedesc

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseType_Size(t *testing.T) {
	tests := []struct {
		base BaseType
		size int
	}{
		{Unknown, 0},
		{None, 0},
		{Uint8, 1},
		{Int8, 1},
		{Uint16, 2},
		{Int16, 2},
		{Uint32, 4},
		{Int32, 4},
		{Uint64, 8},
		{Int64, 8},
		{Half, 2},
		{Float, 4},
		{Double, 8},
		{String, 8},
		{Ustringhash, 8},
		{LastBase, 0},
	}

	for _, tt := range tests {
		t.Run(tt.base.String(), func(t *testing.T) {
			assert.Equal(t, tt.size, tt.base.Size())
		})
	}
}

func TestBaseType_Predicates(t *testing.T) {
	assert.True(t, Half.IsFloatingPoint())
	assert.True(t, Double.IsFloatingPoint())
	assert.False(t, Int32.IsFloatingPoint())

	assert.True(t, Int8.IsSigned())
	assert.True(t, Float.IsSigned())
	assert.False(t, Uint64.IsSigned())
	assert.False(t, String.IsSigned())

	assert.True(t, Uint16.IsInteger())
	assert.False(t, Half.IsInteger())
	assert.True(t, Double.IsNumeric())
	assert.False(t, Ptr.IsNumeric())
}

func TestTypeDesc_Sizes(t *testing.T) {
	tests := []struct {
		name          string
		desc          TypeDesc
		elements      int
		scalarValues  int
		elementSize   int
		size          int
	}{
		{"float", TypeFloat, 1, 1, 4, 4},
		{"float[3]", NewArray(Float, 3), 3, 3, 4, 12},
		{"point", TypePoint, 1, 3, 12, 12},
		{"matrix", TypeMatrix44, 1, 16, 64, 64},
		{"box3i", TypeBox3i, 2, 6, 12, 24},
		{"keycode", TypeKeyCode, 7, 7, 4, 28},
		{"timecode", TypeTimeCode, 2, 2, 4, 8},
		{"half", TypeHalf, 1, 1, 2, 2},
		{"string[2]", NewArray(String, 2), 2, 2, 8, 16},
		{"double matrix33[4]", NewAggregate(Double, Matrix33, NoSemantics, 4), 4, 36, 72, 288},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.elements, tt.desc.ElementCount())
			assert.Equal(t, tt.scalarValues, tt.desc.ScalarValueCount())
			assert.Equal(t, tt.elementSize, tt.desc.ElementSize())
			assert.Equal(t, tt.size, tt.desc.Size())
			assert.Equal(t, tt.desc.ElementCount()*tt.desc.Aggregate.Count()*tt.desc.BaseSize(), tt.desc.Size())
		})
	}
}

func TestTypeDesc_UnsizedArrayQueriesPanic(t *testing.T) {
	unsized := NewArray(Int32, -1)

	assert.Panics(t, func() { unsized.ElementCount() })
	assert.Panics(t, func() { unsized.ScalarValueCount() })
	assert.Panics(t, func() { unsized.Size() })

	// Queries that ignore the array length stay valid.
	assert.Equal(t, 4, unsized.ElementSize())
	assert.Equal(t, TypeInt32, unsized.ElementType())
}

func TestMulSize_Saturates(t *testing.T) {
	assert.Equal(t, 12, MulSize(3, 4))
	assert.Equal(t, 0, MulSize(0, math.MaxInt))
	assert.Equal(t, math.MaxInt, MulSize(math.MaxInt, 2))
	assert.Equal(t, math.MaxInt, MulSize(math.MaxInt/2+1, 2))
	assert.Panics(t, func() { MulSize(-1, 2) })
}

func TestTypeDesc_Projections(t *testing.T) {
	arr := NewAggregate(Float, Vec3, Point, 5)

	elem := arr.ElementType()
	assert.Equal(t, TypePoint, elem)
	assert.Equal(t, TypeFloat, arr.ScalarType())

	arr.Unarray()
	assert.Equal(t, TypePoint, arr)
}

func TestTypeDesc_ArrayPredicates(t *testing.T) {
	assert.False(t, TypeFloat.IsArray())
	assert.True(t, NewArray(Float, 4).IsSizedArray())
	assert.False(t, NewArray(Float, 4).IsUnsizedArray())
	assert.True(t, NewArray(Float, -1).IsUnsizedArray())
	assert.True(t, NewArray(Float, -1).IsArray())
}

func TestTypeDesc_IsKnown(t *testing.T) {
	assert.False(t, TypeUnknown.IsKnown())
	assert.True(t, TypeUnknown.IsUnknown())
	assert.False(t, TypeDesc{}.IsKnown())

	// Only the base kind matters.
	assert.False(t, NewAggregate(Unknown, Vec3, Point, 4).IsKnown())
	assert.True(t, New(None).IsKnown())
}

func TestTypeDesc_ShapePredicates(t *testing.T) {
	assert.True(t, TypeFloat2.IsVec2(Float))
	assert.False(t, TypeVector2i.IsVec2(Float))
	assert.True(t, TypeVector2i.IsVec2(Int32))
	assert.True(t, TypeNormal.IsVec3(Float))
	assert.False(t, NewAggregate(Float, Vec3, NoSemantics, 2).IsVec3(Float))
	assert.True(t, TypeVector4.IsVec4(Float))

	assert.True(t, TypeColor.IsColor(Float))
	assert.False(t, TypePoint.IsColor(Float))
	assert.True(t, TypePoint.IsPoint(Float))

	assert.True(t, TypeBox2.IsBox2(Float))
	assert.True(t, TypeBox2i.IsBox2(Int32))
	assert.False(t, TypeBox3.IsBox2(Float))
	assert.True(t, TypeBox3.IsBox3(Float))
	assert.False(t, NewAggregate(Float, Vec3, Box, 3).IsBox3(Float))
}

func TestTypeDesc_EqualsBase(t *testing.T) {
	assert.True(t, TypeFloat.EqualsBase(Float))
	assert.False(t, TypeFloat.EqualsBase(Double))
	assert.False(t, TypePoint.EqualsBase(Float))
	assert.False(t, NewArray(Float, 2).EqualsBase(Float))
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name       string
		a, b       TypeDesc
		equivalent bool
	}{
		{"identical", TypePoint, TypePoint, true},
		{"semantics ignored", TypePoint, TypeNormal, true},
		{"unsized vs sized", NewArray(Int32, -1), NewArray(Int32, 4), true},
		{"different lengths", NewArray(Int32, 3), NewArray(Int32, 4), false},
		{"array vs scalar", NewArray(Int32, 1), TypeInt32, false},
		{"unsized vs scalar", NewArray(Int32, -1), TypeInt32, false},
		{"different base", TypeFloat, TypeDouble, false},
		{"different aggregate", TypeFloat2, TypeFloat3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equivalent, Equivalent(tt.a, tt.b))
			assert.Equal(t, tt.equivalent, Equivalent(tt.b, tt.a), "equivalence must be symmetric")
			assert.Equal(t, tt.equivalent, tt.a.Equivalent(tt.b))
		})
	}
}

func TestEquivalent_EqualImpliesEquivalent(t *testing.T) {
	for _, entry := range Catalog() {
		assert.True(t, Equivalent(entry.Type, entry.Type), entry.Name)
	}
	// Equivalent without being equal.
	a, b := NewArray(Float, -1), NewArray(Float, 8)
	assert.True(t, Equivalent(a, b))
	assert.NotEqual(t, a, b)
}

func TestTypeDesc_Ordering(t *testing.T) {
	var all []TypeDesc
	for _, entry := range Catalog() {
		all = append(all, entry.Type)
	}
	all = append(all, NewArray(Float, -1), NewArray(Float, 3), NewAggregate(Float, Vec3, Point, 2))

	for _, a := range all {
		assert.False(t, a.Less(a), "%s < itself", a)
		for _, b := range all {
			if a == b {
				assert.Equal(t, 0, a.Compare(b))
				continue
			}
			assert.NotEqual(t, a.Less(b), b.Less(a), "%s and %s must be ordered", a, b)
			for _, c := range all {
				if a.Less(b) && b.Less(c) {
					assert.True(t, a.Less(c), "transitivity %s < %s < %s", a, b, c)
				}
			}
		}
	}

	sorted := slices.Clone(all)
	slices.SortFunc(sorted, TypeDesc.Compare)
	require.True(t, slices.IsSortedFunc(sorted, TypeDesc.Compare))
	assert.Equal(t, TypeUnknown, sorted[0])
}

func TestTypeDesc_OrderingFieldPriority(t *testing.T) {
	assert.True(t, TypeUInt8.Less(TypeInt8))
	assert.True(t, TypeFloat.Less(TypeFloat2))
	assert.True(t, TypeColor.Less(TypePoint))
	assert.True(t, NewArray(Float, -1).Less(TypeFloat))
	assert.True(t, TypeFloat.Less(NewArray(Float, 1)))
}
