package typedesc

import (
	"reflect"

	"github.com/conduit-lang/typedesc/pkg/ustring"
	"github.com/x448/float16"
)

// Described is implemented by native Go types that know their descriptor.
type Described interface {
	TypeDesc() TypeDesc
}

// Native aggregate types laid out exactly as their descriptors.
type (
	Vec2f         [2]float32
	Vec3f         [3]float32
	Vec4f         [4]float32
	Vec2i         [2]int32
	Vec3i         [3]int32
	Color3f       [3]float32
	M33f          [9]float32
	M44f          [16]float32
	M33d          [9]float64
	M44d          [16]float64
	Box2f         [2]Vec2f
	Box3f         [2]Vec3f
	Box2i         [2]Vec2i
	Box3i         [2]Vec3i
	Rational2i    [2]int32
	SMPTETimeCode [2]uint32
	SMPTEKeyCode  [7]int32
)

func (Vec2f) TypeDesc() TypeDesc         { return TypeVector2 }
func (Vec3f) TypeDesc() TypeDesc         { return TypeVector }
func (Vec4f) TypeDesc() TypeDesc         { return TypeVector4 }
func (Vec2i) TypeDesc() TypeDesc         { return TypeVector2i }
func (Vec3i) TypeDesc() TypeDesc         { return TypeVector3i }
func (Color3f) TypeDesc() TypeDesc       { return TypeColor }
func (M33f) TypeDesc() TypeDesc          { return TypeMatrix33 }
func (M44f) TypeDesc() TypeDesc          { return TypeMatrix44 }
func (M33d) TypeDesc() TypeDesc          { return NewAggregate(Double, Matrix33, NoSemantics, 0) }
func (M44d) TypeDesc() TypeDesc          { return NewAggregate(Double, Matrix44, NoSemantics, 0) }
func (Box2f) TypeDesc() TypeDesc         { return TypeBox2 }
func (Box3f) TypeDesc() TypeDesc         { return TypeBox3 }
func (Box2i) TypeDesc() TypeDesc         { return TypeBox2i }
func (Box3i) TypeDesc() TypeDesc         { return TypeBox3i }
func (Rational2i) TypeDesc() TypeDesc    { return TypeRational }
func (SMPTETimeCode) TypeDesc() TypeDesc { return TypeTimeCode }
func (SMPTEKeyCode) TypeDesc() TypeDesc  { return TypeKeyCode }

var (
	describedType = reflect.TypeOf((*Described)(nil)).Elem()
	float16Type   = reflect.TypeOf(float16.Float16(0))
	handleType    = reflect.TypeOf(ustring.Handle(0))
	hashType      = reflect.TypeOf(ustring.Hash(0))
	stringType    = reflect.TypeOf("")
	uintptrType   = reflect.TypeOf(uintptr(0))
)

// goTypes is the storage type of each base kind inside a typed buffer.
var goTypes = [...]reflect.Type{
	Uint8:       reflect.TypeOf(uint8(0)),
	Int8:        reflect.TypeOf(int8(0)),
	Uint16:      reflect.TypeOf(uint16(0)),
	Int16:       reflect.TypeOf(int16(0)),
	Uint32:      reflect.TypeOf(uint32(0)),
	Int32:       reflect.TypeOf(int32(0)),
	Uint64:      reflect.TypeOf(uint64(0)),
	Int64:       reflect.TypeOf(int64(0)),
	Half:        float16Type,
	Float:       reflect.TypeOf(float32(0)),
	Double:      reflect.TypeOf(float64(0)),
	String:      handleType,
	Ptr:         uintptrType,
	Ustringhash: hashType,
}

// GoType returns the Go type that stores one value of b in a buffer, or nil
// for Unknown and None.
func (b BaseType) GoType() reflect.Type {
	if b < LastBase {
		return goTypes[b]
	}
	return nil
}

// Of returns the descriptor of the Go type T.
func Of[T any]() TypeDesc {
	return FromGoType(reflect.TypeOf((*T)(nil)).Elem())
}

// FromGoType maps a Go type to its descriptor. Types implementing Described
// report their own; fixed arrays and slices of a described or scalar type
// become sized and unsized arrays. Anything else, including arrays of
// arrays, maps to TypeUnknown.
func FromGoType(rt reflect.Type) TypeDesc {
	if rt == nil {
		return TypeUnknown
	}
	if rt.Kind() != reflect.Interface && rt.Implements(describedType) {
		return reflect.Zero(rt).Interface().(Described).TypeDesc()
	}

	switch rt {
	case float16Type:
		return TypeHalf
	case handleType, stringType:
		return TypeString
	case hashType:
		return TypeUstringhash
	}

	switch rt.Kind() {
	case reflect.Uint8:
		return TypeUInt8
	case reflect.Int8:
		return TypeInt8
	case reflect.Uint16:
		return TypeUInt16
	case reflect.Int16:
		return TypeInt16
	case reflect.Uint32:
		return TypeUInt32
	case reflect.Int32:
		return TypeInt32
	case reflect.Uint64:
		return TypeUInt64
	case reflect.Int64:
		return TypeInt64
	case reflect.Int:
		return intOfSize(rt.Size(), true)
	case reflect.Uint:
		return intOfSize(rt.Size(), false)
	case reflect.Float32:
		return TypeFloat
	case reflect.Float64:
		return TypeDouble
	case reflect.String:
		return TypeString
	case reflect.Pointer, reflect.UnsafePointer, reflect.Uintptr:
		return TypePointer
	case reflect.Array:
		return arrayOf(rt.Elem(), rt.Len())
	case reflect.Slice:
		return arrayOf(rt.Elem(), -1)
	}
	return TypeUnknown
}

func arrayOf(elem reflect.Type, n int) TypeDesc {
	t := FromGoType(elem)
	if t.IsUnknown() || t.IsArray() {
		return TypeUnknown
	}
	t.ArrayLen = int32(n)
	return t
}

func intOfSize(size uintptr, signed bool) TypeDesc {
	if size == 4 {
		if signed {
			return TypeInt32
		}
		return TypeUInt32
	}
	if signed {
		return TypeInt64
	}
	return TypeUInt64
}
