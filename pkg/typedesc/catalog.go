package typedesc

// Well-known descriptors. Treat them as constants.
var (
	TypeUnknown     = New(Unknown)
	TypeFloat       = New(Float)
	TypeColor       = NewAggregate(Float, Vec3, Color, 0)
	TypePoint       = NewAggregate(Float, Vec3, Point, 0)
	TypeVector      = NewAggregate(Float, Vec3, Vector, 0)
	TypeNormal      = NewAggregate(Float, Vec3, Normal, 0)
	TypeMatrix33    = NewAggregate(Float, Matrix33, NoSemantics, 0)
	TypeMatrix44    = NewAggregate(Float, Matrix44, NoSemantics, 0)
	TypeMatrix      = TypeMatrix44
	TypeFloat2      = NewAggregate(Float, Vec2, NoSemantics, 0)
	TypeFloat3      = NewAggregate(Float, Vec3, NoSemantics, 0)
	TypeVector2     = NewAggregate(Float, Vec2, Vector, 0)
	TypeFloat4      = NewAggregate(Float, Vec4, NoSemantics, 0)
	TypeVector4     = TypeFloat4
	TypeString      = New(String)
	TypeInt         = New(Int32)
	TypeUInt        = New(Uint32)
	TypeInt32       = New(Int32)
	TypeUInt32      = New(Uint32)
	TypeInt16       = New(Int16)
	TypeUInt16      = New(Uint16)
	TypeInt8        = New(Int8)
	TypeUInt8       = New(Uint8)
	TypeInt64       = New(Int64)
	TypeUInt64      = New(Uint64)
	TypeVector2i    = NewAggregate(Int32, Vec2, NoSemantics, 0)
	TypeVector3i    = NewAggregate(Int32, Vec3, NoSemantics, 0)
	TypeBox2        = NewAggregate(Float, Vec2, Box, 2)
	TypeBox3        = NewAggregate(Float, Vec3, Box, 2)
	TypeBox2i       = NewAggregate(Int32, Vec2, Box, 2)
	TypeBox3i       = NewAggregate(Int32, Vec3, Box, 2)
	TypeHalf        = New(Half)
	TypeDouble      = New(Double)
	TypeTimeCode    = NewAggregate(Uint32, Scalar, TimeCode, 2)
	TypeKeyCode     = NewAggregate(Int32, Scalar, KeyCode, 7)
	TypeRational    = NewAggregate(Int32, Vec2, Rational, 0)
	TypePointer     = New(Ptr)
	TypeUstringhash = New(Ustringhash)
)

// CatalogEntry names one well-known descriptor.
type CatalogEntry struct {
	Name string
	Type TypeDesc
}

// Catalog returns the well-known descriptors in a fixed order. The slice is
// a fresh copy on every call.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{"TypeUnknown", TypeUnknown},
		{"TypeFloat", TypeFloat},
		{"TypeColor", TypeColor},
		{"TypePoint", TypePoint},
		{"TypeVector", TypeVector},
		{"TypeNormal", TypeNormal},
		{"TypeMatrix33", TypeMatrix33},
		{"TypeMatrix44", TypeMatrix44},
		{"TypeFloat2", TypeFloat2},
		{"TypeFloat3", TypeFloat3},
		{"TypeVector2", TypeVector2},
		{"TypeFloat4", TypeFloat4},
		{"TypeString", TypeString},
		{"TypeInt", TypeInt},
		{"TypeUInt", TypeUInt},
		{"TypeInt16", TypeInt16},
		{"TypeUInt16", TypeUInt16},
		{"TypeInt8", TypeInt8},
		{"TypeUInt8", TypeUInt8},
		{"TypeInt64", TypeInt64},
		{"TypeUInt64", TypeUInt64},
		{"TypeVector2i", TypeVector2i},
		{"TypeVector3i", TypeVector3i},
		{"TypeBox2", TypeBox2},
		{"TypeBox3", TypeBox3},
		{"TypeBox2i", TypeBox2i},
		{"TypeBox3i", TypeBox3i},
		{"TypeHalf", TypeHalf},
		{"TypeDouble", TypeDouble},
		{"TypeTimeCode", TypeTimeCode},
		{"TypeKeyCode", TypeKeyCode},
		{"TypeRational", TypeRational},
		{"TypePointer", TypePointer},
		{"TypeUstringhash", TypeUstringhash},
	}
}
