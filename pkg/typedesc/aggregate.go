package typedesc

// Aggregate describes how many scalar components form one element. The
// numeric value is the component count.
type Aggregate uint8

const (
	Scalar   Aggregate = 1
	Vec2     Aggregate = 2
	Vec3     Aggregate = 3
	Vec4     Aggregate = 4
	Matrix33 Aggregate = 9
	Matrix44 Aggregate = 16
)

// Count returns the number of components. The zero Aggregate counts as Scalar.
func (a Aggregate) Count() int {
	if a == 0 {
		return 1
	}
	return int(a)
}

// Valid reports whether a is one of the defined shapes.
func (a Aggregate) Valid() bool {
	switch a {
	case Scalar, Vec2, Vec3, Vec4, Matrix33, Matrix44:
		return true
	}
	return false
}

func (a Aggregate) String() string {
	switch a {
	case Scalar:
		return "scalar"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Matrix33:
		return "matrix33"
	case Matrix44:
		return "matrix44"
	}
	return "invalid"
}

// VecSemantics hints at what an aggregate represents. It never changes the
// byte layout.
type VecSemantics uint8

const (
	NoSemantics VecSemantics = iota
	Color
	Point
	Vector
	Normal
	TimeCode // uint32[2] SMPTE timecode
	KeyCode  // int32[7] SMPTE keycode
	Rational // vec2 holding numerator and denominator
	Box      // vec2[2] or vec3[2] holding min and max corners
)

var semanticNames = [...]string{
	NoSemantics: "none",
	Color:       "color",
	Point:       "point",
	Vector:      "vector",
	Normal:      "normal",
	TimeCode:    "timecode",
	KeyCode:     "keycode",
	Rational:    "rational",
	Box:         "box",
}

func (s VecSemantics) String() string {
	if int(s) < len(semanticNames) {
		return semanticNames[s]
	}
	return "invalid"
}
