package typedesc

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// keyword is a name that stands for a whole base+aggregate+semantics
// combination.
type keyword struct {
	name string
	t    TypeDesc
	// exact keywords are the canonical spelling of t.
	exact bool
	// shape keywords accept a ":base" qualifier and are the canonical
	// spelling for their shape over any other base kind.
	shape bool
}

// fixedLen reports whether the keyword carries its own array length.
func (kw keyword) fixedLen() bool {
	return kw.t.ArrayLen != 0
}

func (kw keyword) matches(t TypeDesc, sameBase bool) bool {
	if sameBase && kw.t.BaseType != t.BaseType {
		return false
	}
	if kw.t.Aggregate != t.Aggregate || kw.t.VecSemantics != t.VecSemantics {
		return false
	}
	if kw.fixedLen() {
		return kw.t.ArrayLen == t.ArrayLen
	}
	return true
}

var keywords = []keyword{
	{name: "color", t: TypeColor, exact: true, shape: true},
	{name: "point", t: TypePoint, exact: true, shape: true},
	{name: "vector", t: TypeVector, exact: true, shape: true},
	{name: "normal", t: TypeNormal, exact: true, shape: true},
	{name: "vector2", t: TypeVector2, exact: true, shape: true},
	{name: "vector4", t: TypeVector4, exact: true},
	{name: "float4", t: TypeFloat4},
	{name: "float2", t: TypeFloat2, exact: true},
	{name: "float3", t: TypeFloat3, exact: true},
	{name: "matrix", t: TypeMatrix44, exact: true},
	{name: "matrix44", t: TypeMatrix44, shape: true},
	{name: "matrix33", t: TypeMatrix33, exact: true, shape: true},
	{name: "vector2i", t: TypeVector2i, exact: true},
	{name: "vector3i", t: TypeVector3i, exact: true},
	{name: "box2", t: TypeBox2, exact: true, shape: true},
	{name: "box3", t: TypeBox3, exact: true, shape: true},
	{name: "box2i", t: TypeBox2i, exact: true},
	{name: "box3i", t: TypeBox3i, exact: true},
	{name: "timecode", t: TypeTimeCode, exact: true, shape: true},
	{name: "keycode", t: TypeKeyCode, exact: true, shape: true},
	{name: "rational", t: TypeRational, exact: true, shape: true},
	{name: "vec2", t: TypeFloat2, shape: true},
	{name: "vec3", t: TypeFloat3, shape: true},
	{name: "vec4", t: TypeFloat4, shape: true},
}

func lookupKeyword(name string) (keyword, bool) {
	for _, kw := range keywords {
		if kw.name == name {
			return kw, true
		}
	}
	return keyword{}, false
}

// knownNames lists every spelling the parser accepts, for suggestions.
func knownNames() []string {
	names := make([]string, 0, len(baseNames)+len(baseAliases)+len(keywords))
	names = append(names, baseNames[:]...)
	names = append(names, slices.Sorted(maps.Keys(baseAliases))...)
	for _, kw := range keywords {
		names = append(names, kw.name)
	}
	return names
}

// String returns the canonical name of t, for example "float", "int[5]",
// "normal" or "vec3:int16[]". Parsing the name yields a descriptor
// equivalent to t; it is equal to t unless t carries semantics that cannot
// be spelled together with its shape and array length.
func (t TypeDesc) String() string {
	if t.Aggregate == 0 {
		t.Aggregate = Scalar
	}
	if !t.Aggregate.Valid() {
		return baseNames[Unknown]
	}

	for _, kw := range keywords {
		if kw.exact && kw.matches(t, true) {
			return kw.name + arraySuffix(t, kw)
		}
	}
	if t.Aggregate == Scalar && t.VecSemantics == NoSemantics {
		return t.BaseType.String() + arraySuffix(t, keyword{})
	}
	for _, kw := range keywords {
		if kw.shape && kw.matches(t, false) {
			return kw.name + ":" + t.BaseType.String() + arraySuffix(t, kw)
		}
	}

	// The semantics have no spelling for this shape or length.
	t.VecSemantics = NoSemantics
	return t.String()
}

func arraySuffix(t TypeDesc, kw keyword) string {
	switch {
	case kw.fixedLen():
		return ""
	case t.ArrayLen > 0:
		return "[" + strconv.Itoa(int(t.ArrayLen)) + "]"
	case t.ArrayLen < 0:
		return "[]"
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler using the canonical name.
func (t TypeDesc) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The whole text must be
// a type name.
func (t *TypeDesc) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// FromString sets t to the type named at the start of s and returns the
// number of bytes consumed. On failure t becomes TypeUnknown and 0 is
// returned; a positive result with unconsumed input means trailing text
// followed a valid name.
func (t *TypeDesc) FromString(s string) int {
	parsed, n, err := parseName(s)
	if err != nil {
		*t = TypeUnknown
		return 0
	}
	*t = parsed
	return n
}

// Parse parses a complete type name. Surrounding whitespace is allowed;
// anything else after the name is an error.
func Parse(s string) (TypeDesc, error) {
	t, n, err := parseName(s)
	if err != nil {
		return TypeUnknown, err
	}
	if rest := s[n:]; strings.TrimSpace(rest) != "" {
		return TypeUnknown, newParseError(ErrTrailingInput, s, n,
			"unexpected text after type name: "+strconv.Quote(rest))
	}
	return t, nil
}

// MustParse is like Parse but panics on error. Use it for names known at
// compile time.
func MustParse(s string) TypeDesc {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func parseName(s string) (TypeDesc, int, *ParseError) {
	pos := skipSpace(s, 0)
	start := pos
	word, pos := scanIdent(s, pos)
	if word == "" {
		return TypeUnknown, 0, newParseError(ErrUnknownKeyword, s, start, "expected a type name")
	}

	var t TypeDesc
	kw, isKeyword := lookupKeyword(word)
	if isKeyword {
		t = kw.t
	} else if b, ok := lookupBase(word); ok {
		t = New(b)
	} else {
		err := newParseError(ErrUnknownKeyword, s, start, "unknown type "+strconv.Quote(word))
		err.Suggestion = suggestName(word)
		return TypeUnknown, 0, err
	}

	if isKeyword && kw.shape && pos < len(s) && s[pos] == ':' {
		qstart := pos + 1
		qual, next := scanIdent(s, qstart)
		b, ok := lookupBase(qual)
		if !ok {
			return TypeUnknown, 0, newParseError(ErrBadQualifier, s, qstart,
				"expected a base type after ':' in "+strconv.Quote(word))
		}
		t.BaseType = b
		pos = next
	}

	open := skipSpace(s, pos)
	if open >= len(s) || s[open] != '[' {
		return t, pos, nil
	}
	if isKeyword && kw.fixedLen() {
		return TypeUnknown, 0, newParseError(ErrFixedLengthArray, s, open,
			strconv.Quote(word)+" already has an array length of "+strconv.Itoa(int(kw.t.ArrayLen)))
	}

	pos = skipSpace(s, open+1)
	arrayLen := int64(-1)
	if digits := scanDigits(s, pos); digits > pos {
		n, err := strconv.ParseInt(s[pos:digits], 10, 32)
		if err != nil {
			return TypeUnknown, 0, newParseError(ErrArrayLength, s, pos,
				"array length "+s[pos:digits]+" is out of range")
		}
		arrayLen = n
		pos = skipSpace(s, digits)
	}
	if pos >= len(s) || s[pos] != ']' {
		return TypeUnknown, 0, newParseError(ErrMalformedArray, s, pos,
			"expected a non-negative array length or ']'")
	}
	t.ArrayLen = int32(arrayLen)
	return t, pos + 1, nil
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t' || s[pos] == '\n' || s[pos] == '\r') {
		pos++
	}
	return pos
}

func scanIdent(s string, pos int) (string, int) {
	start := pos
	for pos < len(s) {
		c := s[pos]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (pos > start && c >= '0' && c <= '9') {
			pos++
			continue
		}
		break
	}
	return s[start:pos], pos
}

func scanDigits(s string, pos int) int {
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	return pos
}
