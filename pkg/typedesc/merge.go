package typedesc

// BaseTypeMerge returns the smallest base kind that holds the range and
// precision of both a's and b's base kinds. Only base kinds are considered.
//
// Integers of one signedness merge to the wider kind. Mixed signedness needs a
// signed kind wider than the unsigned one; uint64 with a signed kind has none
// and yields double. An integer with a floating kind yields a floating kind
// whose significand holds the integer: half for 8-bit, float for 16-bit,
// double for 32- and 64-bit. Unknown defers to the other side. Any other
// pairing (string, pointer, hash, void) falls back to float.
func BaseTypeMerge(a, b TypeDesc) BaseType {
	return mergeBase(a.BaseType, b.BaseType)
}

// MergeBaseTypes folds BaseTypeMerge over ts from left to right. It returns
// Unknown for no arguments.
func MergeBaseTypes(ts ...TypeDesc) BaseType {
	merged := Unknown
	for _, t := range ts {
		merged = mergeBase(merged, t.BaseType)
	}
	return merged
}

func mergeBase(a, b BaseType) BaseType {
	switch {
	case a == b:
		return a
	case a == Unknown:
		return b
	case b == Unknown:
		return a
	case !a.IsNumeric() || !b.IsNumeric():
		return Float
	case a.IsFloatingPoint() || b.IsFloatingPoint():
		return mergeFloat(a, b)
	}
	return mergeInteger(a, b)
}

func mergeFloat(a, b BaseType) BaseType {
	if a.IsInteger() {
		a = floatHolding(a)
	}
	if b.IsInteger() {
		b = floatHolding(b)
	}
	if a.Size() >= b.Size() {
		return a
	}
	return b
}

// floatHolding returns the narrowest floating kind whose significand covers
// every value of integer kind b, or double when none does.
func floatHolding(b BaseType) BaseType {
	switch b.Size() {
	case 1:
		return Half
	case 2:
		return Float
	}
	return Double
}

func mergeInteger(a, b BaseType) BaseType {
	if a.IsSigned() == b.IsSigned() {
		if a.Size() >= b.Size() {
			return a
		}
		return b
	}

	signed, unsigned := a, b
	if unsigned.IsSigned() {
		signed, unsigned = b, a
	}
	if signed.Size() > unsigned.Size() {
		return signed
	}
	switch unsigned {
	case Uint8:
		return Int16
	case Uint16:
		return Int32
	case Uint32:
		return Int64
	}
	return Double
}
