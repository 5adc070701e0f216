package nodec

import "fmt"

// Numeric family constraints. The shared encode/decode logic below is
// written once per family and parameterized over these, rather than once per
// concrete width.
type (
	// Signed covers the signed integer widths.
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}
	// Unsigned covers the unsigned integer widths.
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}
	// Float covers the floating-point widths.
	Float interface {
		~float32 | ~float64
	}
)

// DecodeString extracts a string; any other variant fails.
func DecodeString(n Node, _ Context) (string, error) {
	s, ok := n.AsString()
	if !ok {
		return "", NewUnableToConvert("string", n)
	}
	return s, nil
}

// DecodeBool extracts a bool; any other variant fails.
func DecodeBool(n Node, _ Context) (bool, error) {
	b, ok := n.AsBool()
	if !ok {
		return false, NewUnableToConvert("bool", n)
	}
	return b, nil
}

// DecodeInt narrows the node's number into the requested signed width. The
// stored value must be exactly representable: no fractional part and within
// T's range. Out-of-range values fail; they never wrap.
func DecodeInt[T Signed](n Node, _ Context) (T, error) {
	wide, ok := n.AsInt()
	if !ok {
		return 0, NewUnableToConvert(typeName[T](), n)
	}
	v := T(wide)
	if int64(v) != wide {
		return 0, NewUnableToConvert(typeName[T](), n)
	}
	return v, nil
}

// DecodeUint narrows the node's number into the requested unsigned width
// under the same exactness rule as DecodeInt.
func DecodeUint[T Unsigned](n Node, _ Context) (T, error) {
	wide, ok := n.AsUint()
	if !ok {
		return 0, NewUnableToConvert(typeName[T](), n)
	}
	v := T(wide)
	if uint64(v) != wide {
		return 0, NewUnableToConvert(typeName[T](), n)
	}
	return v, nil
}

// DecodeFloat extracts the node's number into the requested floating width.
// Any number is accepted; narrowing to float32 may lose precision silently,
// consistent with general floating-point narrowing.
func DecodeFloat[T Float](n Node, _ Context) (T, error) {
	f, ok := n.AsFloat()
	if !ok {
		return 0, NewUnableToConvert(typeName[T](), n)
	}
	return T(f), nil
}

// FromInt widens v to int64 and stores it in the float64 carrier. Lossy
// beyond 2^53 in magnitude.
func FromInt[T Signed](v T) Node { return Number(float64(int64(v))) }

// FromUint widens v to uint64 and stores it in the float64 carrier. Lossy
// beyond 2^53.
func FromUint[T Unsigned](v T) Node { return Number(float64(uint64(v))) }

// FromFloat widens v to float64.
func FromFloat[T Float](v T) Node { return Number(float64(v)) }

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
