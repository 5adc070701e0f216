package nodec

import "math"

// Node is the tagged-union intermediate value for JSON-like data. It is a
// finite, acyclic tree built bottom-up through the constructors below; the
// zero Node is the null node. Array order is significant and preserved;
// object iteration order is not, and callers must not depend on it.
type Node struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Node
	obj  map[string]Node
}

// Null returns the null node.
func Null() Node { return Node{kind: KindNull} }

// Bool returns a boolean node.
func Bool(v bool) Node { return Node{kind: KindBool, b: v} }

// Number returns a numeric node. float64 is the single carrier for every
// native numeric type; see FromInt/FromUint/FromFloat for the family
// constructors.
func Number(v float64) Node { return Node{kind: KindNumber, num: v} }

// String returns a string node.
func String(v string) Node { return Node{kind: KindString, str: v} }

// Array returns an array node holding the given elements in order.
func Array(items ...Node) Node {
	cp := make([]Node, len(items))
	copy(cp, items)
	return Node{kind: KindArray, arr: cp}
}

// Object returns an object node holding a copy of the given fields.
func Object(fields map[string]Node) Node {
	cp := make(map[string]Node, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Node{kind: KindObject, obj: cp}
}

// EmptyObject returns the canonical "no data" node: an object with no
// fields. It is constructed fresh on every call and is the conventional
// neutral context for conversions that need none.
func EmptyObject() Node { return Object(nil) }

// ObjectFrom builds an object node by converting every value through its
// MarshalNode. The first failing value aborts the whole construction; no
// partial object is produced.
func ObjectFrom(values map[string]Marshaler) (Node, error) {
	fields := make(map[string]Node, len(values))
	for k, v := range values {
		n, err := v.MarshalNode()
		if err != nil {
			return Node{}, err
		}
		fields[k] = n
	}
	return Node{kind: KindObject, obj: fields}, nil
}

// ArrayFrom builds an array node by converting every element through its
// MarshalNode, with the same first-failure contract as ObjectFrom.
func ArrayFrom(values []Marshaler) (Node, error) {
	items := make([]Node, 0, len(values))
	for _, v := range values {
		n, err := v.MarshalNode()
		if err != nil {
			return Node{}, err
		}
		items = append(items, n)
	}
	return Node{kind: KindArray, arr: items}, nil
}

// Kind reports the variant stored in the node.
func (n Node) Kind() Kind { return n.kind }

// IsNull reports whether the node is the null variant.
func (n Node) IsNull() bool { return n.kind == KindNull }

// AsString extracts the string payload. It reports false for any other
// variant; a mismatch is absence, not an error.
func (n Node) AsString() (string, bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.str, true
}

// AsBool extracts the boolean payload.
func (n Node) AsBool() (bool, bool) {
	if n.kind != KindBool {
		return false, false
	}
	return n.b, true
}

// AsFloat extracts the numeric payload.
func (n Node) AsFloat() (float64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	return n.num, true
}

// AsInt extracts the numeric payload as int64. The stored number must be
// exactly representable: no fractional part and within int64 range.
func (n Node) AsInt() (int64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	f := n.num
	if f != math.Trunc(f) || f < -9223372036854775808.0 || f >= 9223372036854775808.0 {
		return 0, false
	}
	return int64(f), true
}

// AsUint extracts the numeric payload as uint64 under the same exactness
// rule as AsInt.
func (n Node) AsUint() (uint64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	f := n.num
	if f != math.Trunc(f) || f < 0 || f >= 18446744073709551616.0 {
		return 0, false
	}
	return uint64(f), true
}

// Items returns the elements of an array node, or nil for any other variant.
func (n Node) Items() []Node {
	if n.kind != KindArray {
		return nil
	}
	return n.arr
}

// Fields returns the fields of an object node, or nil for any other variant.
func (n Node) Fields() map[string]Node {
	if n.kind != KindObject {
		return nil
	}
	return n.obj
}

// Get looks up a field of an object node.
func (n Node) Get(key string) (Node, bool) {
	if n.kind != KindObject {
		return Node{}, false
	}
	v, ok := n.obj[key]
	return v, ok
}

// Index returns the i-th element of an array node.
func (n Node) Index(i int) (Node, bool) {
	if n.kind != KindArray || i < 0 || i >= len(n.arr) {
		return Node{}, false
	}
	return n.arr[i], true
}

// Len returns the number of elements of an array node or fields of an
// object node, and 0 otherwise.
func (n Node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.arr)
	case KindObject:
		return len(n.obj)
	default:
		return 0
	}
}

// Equal reports deep structural equality. Object field order is ignored.
func (n Node) Equal(o Node) bool {
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case KindNull:
		return true
	case KindBool:
		return n.b == o.b
	case KindNumber:
		return n.num == o.num
	case KindString:
		return n.str == o.str
	case KindArray:
		if len(n.arr) != len(o.arr) {
			return false
		}
		for i := range n.arr {
			if !n.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(n.obj) != len(o.obj) {
			return false
		}
		for k, v := range n.obj {
			ov, ok := o.obj[k]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
