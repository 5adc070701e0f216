package nodec

import "encoding/json"

// FromAny classifies a dynamic value by runtime shape and produces the
// corresponding Node. It is total: the closed set of expected shapes below
// (the shapes encoding/json-family decoders and yaml.v3 produce) is matched
// explicitly, and anything unrecognized degrades to the null node rather
// than failing.
func FromAny(v any) Node {
	switch x := v.(type) {
	case nil:
		return Null()
	case Node:
		return x
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Null()
		}
		return Number(f)
	case []any:
		items := make([]Node, len(x))
		for i, e := range x {
			items[i] = FromAny(e)
		}
		return Node{kind: KindArray, arr: items}
	case []Node:
		return Array(x...)
	case map[string]any:
		fields := make(map[string]Node, len(x))
		for k, e := range x {
			fields[k] = FromAny(e)
		}
		return Node{kind: KindObject, obj: fields}
	case map[string]Node:
		return Object(x)
	default:
		// unrecognized shape: permissive fallback, not an error
		return Null()
	}
}

// Interface renders the node as Go's dynamic representation: object becomes
// map[string]any, array becomes []any, scalars become bool/float64/string,
// null becomes nil. The inverse of FromAny up to the float64 number carrier.
func (n Node) Interface() any {
	switch n.kind {
	case KindBool:
		return n.b
	case KindNumber:
		return n.num
	case KindString:
		return n.str
	case KindArray:
		out := make([]any, len(n.arr))
		for i, e := range n.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(n.obj))
		for k, e := range n.obj {
			out[k] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

// DecodeSlice builds a typed sequence from a dynamic value by decoding each
// element with dec under a shared context. A value that is not already a
// sequence is treated as a one-element sequence. The first element failure
// aborts the whole construction; no partial result is returned. The family
// decoders (DecodeString, DecodeInt, ...) plug in as dec directly.
func DecodeSlice[T any](v any, ctx Context, dec func(Node, Context) (T, error)) ([]T, error) {
	items := sequence(v)
	out := make([]T, 0, len(items))
	for _, it := range items {
		e, err := dec(it, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// DecodeSet builds a typed set from a dynamic value with the same coercion
// and first-failure contract as DecodeSlice. Duplicate elements collapse.
func DecodeSet[T comparable](v any, ctx Context, dec func(Node, Context) (T, error)) (map[T]struct{}, error) {
	items := sequence(v)
	out := make(map[T]struct{}, len(items))
	for _, it := range items {
		e, err := dec(it, ctx)
		if err != nil {
			return nil, err
		}
		out[e] = struct{}{}
	}
	return out, nil
}

func sequence(v any) []Node {
	n := FromAny(v)
	if n.kind == KindArray {
		return n.arr
	}
	return []Node{n}
}
