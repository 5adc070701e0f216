// Package nodec provides:
//
// - Node: a tagged-union tree value for JSON-like data (null, bool, number, string, array, object)
// - A bidirectional, context-aware conversion contract (Marshaler/Unmarshaler) between Node and native values
// - Per-family numeric encode/decode with an exactness rule for integer narrowing
// - A total bridge between Node and Go's dynamic any representation, plus typed collection builders
//
// Design policy:
// - Keep only public APIs in the root package; put byte-level codecs under codec/.
// - Numbers share a single float64 carrier. Integers beyond 2^53 in magnitude
//   lose precision on encode; this is accepted, not guarded.
// - Decoding an integer fails unless the stored number is exactly representable
//   in the requested width. Nothing wraps or truncates silently.
//
// Typical usage:
//
//	n := nodec.FromAny(map[string]any{"port": 8080.0})
//	p, _ := n.Get("port")
//	port, err := nodec.DecodeUint[uint16](p, nil)
package nodec
