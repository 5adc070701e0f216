package nodec

// Context carries auxiliary data through a conversion call beyond the node
// itself: a lookup table, a parent value, a locale. It is intentionally
// type-erased at the contract boundary; concrete-type compatibility between
// caller and implementer is the implementer's responsibility and is not
// checked centrally. A Context lives for the duration of a single conversion
// call and must not be retained by the converted value.
type Context = any

// Marshaler renders a native value into a Node. The signature is fallible so
// composite types can surface field-level failures, even though primitive
// encodes never fail.
type Marshaler interface {
	MarshalNode() (Node, error)
}

// Unmarshaler populates a native value from a Node. Implementations report
// *ConversionError when the node's variant or value is incompatible.
type Unmarshaler interface {
	UnmarshalNode(n Node, ctx Context) error
}

// DefaultContext resolves a nil context to the canonical empty object.
func DefaultContext(ctx Context) Context {
	if ctx == nil {
		return EmptyObject()
	}
	return ctx
}

// Decode allocates a T and populates it from n, supplying the node itself as
// the conversion context. Conversions that need no context ignore it;
// conversions that require a specific context type should be called through
// DecodeCtx instead.
func Decode[T any, PT interface {
	*T
	Unmarshaler
}](n Node) (T, error) {
	return DecodeCtx[T, PT](n, n)
}

// DecodeCtx allocates a T and populates it from n with the given context.
func DecodeCtx[T any, PT interface {
	*T
	Unmarshaler
}](n Node, ctx Context) (T, error) {
	var v T
	if err := PT(&v).UnmarshalNode(n, ctx); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Encode renders a Marshaler into a Node.
func Encode(m Marshaler) (Node, error) {
	return m.MarshalNode()
}

// MarshalNode makes Node identity-convertible: the node encodes to itself.
// This is the base case terminating recursive conversion of composites.
func (n Node) MarshalNode() (Node, error) { return n, nil }

// UnmarshalNode copies the input node unchanged, ignoring the context.
func (n *Node) UnmarshalNode(in Node, _ Context) error {
	*n = in
	return nil
}
