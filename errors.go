package nodec

import (
	"errors"
	"fmt"
)

// Conversion codes (exported consts for IDE completion and type safety by
// convention).
const (
	CodeUnableToConvert = "unable_to_convert"
)

// ConversionError reports a Node that could not be converted into the
// requested native type. It is the single error kind raised by the decode
// direction; encoding primitives never fails, but composite types layered on
// the conversion contract propagate their field-level failures through the
// same channel.
type ConversionError struct {
	Code   string // One of the codes listed above.
	Target string // Name of the requested native type.
	Node   Node   // The offending node.
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: %s into %s", e.Code, e.Node.Kind(), e.Target)
}

// NewUnableToConvert builds a ConversionError for a node whose variant or
// value is incompatible with the target type.
func NewUnableToConvert(target string, n Node) *ConversionError {
	return &ConversionError{Code: CodeUnableToConvert, Target: target, Node: n}
}

// AsConversionError extracts a *ConversionError from an error using
// errors.As internally.
func AsConversionError(err error) (*ConversionError, bool) {
	if err == nil {
		return nil, false
	}
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
