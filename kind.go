package nodec

import "fmt"

// Kind identifies the variant stored in a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "<unknown kind>"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   KindNull,
		"Bool":   KindBool,
		"Number": KindNumber,
		"String": KindString,
		"Array":  KindArray,
		"Object": KindObject,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// IsLeaf reports whether the kind carries no child nodes.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindArray, KindObject:
		return false
	default:
		return true
	}
}
