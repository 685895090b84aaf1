package ir

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	NumberKind
	StringKind
	BoolKind
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ObjectKind: "Object",
		ArrayKind:  "Array",
		StringKind: "String",
		NumberKind: "Number",
		BoolKind:   "Bool",
		NullKind:   "Null",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   NullKind,
		"Bool":   BoolKind,
		"Number": NumberKind,
		"String": StringKind,
		"Array":  ArrayKind,
		"Object": ObjectKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		NumberKind,
		StringKind,
		BoolKind,
		ObjectKind,
		ArrayKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ObjectKind, ArrayKind:
		return false
	default:
		return true
	}
}
