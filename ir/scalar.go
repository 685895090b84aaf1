package ir

type numRepr uint8

const (
	reprInt numRepr = iota
	reprUint
	reprFloat
)

// Number holds exactly one of three representations at a time: int64,
// uint64 or float64. Each Set* replaces the representation wholesale; each
// accessor converts from whichever representation is active, which may lose
// precision or reinterpret sign.
type Number struct {
	repr numRepr
	i    int64
	u    uint64
	f    float64
}

func (n *Number) kind() Kind { return NumberKind }

func (n *Number) clone() node {
	c := *n
	return &c
}

func (n *Number) SetInt(v int64) { *n = Number{repr: reprInt, i: v} }

func (n *Number) SetUint(v uint64) { *n = Number{repr: reprUint, u: v} }

func (n *Number) SetFloat(v float64) { *n = Number{repr: reprFloat, f: v} }

func (n *Number) IsInt() bool   { return n.repr == reprInt }
func (n *Number) IsUint() bool  { return n.repr == reprUint }
func (n *Number) IsFloat() bool { return n.repr == reprFloat }

func (n *Number) Int() int64 {
	switch n.repr {
	case reprUint:
		return int64(n.u)
	case reprFloat:
		return int64(n.f)
	}
	return n.i
}

func (n *Number) Uint() uint64 {
	switch n.repr {
	case reprInt:
		return uint64(n.i)
	case reprFloat:
		return uint64(n.f)
	}
	return n.u
}

func (n *Number) Float() float64 {
	switch n.repr {
	case reprInt:
		return float64(n.i)
	case reprUint:
		return float64(n.u)
	}
	return n.f
}

// String owns one text buffer, replaced wholesale on Set.
type String struct {
	s string
}

func (s *String) kind() Kind { return StringKind }

func (s *String) clone() node {
	c := *s
	return &c
}

func (s *String) Get() string  { return s.s }
func (s *String) Set(v string) { s.s = v }

// Bool owns one flag, replaced wholesale on Set.
type Bool struct {
	b bool
}

func (b *Bool) kind() Kind { return BoolKind }

func (b *Bool) clone() node {
	c := *b
	return &c
}

func (b *Bool) Get() bool  { return b.b }
func (b *Bool) Set(v bool) { b.b = v }
