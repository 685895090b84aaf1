package ir

import "fmt"

// node is the closed set of concrete kinds a Value can own.
type node interface {
	kind() Kind
	clone() node
}

// Value is a nullable, single-slot owner of one concrete node. The zero
// Value is null.
type Value struct {
	n node
}

func Null() Value {
	return Value{}
}

func FromInt(v int64) Value {
	return Value{n: &Number{repr: reprInt, i: v}}
}

func FromUint(v uint64) Value {
	return Value{n: &Number{repr: reprUint, u: v}}
}

func FromFloat(v float64) Value {
	return Value{n: &Number{repr: reprFloat, f: v}}
}

func FromString(v string) Value {
	return Value{n: &String{s: v}}
}

func FromBool(v bool) Value {
	return Value{n: &Bool{b: v}}
}

// FromObject takes ownership of o.
func FromObject(o *Object) Value {
	return Value{n: o}
}

// FromArray takes ownership of a.
func FromArray(a *Array) Value {
	return Value{n: a}
}

func (v *Value) Kind() Kind {
	if v.n == nil {
		return NullKind
	}
	return v.n.kind()
}

func (v *Value) IsNull() bool {
	return v.n == nil
}

// Clone returns a structural deep copy of v.
func (v *Value) Clone() Value {
	if v.n == nil {
		return Value{}
	}
	return Value{n: v.n.clone()}
}

// Take transfers ownership of the owned node, leaving v null.
func (v *Value) Take() Value {
	out := Value{n: v.n}
	v.n = nil
	return out
}

func (v *Value) SetNull() {
	v.n = nil
}

func (v *Value) AsObject() (*Object, error) {
	if checkKind && v.Kind() != ObjectKind {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrWrongKind, v.Kind(), ObjectKind)
	}
	return v.n.(*Object), nil
}

func (v *Value) AsArray() (*Array, error) {
	if checkKind && v.Kind() != ArrayKind {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrWrongKind, v.Kind(), ArrayKind)
	}
	return v.n.(*Array), nil
}

func (v *Value) AsNumber() (*Number, error) {
	if checkKind && v.Kind() != NumberKind {
		return nil, fmt.Errorf("%w: have %s, want %s", ErrWrongKind, v.Kind(), NumberKind)
	}
	return v.n.(*Number), nil
}

func (v *Value) AsInt() (int64, error) {
	n, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	return n.Int(), nil
}

func (v *Value) AsUint() (uint64, error) {
	n, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	return n.Uint(), nil
}

func (v *Value) AsFloat() (float64, error) {
	n, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	return n.Float(), nil
}

func (v *Value) AsString() (string, error) {
	if checkKind && v.Kind() != StringKind {
		return "", fmt.Errorf("%w: have %s, want %s", ErrWrongKind, v.Kind(), StringKind)
	}
	return v.n.(*String).Get(), nil
}

func (v *Value) AsBool() (bool, error) {
	if checkKind && v.Kind() != BoolKind {
		return false, fmt.Errorf("%w: have %s, want %s", ErrWrongKind, v.Kind(), BoolKind)
	}
	return v.n.(*Bool).Get(), nil
}

// The Set* methods mutate the owned node in place when the kind already
// matches, so node identity survives repeated same-kind updates; otherwise
// they replace the owned node outright.

func (v *Value) SetInt(x int64) {
	if n, ok := v.n.(*Number); ok {
		n.SetInt(x)
		return
	}
	v.n = &Number{repr: reprInt, i: x}
}

func (v *Value) SetUint(x uint64) {
	if n, ok := v.n.(*Number); ok {
		n.SetUint(x)
		return
	}
	v.n = &Number{repr: reprUint, u: x}
}

func (v *Value) SetFloat(x float64) {
	if n, ok := v.n.(*Number); ok {
		n.SetFloat(x)
		return
	}
	v.n = &Number{repr: reprFloat, f: x}
}

func (v *Value) SetString(x string) {
	if n, ok := v.n.(*String); ok {
		n.Set(x)
		return
	}
	v.n = &String{s: x}
}

func (v *Value) SetBool(x bool) {
	if n, ok := v.n.(*Bool); ok {
		n.Set(x)
		return
	}
	v.n = &Bool{b: x}
}

// SetObject takes ownership of o.
func (v *Value) SetObject(o *Object) {
	if n, ok := v.n.(*Object); ok && n != o {
		*n = *o
		return
	}
	v.n = o
}

// SetArray takes ownership of a.
func (v *Value) SetArray(a *Array) {
	if n, ok := v.n.(*Array); ok && n != a {
		*n = *a
		return
	}
	v.n = a
}

// Visitor holds one handler per concrete kind. Handlers for kinds that
// cannot occur may be left nil.
type Visitor struct {
	Object func(*Object) error
	Array  func(*Array) error
	Number func(*Number) error
	String func(*String) error
	Bool   func(*Bool) error
}

// Visit dispatches to exactly one handler based on the active kind.
// Visiting a null value is a kind precondition violation.
func (v *Value) Visit(vis Visitor) error {
	switch n := v.n.(type) {
	case *Object:
		return vis.Object(n)
	case *Array:
		return vis.Array(n)
	case *Number:
		return vis.Number(n)
	case *String:
		return vis.String(n)
	case *Bool:
		return vis.Bool(n)
	}
	if checkKind {
		return fmt.Errorf("%w: visit on null value", ErrWrongKind)
	}
	panic("ir: visit on null value")
}
