package ir

import (
	"cmp"
	"slices"
)

// Scalar is the set of native types with a static kind mapping: integers
// and floats map to Number, string to String, bool to Bool. The mapping is
// total over the set and unambiguous.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64 | string | bool
}

// Orderable is Scalar without bool.
type Orderable interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64 | string
}

// KindOf reports the kind T maps to.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return BoolKind
	case string:
		return StringKind
	default:
		return NumberKind
	}
}

func From[T Scalar](x T) Value {
	var v Value
	Set(&v, x)
	return v
}

// Set assigns x to v under the static kind mapping. Signed integrals select
// the signed number representation, unsigned the unsigned one, floats the
// floating one.
func Set[T Scalar](v *Value, x T) {
	switch x := any(x).(type) {
	case bool:
		v.SetBool(x)
	case string:
		v.SetString(x)
	case int:
		v.SetInt(int64(x))
	case int8:
		v.SetInt(int64(x))
	case int16:
		v.SetInt(int64(x))
	case int32:
		v.SetInt(int64(x))
	case int64:
		v.SetInt(x)
	case uint:
		v.SetUint(uint64(x))
	case uint8:
		v.SetUint(uint64(x))
	case uint16:
		v.SetUint(uint64(x))
	case uint32:
		v.SetUint(uint64(x))
	case uint64:
		v.SetUint(x)
	case uintptr:
		v.SetUint(uint64(x))
	case float32:
		v.SetFloat(float64(x))
	case float64:
		v.SetFloat(x)
	}
}

// Get reads v out as T. The active kind must equal KindOf[T]; numeric
// readout converts from the active representation with Go conversion
// semantics, which may truncate or reinterpret sign.
func Get[T Scalar](v *Value) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		b, err := v.AsBool()
		if err != nil {
			return zero, err
		}
		return any(b).(T), nil
	case string:
		s, err := v.AsString()
		if err != nil {
			return zero, err
		}
		return any(s).(T), nil
	}
	n, err := v.AsNumber()
	if err != nil {
		return zero, err
	}
	var out any
	switch any(zero).(type) {
	case int:
		out = int(n.Int())
	case int8:
		out = int8(n.Int())
	case int16:
		out = int16(n.Int())
	case int32:
		out = int32(n.Int())
	case int64:
		out = n.Int()
	case uint:
		out = uint(n.Uint())
	case uint8:
		out = uint8(n.Uint())
	case uint16:
		out = uint16(n.Uint())
	case uint32:
		out = uint32(n.Uint())
	case uint64:
		out = n.Uint()
	case uintptr:
		out = uintptr(n.Uint())
	case float32:
		out = float32(n.Float())
	case float64:
		out = n.Float()
	}
	return out.(T), nil
}

// SortAs sorts a stably by the natural order of each element read out as T.
// Elements of the wrong kind fail the sort and leave a unchanged.
func SortAs[T Orderable](a *Array) error {
	return SortAsFunc(a, cmp.Compare[T])
}

// SortAsFunc is SortAs with a caller-supplied total order over T.
func SortAsFunc[T Orderable](a *Array, compare func(T, T) int) error {
	type pair struct {
		key T
		val Value
	}
	ps := make([]pair, len(a.elems))
	for i := range a.elems {
		k, err := Get[T](&a.elems[i])
		if err != nil {
			return err
		}
		ps[i] = pair{key: k, val: a.elems[i]}
	}
	slices.SortStableFunc(ps, func(x, y pair) int {
		return compare(x.key, y.key)
	})
	for i := range ps {
		a.elems[i] = ps[i].val
	}
	return nil
}
