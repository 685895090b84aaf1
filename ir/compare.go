package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values. The result will be 0 if
// a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return cmp.Compare(rank(ka), rank(kb))
	}
	switch ka {
	case NullKind:
		return 0
	case BoolKind:
		x := a.n.(*Bool).b
		y := b.n.(*Bool).b
		if x == y {
			return 0
		}
		if !x {
			return -1
		}
		return 1
	case NumberKind:
		return compareNumbers(a.n.(*Number), b.n.(*Number))
	case StringKind:
		return strings.Compare(a.n.(*String).s, b.n.(*String).s)
	case ArrayKind:
		return compareArrays(a.n.(*Array), b.n.(*Array))
	case ObjectKind:
		return compareObjects(a.n.(*Object), b.n.(*Object))
	}
	return 0
}

func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a kind.
// Order: Null < Bool < Number < String < Array < Object
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case NumberKind:
		return 2
	case StringKind:
		return 3
	case ArrayKind:
		return 4
	case ObjectKind:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Number) int {
	if a.repr == b.repr {
		switch a.repr {
		case reprInt:
			return cmp.Compare(a.i, b.i)
		case reprUint:
			return cmp.Compare(a.u, b.u)
		default:
			return cmp.Compare(a.f, b.f)
		}
	}
	// mixed representations compare numerically
	return cmp.Compare(a.Float(), b.Float())
}

func compareArrays(a, b *Array) int {
	n := min(len(a.elems), len(b.elems))
	for i := 0; i < n; i++ {
		if c := Compare(&a.elems[i], &b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.elems), len(b.elems))
}

func compareObjects(a, b *Object) int {
	n := min(len(a.keys), len(b.keys))
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(&a.vals[i], &b.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.keys), len(b.keys))
}
