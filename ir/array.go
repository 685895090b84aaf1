package ir

import (
	"fmt"
	"iter"
	"slices"
)

// Array is an ordered, 0-based, gap-free sequence of values. The zero Array
// is empty and ready to use.
type Array struct {
	elems []Value
}

func (a *Array) kind() Kind { return ArrayKind }

func (a *Array) clone() node {
	c := &Array{elems: make([]Value, len(a.elems))}
	for i := range a.elems {
		c.elems[i] = a.elems[i].Clone()
	}
	return c
}

func (a *Array) Get(i int) (*Value, error) {
	if checkStructure && (i < 0 || i >= len(a.elems)) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return &a.elems[i], nil
}

func (a *Array) KindAt(i int) (Kind, error) {
	v, err := a.Get(i)
	if err != nil {
		return NullKind, err
	}
	return v.Kind(), nil
}

func (a *Array) Set(i int, v Value) error {
	if checkStructure && (i < 0 || i >= len(a.elems)) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	a.elems[i] = v
	return nil
}

func (a *Array) Front() (*Value, error) {
	return a.Get(0)
}

func (a *Array) Back() (*Value, error) {
	if checkStructure && len(a.elems) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrInvalidIndex)
	}
	return &a.elems[len(a.elems)-1], nil
}

// Add inserts v at index i, shifting later elements. i == Len() appends.
func (a *Array) Add(i int, v Value) error {
	if checkStructure && (i < 0 || i > len(a.elems)) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	a.elems = slices.Insert(a.elems, i, v)
	return nil
}

func (a *Array) Append(v Value) {
	a.elems = append(a.elems, v)
}

func (a *Array) Remove(i int) error {
	_, err := a.PopAt(i)
	return err
}

// PopAt removes and returns the element at index i.
func (a *Array) PopAt(i int) (Value, error) {
	if checkStructure && (i < 0 || i >= len(a.elems)) {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	out := a.elems[i].Take()
	a.elems = slices.Delete(a.elems, i, i+1)
	return out, nil
}

// Pop removes and returns the last element.
func (a *Array) Pop() (Value, error) {
	if checkStructure && len(a.elems) == 0 {
		return Value{}, fmt.Errorf("%w: empty array", ErrInvalidIndex)
	}
	return a.PopAt(len(a.elems) - 1)
}

func (a *Array) Len() int {
	return len(a.elems)
}

func (a *Array) Empty() bool {
	return len(a.elems) == 0
}

func (a *Array) Clear() {
	a.elems = nil
}

// Sort sorts the elements in place, stably, by the supplied total order.
func (a *Array) Sort(cmp func(x, y *Value) int) {
	slices.SortStableFunc(a.elems, func(x, y Value) int {
		return cmp(&x, &y)
	})
}

// All iterates elements in index order.
func (a *Array) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i := range a.elems {
			if !yield(i, &a.elems[i]) {
				return
			}
		}
	}
}

// Backward iterates elements in reverse index order.
func (a *Array) Backward() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i := len(a.elems) - 1; i >= 0; i-- {
			if !yield(i, &a.elems[i]) {
				return
			}
		}
	}
}
