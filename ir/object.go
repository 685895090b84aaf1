package ir

import (
	"fmt"
	"iter"
	"slices"
)

// Object is a mapping from string keys to values. Keys are unique and
// iterate in lexicographic byte order regardless of insertion order. The
// zero Object is empty and ready to use.
type Object struct {
	keys []string
	vals []Value
}

func (o *Object) kind() Kind { return ObjectKind }

func (o *Object) clone() node {
	c := &Object{
		keys: slices.Clone(o.keys),
		vals: make([]Value, len(o.vals)),
	}
	for i := range o.vals {
		c.vals[i] = o.vals[i].Clone()
	}
	return c
}

func (o *Object) find(key string) (int, bool) {
	return slices.BinarySearch(o.keys, key)
}

func (o *Object) Get(key string) (*Value, error) {
	i, ok := o.find(key)
	if checkStructure && !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return &o.vals[i], nil
}

func (o *Object) KindAt(key string) (Kind, error) {
	v, err := o.Get(key)
	if err != nil {
		return NullKind, err
	}
	return v.Kind(), nil
}

// Add inserts a new key. Inserting a key that is already present is a
// structural error.
func (o *Object) Add(key string, v Value) error {
	i, ok := o.find(key)
	if checkStructure && ok {
		return fmt.Errorf("%w: duplicate %q", ErrInvalidKey, key)
	}
	o.keys = slices.Insert(o.keys, i, key)
	o.vals = slices.Insert(o.vals, i, v)
	return nil
}

// Set updates an existing key. Updating an absent key is a structural
// error.
func (o *Object) Set(key string, v Value) error {
	i, ok := o.find(key)
	if checkStructure && !ok {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	o.vals[i] = v
	return nil
}

// Pop removes key and returns its value.
func (o *Object) Pop(key string) (Value, error) {
	i, ok := o.find(key)
	if checkStructure && !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	out := o.vals[i].Take()
	o.keys = slices.Delete(o.keys, i, i+1)
	o.vals = slices.Delete(o.vals, i, i+1)
	return out, nil
}

func (o *Object) Remove(key string) error {
	_, err := o.Pop(key)
	return err
}

// Rename moves the value at oldKey to newKey. oldKey must be present and
// newKey must not.
func (o *Object) Rename(oldKey, newKey string) error {
	i, ok := o.find(oldKey)
	if checkStructure && !ok {
		return fmt.Errorf("%w: %q", ErrInvalidKey, oldKey)
	}
	if checkStructure {
		if _, ok := o.find(newKey); ok {
			return fmt.Errorf("%w: duplicate %q", ErrInvalidKey, newKey)
		}
	}
	v := o.vals[i].Take()
	o.keys = slices.Delete(o.keys, i, i+1)
	o.vals = slices.Delete(o.vals, i, i+1)
	j, _ := o.find(newKey)
	o.keys = slices.Insert(o.keys, j, newKey)
	o.vals = slices.Insert(o.vals, j, v)
	return nil
}

func (o *Object) Contains(key string) bool {
	_, ok := o.find(key)
	return ok
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Empty() bool {
	return len(o.keys) == 0
}

func (o *Object) Clear() {
	o.keys = nil
	o.vals = nil
}

// Keys returns the keys in iteration order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// All iterates key/value pairs in sorted key order.
func (o *Object) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for i := range o.keys {
			if !yield(o.keys[i], &o.vals[i]) {
				return
			}
		}
	}
}

// Backward iterates key/value pairs in reverse sorted key order.
func (o *Object) Backward() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for i := len(o.keys) - 1; i >= 0; i-- {
			if !yield(o.keys[i], &o.vals[i]) {
				return
			}
		}
	}
}
