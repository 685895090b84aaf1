// Package ir provides the in-memory representation for JSON documents.
//
// # Overview
//
// A document is a tree of values. Value is a single-slot, nullable owner of
// at most one concrete node; the concrete node kinds are Object, Array,
// Number, String and Bool. A Value owning no node reports NullKind. The node
// set is closed: values form a tagged union over exactly these five kinds
// plus null.
//
// Every value owns its subtree outright. There is no node sharing and no
// back-references, so a document is an acyclic ownership tree by
// construction. Clone performs a structural deep copy; Take transfers
// ownership and leaves the source null.
//
// # Creating Values
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	b := ir.FromBool(true)
//
//	obj := &ir.Object{}
//	obj.Add("key", ir.FromString("value"))
//	v = ir.FromObject(obj)
//
// The generic entry points From, Set and Get map native Go types to kinds
// statically: integers and floats to Number, string to String, bool to Bool.
// Reading a number out through Get performs a numeric conversion from
// whichever representation is active; the conversion may lose precision or
// reinterpret sign, which is intended.
//
// # Objects
//
// Object keys are unique and iterate in lexicographic byte order, not
// insertion order. Add fails on a duplicate key, Set and Remove fail on an
// absent one.
//
// # Error policy
//
// Structural errors (ErrInvalidKey, ErrInvalidIndex) and kind errors
// (ErrWrongKind) are checked by default. Building with the tag
// jsontrust_structure or jsontrust_kind compiles the corresponding checks
// out; such a build trusts the caller to hold the preconditions.
//
// # Thread safety
//
// Values are not thread-safe. Callers accessing a value from multiple
// goroutines must synchronize or clone.
package ir
