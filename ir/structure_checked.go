//go:build !jsontrust_structure

package ir

// checkStructure gates key and index precondition checks. The default build
// reports violations as ErrInvalidKey/ErrInvalidIndex.
const checkStructure = true
