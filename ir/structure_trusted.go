//go:build jsontrust_structure

package ir

// The caller guarantees key and index preconditions; violations are
// undefined (typically a runtime bounds panic).
const checkStructure = false
