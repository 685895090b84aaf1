//go:build jsontrust_kind

package ir

// The caller guarantees the active kind; violations are undefined
// (typically a failed type assertion panic).
const checkKind = false
