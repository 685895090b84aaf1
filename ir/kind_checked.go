//go:build !jsontrust_kind

package ir

// checkKind gates active-kind precondition checks. The default build reports
// violations as ErrWrongKind.
const checkKind = true
