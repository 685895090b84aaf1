package ir

import "errors"

var (
	ErrInvalidKey   = errors.New("invalid key")
	ErrInvalidIndex = errors.New("invalid index")
	ErrWrongKind    = errors.New("mismatched kinds")
)
