package ir

import (
	"errors"
	"testing"
)

func TestKindOf(t *testing.T) {
	if k := KindOf[bool](); k != BoolKind {
		t.Errorf("KindOf[bool] = %s", k)
	}
	if k := KindOf[string](); k != StringKind {
		t.Errorf("KindOf[string] = %s", k)
	}
	if k := KindOf[int8](); k != NumberKind {
		t.Errorf("KindOf[int8] = %s", k)
	}
	if k := KindOf[uintptr](); k != NumberKind {
		t.Errorf("KindOf[uintptr] = %s", k)
	}
	if k := KindOf[float32](); k != NumberKind {
		t.Errorf("KindOf[float32] = %s", k)
	}
}

func TestFromGetRoundTrip(t *testing.T) {
	v := From(-5)
	if x, err := Get[int](&v); err != nil || x != -5 {
		t.Errorf("Get[int] = %d, %v", x, err)
	}
	v = From(uint8(200))
	if x, err := Get[uint8](&v); err != nil || x != 200 {
		t.Errorf("Get[uint8] = %d, %v", x, err)
	}
	v = From(1.5)
	if x, err := Get[float64](&v); err != nil || x != 1.5 {
		t.Errorf("Get[float64] = %v, %v", x, err)
	}
	v = From("hi")
	if x, err := Get[string](&v); err != nil || x != "hi" {
		t.Errorf("Get[string] = %q, %v", x, err)
	}
	v = From(true)
	if x, err := Get[bool](&v); err != nil || !x {
		t.Errorf("Get[bool] = %t, %v", x, err)
	}
}

func TestGetConverts(t *testing.T) {
	// Readout converts from the active representation with Go conversion
	// semantics.
	v := From(300.7)
	if x, err := Get[int8](&v); err != nil || x != 44 {
		t.Errorf("Get[int8] of 300.7 = %d, %v", x, err)
	}
	v = From(int64(-1))
	if x, err := Get[uint64](&v); err != nil || x != ^uint64(0) {
		t.Errorf("Get[uint64] of -1 = %d, %v", x, err)
	}
}

func TestGetMismatch(t *testing.T) {
	v := From("abc")
	if _, err := Get[int](&v); !errors.Is(err, ErrWrongKind) {
		t.Errorf("Get[int] on string: err = %v, want ErrWrongKind", err)
	}
	v = Null()
	if _, err := Get[bool](&v); !errors.Is(err, ErrWrongKind) {
		t.Errorf("Get[bool] on null: err = %v, want ErrWrongKind", err)
	}
}

func TestSetPicksRepr(t *testing.T) {
	var v Value
	Set(&v, int16(-2))
	n, err := v.AsNumber()
	if err != nil {
		t.Fatal(err)
	}
	if !n.IsInt() {
		t.Error("signed integral should select the signed representation")
	}
	Set(&v, uint32(2))
	if !n.IsUint() {
		t.Error("unsigned integral should select the unsigned representation")
	}
	Set(&v, float32(2))
	if !n.IsFloat() {
		t.Error("float should select the floating representation")
	}
}
