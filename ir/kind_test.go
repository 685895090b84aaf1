package ir

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		k Kind
		s string
	}{
		{NullKind, "Null"},
		{NumberKind, "Number"},
		{StringKind, "String"},
		{BoolKind, "Bool"},
		{ObjectKind, "Object"},
		{ArrayKind, "Array"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.s {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.k), got, tt.s)
		}
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if got != k {
			t.Errorf("round trip %s: got %s", k, got)
		}
	}
}

func TestKindUnmarshalUnknown(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("frob")); err == nil {
		t.Error("expected error for unknown kind name")
	}
}

func TestKindIsLeaf(t *testing.T) {
	for _, k := range Kinds() {
		want := k != ObjectKind && k != ArrayKind
		if got := k.IsLeaf(); got != want {
			t.Errorf("%s.IsLeaf() = %t, want %t", k, got, want)
		}
	}
}
