package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildObject(t *testing.T, keys ...string) *Object {
	t.Helper()
	o := &Object{}
	for i, k := range keys {
		if err := o.Add(k, FromInt(int64(i))); err != nil {
			t.Fatalf("add %q: %v", k, err)
		}
	}
	return o
}

func TestObjectSortedIteration(t *testing.T) {
	o := buildObject(t, "zebra", "apple", "mango", "kiwi")
	want := []string{"apple", "kiwi", "mango", "zebra"}
	if d := cmp.Diff(want, o.Keys()); d != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", d)
	}
	var got []string
	for k := range o.All() {
		got = append(got, k)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("All order mismatch (-want +got):\n%s", d)
	}
	got = got[:0]
	for k := range o.Backward() {
		got = append(got, k)
	}
	wantRev := []string{"zebra", "mango", "kiwi", "apple"}
	if d := cmp.Diff(wantRev, got); d != "" {
		t.Errorf("Backward order mismatch (-want +got):\n%s", d)
	}
}

func TestObjectAddDuplicate(t *testing.T) {
	o := buildObject(t, "a")
	if err := o.Add("a", FromInt(2)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("duplicate add: err = %v, want ErrInvalidKey", err)
	}
	if o.Len() != 1 {
		t.Errorf("failed add changed size: %d", o.Len())
	}
}

func TestObjectGetSet(t *testing.T) {
	o := buildObject(t, "a", "b")
	v, err := o.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := v.AsInt(); x != 1 {
		t.Errorf("value at b = %d, want 1", x)
	}
	if _, err := o.Get("c"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("get absent: err = %v, want ErrInvalidKey", err)
	}

	if err := o.Set("a", FromString("new")); err != nil {
		t.Fatal(err)
	}
	k, err := o.KindAt("a")
	if err != nil {
		t.Fatal(err)
	}
	if k != StringKind {
		t.Errorf("kind after set = %s, want string", k)
	}
	if err := o.Set("c", FromInt(0)); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("set absent: err = %v, want ErrInvalidKey", err)
	}
}

func TestObjectPopRemove(t *testing.T) {
	o := buildObject(t, "a", "b", "c")
	v, err := o.Pop("b")
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := v.AsInt(); x != 1 {
		t.Errorf("popped value = %d, want 1", x)
	}
	if o.Contains("b") {
		t.Error("popped key still present")
	}
	if _, err := o.Pop("b"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("pop absent: err = %v, want ErrInvalidKey", err)
	}
	if err := o.Remove("a"); err != nil {
		t.Fatal(err)
	}
	if err := o.Remove("a"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("remove absent: err = %v, want ErrInvalidKey", err)
	}
	if d := cmp.Diff([]string{"c"}, o.Keys()); d != "" {
		t.Errorf("keys after removals (-want +got):\n%s", d)
	}
}

func TestObjectRename(t *testing.T) {
	o := buildObject(t, "a", "m")
	if err := o.Rename("a", "z"); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"m", "z"}, o.Keys()); d != "" {
		t.Errorf("keys after rename (-want +got):\n%s", d)
	}
	v, err := o.Get("z")
	if err != nil {
		t.Fatal(err)
	}
	if x, _ := v.AsInt(); x != 0 {
		t.Errorf("renamed value = %d, want 0", x)
	}
	if err := o.Rename("missing", "q"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("rename absent: err = %v, want ErrInvalidKey", err)
	}
	if err := o.Rename("m", "z"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("rename onto existing: err = %v, want ErrInvalidKey", err)
	}
}

func TestObjectClear(t *testing.T) {
	o := buildObject(t, "a", "b")
	o.Clear()
	if !o.Empty() || o.Len() != 0 {
		t.Errorf("clear left %d entries", o.Len())
	}
}
