package parse

import (
	"testing"

	"github.com/aidaneastcott/json-parser/encode"
	"github.com/aidaneastcott/json-parser/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Primitives
		`null`,
		`true`,
		`false`,
		`42`,
		`-17`,
		`3.14`,
		`""`,
		`"hello"`,
		`"with\nnewline"`,
		`"with \"quotes\""`,
		"\"\\u0041\"",

		// Arrays
		`[]`,
		`[1, 2, 3]`,
		`[1, 2, 3,]`,
		`[[1], [2, [3]]]`,

		// Objects
		`{}`,
		`{"a": 1, "b": 2}`,
		`{"nested": {"object": [null, true]}}`,

		// Near misses
		`tru`,
		`[1, 2`,
		`{"a": }`,
		`"\q"`,
		`123 abc`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		v, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// If parse succeeds the value must encode
		enc, err := encode.String(v)
		if err != nil {
			t.Fatalf("parsed value failed to encode: %v", err)
		}

		// A successful re-parse must yield an equal value. Re-parse may
		// fail: an oversized float literal can re-encode to integer text
		// that overflows.
		w, err := Parse([]byte(enc))
		if err != nil {
			return
		}
		if !ir.Equal(&v, &w) {
			t.Fatalf("round trip changed the value: %q -> %q", data, enc)
		}
	})
}
