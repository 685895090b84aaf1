// Package encode encodes ir values to JSON text.
//
// Emission is single-pass and append-only: object members are written in
// the object's sorted key order, numbers as normalized decimal text, and
// strings with the reader's escape set plus `/` always escaped.
package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/aidaneastcott/json-parser/debug"
	"github.com/aidaneastcott/json-parser/ir"
)

type encState struct {
	Color func(ir.Kind, ColorAttr, string) string
}

func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	err := encodeValue(v, w, es)
	if err != nil && debug.Encode() {
		debug.Logf("encode: %s value: %v", v.Kind(), err)
	}
	return err
}

func encodeValue(v ir.Value, w io.Writer, es *encState) error {
	if v.IsNull() {
		return writeText(w, es, ir.NullKind, ValueColor, "null")
	}
	return v.Visit(ir.Visitor{
		Object: func(o *ir.Object) error { return encodeObject(o, w, es) },
		Array:  func(a *ir.Array) error { return encodeArray(a, w, es) },
		Number: func(n *ir.Number) error { return encodeNumber(n, w, es) },
		String: func(s *ir.String) error {
			return writeText(w, es, ir.StringKind, ValueColor, quote(s.Get()))
		},
		Bool: func(b *ir.Bool) error { return encodeBool(b, w, es) },
	})
}

func encodeObject(o *ir.Object, w io.Writer, es *encState) error {
	if err := writeText(w, es, ir.ObjectKind, SepColor, "{"); err != nil {
		return err
	}
	first := true
	for key, v := range o.All() {
		if !first {
			if err := writeText(w, es, ir.ObjectKind, SepColor, ","); err != nil {
				return err
			}
		}
		first = false
		if err := writeText(w, es, ir.ObjectKind, FieldColor, quote(key)); err != nil {
			return err
		}
		if err := writeText(w, es, ir.ObjectKind, SepColor, ":"); err != nil {
			return err
		}
		if err := encodeValue(*v, w, es); err != nil {
			return err
		}
	}
	return writeText(w, es, ir.ObjectKind, SepColor, "}")
}

func encodeArray(a *ir.Array, w io.Writer, es *encState) error {
	if err := writeText(w, es, ir.ArrayKind, SepColor, "["); err != nil {
		return err
	}
	first := true
	for _, v := range a.All() {
		if !first {
			if err := writeText(w, es, ir.ArrayKind, SepColor, ","); err != nil {
				return err
			}
		}
		first = false
		if err := encodeValue(*v, w, es); err != nil {
			return err
		}
	}
	return writeText(w, es, ir.ArrayKind, SepColor, "]")
}

func encodeNumber(n *ir.Number, w io.Writer, es *encState) error {
	var text string
	switch {
	case n.IsFloat():
		text = trimZeros(strconv.FormatFloat(n.Float(), 'f', -1, 64))
	case n.IsUint():
		text = strconv.FormatUint(n.Uint(), 10)
	default:
		text = strconv.FormatInt(n.Int(), 10)
	}
	return writeText(w, es, ir.NumberKind, ValueColor, text)
}

func encodeBool(b *ir.Bool, w io.Writer, es *encState) error {
	text := "false"
	if b.Get() {
		text = "true"
	}
	return writeText(w, es, ir.BoolKind, ValueColor, text)
}

// trimZeros strips trailing zero digits after a decimal point and removes
// the point itself if nothing remains after it.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func quote(s string) string {
	sb := make([]byte, 0, len(s)+2)
	sb = append(sb, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			sb = append(sb, '\\', '"')
		case '\\':
			sb = append(sb, '\\', '\\')
		case '/':
			sb = append(sb, '\\', '/')
		case '\b':
			sb = append(sb, '\\', 'b')
		case '\f':
			sb = append(sb, '\\', 'f')
		case '\n':
			sb = append(sb, '\\', 'n')
		case '\r':
			sb = append(sb, '\\', 'r')
		case '\t':
			sb = append(sb, '\\', 't')
		default:
			sb = append(sb, c)
		}
	}
	sb = append(sb, '"')
	return string(sb)
}

func writeText(w io.Writer, es *encState, k ir.Kind, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(k, a, s)
	}
	_, err := io.WriteString(w, s)
	return err
}
