// Package parse provides JSON parsing support.
//
// Each grammar rule is a speculative reader over (input, position): it
// returns a new position on success and consumes nothing on failure, so
// alternatives compose by trying them in order. The alternative order for a
// value is null, object, array, number, string, boolean.
package parse

import (
	"fmt"
	"strconv"

	"github.com/aidaneastcott/json-parser/debug"
	"github.com/aidaneastcott/json-parser/ir"
)

// Parse reads a single JSON value from d. The entire input must be
// consumed; anything but whitespace after the value fails the parse. No
// partial result is ever returned.
func Parse(d []byte) (ir.Value, error) {
	i := skipSpace(d, 0)
	v, next, ok, err := readValue(d, i)
	if err != nil {
		return ir.Value{}, err
	}
	if !ok {
		if debug.Parse() {
			debug.Logf("parse: no value at offset %d", i)
		}
		return ir.Value{}, fmt.Errorf("%w: no value at offset %d", ErrParse, i)
	}
	next = skipSpace(d, next)
	if next != len(d) {
		if debug.Parse() {
			debug.Logf("parse: trailing input at offset %d of %d", next, len(d))
		}
		return ir.Value{}, fmt.Errorf("%w: trailing input at offset %d", ErrParse, next)
	}
	return v, nil
}

func ParseString(s string) (ir.Value, error) {
	return Parse([]byte(s))
}

// readValue tries each alternative in order and takes the first success. A
// returned error is a hard failure (bad numeric literal, duplicate object
// key) that aborts the whole parse rather than backtracking.
func readValue(d []byte, i int) (ir.Value, int, bool, error) {
	if next, ok := readLit(d, i, "null"); ok {
		return ir.Null(), next, true, nil
	}
	obj, next, ok, err := readObject(d, i)
	if err != nil {
		return ir.Value{}, i, false, err
	}
	if ok {
		return ir.FromObject(obj), next, true, nil
	}
	arr, next, ok, err := readArray(d, i)
	if err != nil {
		return ir.Value{}, i, false, err
	}
	if ok {
		return ir.FromArray(arr), next, true, nil
	}
	num, next, ok, err := readNumber(d, i)
	if err != nil {
		return ir.Value{}, i, false, err
	}
	if ok {
		return num, next, true, nil
	}
	if s, next, ok := readString(d, i); ok {
		return ir.FromString(s), next, true, nil
	}
	if b, next, ok := readBool(d, i); ok {
		return ir.FromBool(b), next, true, nil
	}
	return ir.Value{}, i, false, nil
}

func readObject(d []byte, i int) (*ir.Object, int, bool, error) {
	j, ok := readByte(d, i, '{')
	if !ok {
		return nil, i, false, nil
	}
	obj := &ir.Object{}
	for {
		j = skipSpace(d, j)
		if obj.Empty() {
			if next, ok := readByte(d, j, '}'); ok {
				return obj, next, true, nil
			}
		}
		key, next, ok := readString(d, j)
		if !ok {
			return nil, i, false, nil
		}
		j = skipSpace(d, next)
		j, ok = readByte(d, j, ':')
		if !ok {
			return nil, i, false, nil
		}
		j = skipSpace(d, j)
		v, next, ok, err := readValue(d, j)
		if err != nil {
			return nil, i, false, err
		}
		if !ok {
			return nil, i, false, nil
		}
		if err := obj.Add(key, v); err != nil {
			return nil, i, false, fmt.Errorf("%w: %w at offset %d", ErrParse, err, j)
		}
		j = skipSpace(d, next)
		if next, ok := readByte(d, j, ','); ok {
			j = next
			continue
		}
		if next, ok := readByte(d, j, '}'); ok {
			return obj, next, true, nil
		}
		return nil, i, false, nil
	}
}

func readArray(d []byte, i int) (*ir.Array, int, bool, error) {
	j, ok := readByte(d, i, '[')
	if !ok {
		return nil, i, false, nil
	}
	arr := &ir.Array{}
	for {
		j = skipSpace(d, j)
		v, next, ok, err := readValue(d, j)
		if err != nil {
			return nil, i, false, err
		}
		if !ok {
			// `]` terminates wherever an element may start, so empty
			// arrays and trailing commas both parse
			if next, ok := readByte(d, j, ']'); ok {
				return arr, next, true, nil
			}
			return nil, i, false, nil
		}
		arr.Append(v)
		j = skipSpace(d, next)
		if next, ok := readByte(d, j, ','); ok {
			j = next
			continue
		}
		if next, ok := readByte(d, j, ']'); ok {
			return arr, next, true, nil
		}
		return nil, i, false, nil
	}
}

// readNumber reads -?digits(.digits)?; a `.` selects the floating
// representation, a leading `-` the signed integer one, otherwise unsigned.
// A literal that overflows its representation is a hard error.
func readNumber(d []byte, i int) (ir.Value, int, bool, error) {
	j := i
	neg := false
	if j < len(d) && d[j] == '-' {
		neg = true
		j++
	}
	start := j
	for j < len(d) && isDigit(d[j]) {
		j++
	}
	if j == start {
		return ir.Value{}, i, false, nil
	}
	isFloat := false
	if j+1 < len(d) && d[j] == '.' && isDigit(d[j+1]) {
		isFloat = true
		j += 2
		for j < len(d) && isDigit(d[j]) {
			j++
		}
	}
	text := string(d[i:j])
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return ir.Value{}, i, false, fmt.Errorf("%w: number %q: %w", ErrParse, text, err)
		}
		return ir.FromFloat(f), j, true, nil
	}
	if neg {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return ir.Value{}, i, false, fmt.Errorf("%w: number %q: %w", ErrParse, text, err)
		}
		return ir.FromInt(v), j, true, nil
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return ir.Value{}, i, false, fmt.Errorf("%w: number %q: %w", ErrParse, text, err)
	}
	return ir.FromUint(v), j, true, nil
}

// readString reads a double-quoted string with the escape set
// " \ / b f n r t u. The four hex digits of a \u escape are kept as
// literal text, not decoded to a code point. Truncated input, an unknown
// escape letter, or a short hex run is no match.
func readString(d []byte, i int) (string, int, bool) {
	j, ok := readByte(d, i, '"')
	if !ok {
		return "", i, false
	}
	var sb []byte
	for j < len(d) && d[j] != '"' {
		if d[j] != '\\' {
			sb = append(sb, d[j])
			j++
			continue
		}
		j++
		if j == len(d) {
			return "", i, false
		}
		switch d[j] {
		case '"':
			sb = append(sb, '"')
		case '\\':
			sb = append(sb, '\\')
		case '/':
			sb = append(sb, '/')
		case 'b':
			sb = append(sb, '\b')
		case 'f':
			sb = append(sb, '\f')
		case 'n':
			sb = append(sb, '\n')
		case 'r':
			sb = append(sb, '\r')
		case 't':
			sb = append(sb, '\t')
		case 'u':
			j++
			for k := 0; k < 4; k++ {
				if j == len(d) || !isHex(d[j]) {
					return "", i, false
				}
				sb = append(sb, d[j])
				j++
			}
			continue
		default:
			return "", i, false
		}
		j++
	}
	if j == len(d) {
		return "", i, false
	}
	j++ // closing quote
	return string(sb), j, true
}

func readBool(d []byte, i int) (bool, int, bool) {
	if next, ok := readLit(d, i, "true"); ok {
		return true, next, true
	}
	if next, ok := readLit(d, i, "false"); ok {
		return false, next, true
	}
	return false, i, false
}

func readLit(d []byte, i int, lit string) (int, bool) {
	if len(d)-i < len(lit) || string(d[i:i+len(lit)]) != lit {
		return i, false
	}
	return i + len(lit), true
}

func readByte(d []byte, i int, c byte) (int, bool) {
	if i == len(d) || d[i] != c {
		return i, false
	}
	return i + 1, true
}

func skipSpace(d []byte, i int) int {
	for i < len(d) && isSpace(d[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
