package encode

import (
	"bytes"

	"github.com/aidaneastcott/json-parser/ir"
)

func String(v ir.Value) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(v ir.Value) string {
	s, err := String(v)
	if err != nil {
		panic(err)
	}
	return s
}
