package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aidaneastcott/json-parser/encode"
	"github.com/aidaneastcott/json-parser/ir"
	"github.com/aidaneastcott/json-parser/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		in, err := readArg(cc, file)
		if err != nil {
			return err
		}
		v, err := parse.Parse(in)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
		elt, err := walkPath(&v, path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		if err := encode.Encode(*elt, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}

// walkPath resolves a dotted path such as "tags.0.name" against v, reading
// each segment as an object key or, on arrays, as a decimal index.
func walkPath(v *ir.Value, path string) (*ir.Value, error) {
	cur := v
	if path == "." {
		return cur, nil
	}
	for _, seg := range strings.Split(path, ".") {
		switch cur.Kind() {
		case ir.ObjectKind:
			obj, err := cur.AsObject()
			if err != nil {
				return nil, err
			}
			next, err := obj.Get(seg)
			if err != nil {
				return nil, err
			}
			cur = next
		case ir.ArrayKind:
			arr, err := cur.AsArray()
			if err != nil {
				return nil, err
			}
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an index", ir.ErrInvalidIndex, seg)
			}
			next, err := arr.Get(i)
			if err != nil {
				return nil, err
			}
			cur = next
		default:
			return nil, fmt.Errorf("%w: cannot descend into %s with %q",
				ir.ErrWrongKind, cur.Kind(), seg)
		}
	}
	return cur, nil
}
