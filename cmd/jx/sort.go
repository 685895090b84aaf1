package main

import (
	"fmt"

	"github.com/aidaneastcott/json-parser/encode"
	"github.com/aidaneastcott/json-parser/ir"
	"github.com/aidaneastcott/json-parser/parse"

	"github.com/scott-cotton/cli"
)

func sortCmd(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
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
		arr, err := v.AsArray()
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		arr.Sort(ir.Compare)
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
