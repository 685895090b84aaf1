package main

import (
	"fmt"

	"github.com/aidaneastcott/json-parser/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, file := range args {
		in, err := readArg(cc, file)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(in); err != nil {
			bad++
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", file)
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
