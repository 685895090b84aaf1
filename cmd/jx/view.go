package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aidaneastcott/json-parser/encode"
	"github.com/aidaneastcott/json-parser/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := viewFile(cfg.MainConfig, cc, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func viewFile(cfg *MainConfig, cc *cli.Context, file string) error {
	in, err := readArg(cc, file)
	if err != nil {
		return err
	}
	v, err := parse.Parse(in)
	if err != nil {
		return err
	}
	if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}

func readArg(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}
