package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jx").
		WithSynopsis("jx [opts] command [opts]").
		WithDescription("jx is a tool for working with json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jxMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CheckCommand(cfg),
			GetCommand(cfg),
			SortCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("parse documents and re-emit them normalized, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("parse documents and report the first error in each").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get a document element by dotted key/index path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("sort").
		WithAliases("s").
		WithSynopsis("sort [files]").
		WithDescription("sort top-level array documents and re-emit them").
		WithRun(func(cc *cli.Context, args []string) error {
			return sortCmd(cfg, cc, args)
		})
	cfg.Sort = cmd
	return cmd
}
