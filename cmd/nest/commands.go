package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{File: DefaultConfig()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "config",
			Description: "yaml configuration file",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nest").
		WithSynopsis("nest [opts] command [opts]").
		WithDescription("nest applies nested attribute operations to documents and shows the events they raise.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nestMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			RunCommand(cfg),
			PatchCommand(cfg),
			PathCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("print the value at an attribute path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "script line to run, may be repeated",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.exprOpt), "(op)"),
	})
	cmd := cli.NewCommand("run").
		WithAliases("r").
		WithSynopsis("run [-f script] [-e op]... [-filter expr] [-diff] [file]").
		WithDescription(runDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}

const runDescription = `run applies a script of operations to a document and prints
the events raised followed by the resulting document.

Each script line is one operation:

  set <path> <value>     set the value at path
  unset <path>           unset the value at path
  add <path> <value>     append value to the array at path
  remove <path>          remove the array element at path
  patch <json patch>     apply an RFC 6902 patch
  trigger <event>        raise an event

Values are yaml or json literals, anything else is a string. Blank lines and
lines starting with '#' are ignored. Operations given with -e run after the
script file.

The events printed may be narrowed with -filter, an expression over
kind, path, name, depth and value, e.g.

  -filter 'kind == "add" && hasPrefix(path, "items")'`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patchfile> [file]").
		WithDescription("apply a json patch to a document and print the events raised").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func PathCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Path, "path").
		WithSynopsis("path <path>...").
		WithDescription("print the segments and canonical form of attribute paths").
		WithRun(func(cc *cli.Context, args []string) error {
			return path(cfg, cc, args)
		})
}
