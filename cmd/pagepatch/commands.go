package main

import (
	"fmt"

	"github.com/alphalabs/pagepatch/plan"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Env: map[string]any{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "e",
			Description: "env override",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "pagepatch").
		WithSynopsis("pagepatch [opts] command [opts]").
		WithDescription("pagepatch regenerates page shells and splices them into a generated server document.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pagepatchMain(cfg, cc, args)
		}).
		WithSubs(
			UpdateCommand(cfg),
			RemoveCommand(cfg),
			ShellCommand(cfg),
			DiffCommand(cfg))
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := plan.SetPath(env, a); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return 0, nil
	}
}

func UpdateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UpdateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Update, "update").
		WithAliases("u", "up").
		WithSynopsis("update [opts] [plandir]").
		WithDescription("regenerate page shells and patch them into the plan's document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return update(cfg, cc, args)
		})
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RemoveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Remove, "remove").
		WithAliases("r", "rm").
		WithSynopsis("remove [opts] <anchor> <file>").
		WithDescription("delete the balanced region starting at anchor from file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
}

func ShellCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShellConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Shell, "shell").
		WithAliases("s", "sh").
		WithSynopsis("shell [opts] <route>").
		WithDescription("render one page shell from the plan").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return shellCmd(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] [plandir]").
		WithDescription("show what an update run would change, without writing").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
