package main

import (
	"fmt"

	"github.com/alphalabs/pagepatch/shell"

	"github.com/scott-cotton/cli"
)

func shellCmd(cfg *ShellConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Shell.Parse(cc, args)
	if err != nil {
		cfg.Shell.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: shell requires one argument, a route", cli.ErrUsage)
	}
	dir := cfg.Plan
	if dir == "" {
		dir = "."
	}
	p, err := openPlan(dir, cfg.MainConfig)
	if err != nil {
		return err
	}
	pg := p.FindPage(args[0])
	if pg == nil {
		return fmt.Errorf("no page %q in plan %s", args[0], dir)
	}
	text, err := shell.Generate(pg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cc.Out, text); err != nil {
		return err
	}
	return nil
}
