package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: diff takes at most one argument, a plan directory", cli.ErrUsage)
	}
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	p, err := openPlan(dir, cfg.MainConfig)
	if err != nil {
		return err
	}
	if cfg.Doc != "" {
		p.Doc = cfg.Doc
	}
	rr, err := p.Execute()
	if err != nil {
		return err
	}
	rep := cfg.reporter(cc)
	if !rr.Changed() {
		rep.Summary(false)
		return nil
	}
	rep.WriteDiff(string(rr.Doc), string(rr.Patched))
	return cli.ExitCodeErr(1)
}
