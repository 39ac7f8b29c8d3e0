package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func update(cfg *UpdateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Update.Parse(cc, args)
	if err != nil {
		cfg.Update.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: update takes at most one argument, a plan directory", cli.ErrUsage)
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
	for _, name := range rr.Skipped {
		rep.Skip(name)
	}
	for i := range rr.Results {
		rep.Target(&rr.Results[i])
	}
	wrote := false
	if rr.Changed() && !cfg.DryRun {
		if err := p.Persist(rr); err != nil {
			return err
		}
		wrote = true
	}
	rep.Summary(wrote)
	return nil
}
