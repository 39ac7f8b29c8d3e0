package main

import (
	"fmt"

	"github.com/alphalabs/pagepatch/patch"
	"github.com/alphalabs/pagepatch/plan"
	"github.com/alphalabs/pagepatch/span"

	"github.com/scott-cotton/cli"
)

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		cfg.Remove.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: remove requires 2 arguments, an anchor and a file", cli.ErrUsage)
	}
	anchor, file := args[0], args[1]
	b := &span.Balanced{Anchor: anchor}
	if cfg.Open != "" || cfg.Close != "" {
		if len(cfg.Open) != 1 || len(cfg.Close) != 1 {
			return fmt.Errorf("%w: -open and -close must each be one character", cli.ErrUsage)
		}
		b.Open, b.Close = cfg.Open[0], cfg.Close[0]
	}
	doc, err := getDocFile(cc, file)
	if err != nil {
		return err
	}
	pt := &patch.Patch{
		Name:       "remove " + anchor,
		Strategies: []span.Strategy{b},
	}
	out, results := patch.Run(doc, []*patch.Patch{pt})
	rep := cfg.reporter(cc)
	for i := range results {
		rep.Target(&results[i])
	}
	wrote := false
	if patch.Changed(results) && !cfg.DryRun {
		if file == "-" {
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
		} else if err := plan.WriteDoc(file, out); err != nil {
			return err
		}
		wrote = true
	}
	rep.Summary(wrote)
	return nil
}
