package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alphalabs/pagepatch/plan"

	"github.com/scott-cotton/cli"
)

func openPlan(dir string, cfg *MainConfig) (*plan.Plan, error) {
	osEnv, err := plan.LoadEnv()
	if err != nil {
		return nil, err
	}
	// -e overrides take precedence over $PAGEPATCH_ENV, both over the
	// plan's defaults.
	overrides, err := plan.MergeEnv(osEnv, cfg.Env)
	if err != nil {
		return nil, err
	}
	return plan.Open(dir, overrides)
}

func getDocFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}
