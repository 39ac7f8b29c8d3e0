package main

import (
	"os"

	"github.com/alphalabs/pagepatch/report"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=nocolor desc='disable colored output'"`
	DryRun  bool `cli:"name=n desc='locate and report, write nothing'"`

	// Env collects -e path=val overrides.
	Env map[string]any

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) reporter(cc *cli.Context) *report.Reporter {
	rep := report.New(cc.Out)
	switch {
	case cfg.Color:
		rep.SetColor(true)
	case cfg.NoColor:
		rep.SetColor(false)
	}
	return rep
}

type UpdateConfig struct {
	*MainConfig

	Doc string `cli:"name=doc desc='document to patch (overrides the plan doc)'"`

	Update *cli.Command
}

type RemoveConfig struct {
	*MainConfig

	Open  string `cli:"name=open desc='opening delimiter (default {)'"`
	Close string `cli:"name=close desc='closing delimiter (default })'"`

	Remove *cli.Command
}

type ShellConfig struct {
	*MainConfig

	Plan string `cli:"name=plan desc='plan directory (default .)'"`

	Shell *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Doc string `cli:"name=doc desc='document to diff (overrides the plan doc)'"`

	Diff *cli.Command
}
