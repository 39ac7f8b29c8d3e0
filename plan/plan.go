// Package plan interprets a pagepatch plan directory.
//
// A plan directory holds plan.{yaml,yml,json} describing the server
// document to patch, default environment values, the pages whose shells
// get regenerated and spliced in, and route blocks to remove. One run
// reads the document once, applies the targets in plan order against an
// in-memory working copy, and writes the result back only when at least
// one target changed bytes.
package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alphalabs/pagepatch/debug"
	"github.com/alphalabs/pagepatch/patch"
	"github.com/alphalabs/pagepatch/shell"
	"github.com/alphalabs/pagepatch/span"

	"github.com/goccy/go-yaml"
)

const DefaultDoc = "index.js"

type Plan struct {
	Root string `yaml:"-" json:"-"`
	// Doc is the document to patch, relative to Root.
	Doc string `yaml:"doc,omitempty" json:"doc,omitempty"`
	// Env holds default environment values for target conditions.
	Env     map[string]any `yaml:"env,omitempty" json:"env,omitempty"`
	Pages   []PageTarget   `yaml:"pages,omitempty" json:"pages,omitempty"`
	Removes []RemoveTarget `yaml:"removes,omitempty" json:"removes,omitempty"`
}

// PageTarget regenerates one page shell and splices it over the page's
// existing shell in the document.
type PageTarget struct {
	// If is an optional condition over the plan env; false skips the
	// target.
	If         string `yaml:"if,omitempty" json:"if,omitempty"`
	shell.Page `yaml:",inline" json:",inline"`
}

// RemoveTarget deletes a balanced region, e.g. a whole route handler.
type RemoveTarget struct {
	If     string `yaml:"if,omitempty" json:"if,omitempty"`
	Anchor string `yaml:"anchor" json:"anchor"`
	// Open and Close are single-character delimiters, default { and }.
	Open  string `yaml:"open,omitempty" json:"open,omitempty"`
	Close string `yaml:"close,omitempty" json:"close,omitempty"`
}

// Open reads the plan in dir, probing plan.{yaml,yml,json} in order,
// and merges env over the plan's defaults as a JSON merge patch.
func Open(dir string, env map[string]any) (*Plan, error) {
	extensions := []string{".yaml", ".yml", ".json"}
	var (
		d      []byte
		plPath string
		found  bool
	)
	for _, ext := range extensions {
		candidate := filepath.Join(dir, "plan"+ext)
		var err error
		d, err = os.ReadFile(candidate)
		if err == nil {
			plPath = candidate
			found = true
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not read %q: %w", candidate, err)
		}
	}
	if !found {
		return nil, fmt.Errorf("could not find plan.{yaml,yml,json} in %q", dir)
	}
	p := &Plan{Root: dir}
	if err := yaml.Unmarshal(d, p); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", plPath, err)
	}
	if p.Doc == "" {
		p.Doc = DefaultDoc
	}
	merged, err := MergeEnv(p.Env, env)
	if err != nil {
		return nil, fmt.Errorf("error merging env for %s: %w", plPath, err)
	}
	p.Env = merged
	if debug.Env() {
		debug.Logf("plan %s env:\n%s\n", plPath, debug.JSON(p.Env))
	}
	return p, nil
}

// DocPath returns the absolute-ish path of the plan's document.
func (p *Plan) DocPath() string {
	return filepath.Join(p.Root, p.Doc)
}

// FindPage returns the page target for route, or nil.
func (p *Plan) FindPage(route string) *shell.Page {
	for i := range p.Pages {
		if p.Pages[i].Route == route {
			return &p.Pages[i].Page
		}
	}
	return nil
}

// Patches compiles the plan's targets into an ordered batch, evaluating
// each target's condition against the plan env. Skipped target names
// are returned alongside.
func (p *Plan) Patches() ([]*patch.Patch, []string, error) {
	var (
		patches []*patch.Patch
		skipped []string
	)
	for i := range p.Pages {
		t := &p.Pages[i]
		ok, err := evalIf(t.If, p.Env)
		if err != nil {
			return nil, nil, fmt.Errorf("page %s: %w", t.Route, err)
		}
		if !ok {
			skipped = append(skipped, t.Route)
			continue
		}
		pt, err := pagePatch(&t.Page)
		if err != nil {
			return nil, nil, err
		}
		patches = append(patches, pt)
	}
	for i := range p.Removes {
		t := &p.Removes[i]
		ok, err := evalIf(t.If, p.Env)
		if err != nil {
			return nil, nil, fmt.Errorf("remove %s: %w", t.Anchor, err)
		}
		if !ok {
			skipped = append(skipped, "remove "+t.Anchor)
			continue
		}
		pt, err := removePatch(t)
		if err != nil {
			return nil, nil, err
		}
		patches = append(patches, pt)
	}
	return patches, skipped, nil
}

func pagePatch(pg *shell.Page) (*patch.Patch, error) {
	text, err := shell.Generate(pg)
	if err != nil {
		return nil, err
	}
	repl := "const html = `" + text + "`;"
	inner := &span.Markers{Start: shell.HTMLStartMarker, End: shell.HTMLEndMarker}
	return &patch.Patch{
		Name: pg.Route,
		Strategies: []span.Strategy{
			&span.Within{Anchor: shell.RouteAnchor(pg.Route), Inner: inner},
			&span.Within{Anchor: shell.LooseRouteAnchor(pg.Route), Inner: inner},
		},
		Replacement: []byte(repl),
	}, nil
}

func removePatch(t *RemoveTarget) (*patch.Patch, error) {
	b := &span.Balanced{Anchor: t.Anchor}
	if t.Open != "" || t.Close != "" {
		if len(t.Open) != 1 || len(t.Close) != 1 {
			return nil, fmt.Errorf("remove %s: open and close must each be one character", t.Anchor)
		}
		b.Open, b.Close = t.Open[0], t.Close[0]
	}
	return &patch.Patch{
		Name:       "remove " + t.Anchor,
		Strategies: []span.Strategy{b},
	}, nil
}
