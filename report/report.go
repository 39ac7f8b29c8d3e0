// Package report renders per-target patch outcomes for humans. A
// failed target is a warning, never a fatal error; the run always
// completes and ends with a summary.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/alphalabs/pagepatch/patch"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type Reporter struct {
	w    io.Writer
	ok   func(format string, a ...any) string
	warn func(format string, a ...any) string
	dim  func(format string, a ...any) string

	applied   int
	unchanged int
	ambiguous int
	missing   int
	skipped   int
}

// New returns a Reporter writing to w, with color when w is a terminal.
func New(w io.Writer) *Reporter {
	r := &Reporter{w: w}
	r.SetColor(isTerminal(w))
	return r
}

func (r *Reporter) SetColor(on bool) {
	if !on {
		r.ok, r.warn, r.dim = colorDefault, colorDefault, colorDefault
		return
	}
	r.ok = color.GreenString
	r.warn = color.YellowString
	r.dim = color.New(color.Faint).Sprintf
}

func colorDefault(format string, a ...any) string {
	return fmt.Sprintf(format, a...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// Target reports one patch result.
func (r *Reporter) Target(res *patch.Result) {
	switch res.Outcome {
	case patch.Applied:
		r.applied++
		fmt.Fprintf(r.w, "%s %s (%s)\n", r.ok("applied"), res.Name, res.Strategy)
	case patch.Unchanged:
		r.unchanged++
		fmt.Fprintf(r.w, "%s %s\n", r.dim("unchanged"), res.Name)
	case patch.Ambiguous:
		r.ambiguous++
		fmt.Fprintf(r.w, "%s %s (%s): anchor matched %d more time(s), first occurrence used\n",
			r.warn("applied*"), res.Name, res.Strategy, res.Extra)
	case patch.NotFound:
		r.missing++
		fmt.Fprintf(r.w, "%s %s: %v\n", r.warn("not found"), res.Name, res.Err)
	}
}

// Skip reports a target skipped by its plan condition.
func (r *Reporter) Skip(name string) {
	r.skipped++
	fmt.Fprintf(r.w, "%s %s\n", r.dim("skipped"), name)
}

// Summary prints the final tallies. wrote indicates whether the
// document was written back.
func (r *Reporter) Summary(wrote bool) {
	fmt.Fprintf(r.w, "%d applied, %d unchanged, %d not found, %d skipped\n",
		r.applied+r.ambiguous, r.unchanged, r.missing, r.skipped)
	if !wrote {
		fmt.Fprintf(r.w, "nothing changed\n")
	}
}
