// Package patch applies located substitutions to a document, one batch
// per run. Each patch carries an ordered list of location strategies;
// the batch runner keeps failed targets isolated so one missing region
// never corrupts the rest of the document or stops the run.
package patch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alphalabs/pagepatch/debug"
	"github.com/alphalabs/pagepatch/span"
)

// Outcome classifies what happened to one target.
type Outcome int

const (
	// Applied: a strategy located the span and the replacement was
	// spliced in.
	Applied Outcome = iota
	// Unchanged: the located span already equals the replacement.
	// Re-running a batch over its own output lands here.
	Unchanged
	// Ambiguous: applied, but the winning strategy's anchor occurred
	// more than once. First occurrence wins; the surplus is surfaced
	// so an operator can verify.
	Ambiguous
	// NotFound: no strategy located the target. The document is left
	// byte-identical around it.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	case Ambiguous:
		return "ambiguous"
	case NotFound:
		return "not found"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Patch is one target: an ordered list of location strategies tried in
// sequence and the replacement to splice in (empty for deletion).
type Patch struct {
	Name        string
	Strategies  []span.Strategy
	Replacement []byte
}

// Result is the per-target outcome of a run.
type Result struct {
	Name     string
	Outcome  Outcome
	Strategy string // strategy that located the span, empty on NotFound
	Span     span.Span
	Extra    int   // anchor occurrences beyond the first
	Err      error // set on NotFound
}

func (p *Patch) locate(doc []byte) (*span.Match, string, error) {
	var errs []error
	for _, s := range p.Strategies {
		m, err := s.Locate(doc)
		if err == nil {
			if debug.Locate() {
				debug.Logf("located %s via %s at [%d,%d) extra=%d\n",
					p.Name, s.Name(), m.Span.Start, m.Span.End, m.Extra)
			}
			return m, s.Name(), nil
		}
		if !errors.Is(err, span.ErrNotFound) {
			return nil, "", err
		}
		if debug.Locate() {
			debug.Logf("%s via %s: %v\n", p.Name, s.Name(), err)
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
	}
	return nil, "", errors.Join(errs...)
}

// Run applies patches in order against an evolving working copy of doc.
// Each patch re-locates its own span on the current state; spans are
// never reused across mutations. A patch whose strategies all fail
// records NotFound, mutates nothing, and the run proceeds to the next
// target.
func Run(doc []byte, patches []*Patch) ([]byte, []Result) {
	results := make([]Result, 0, len(patches))
	for _, p := range patches {
		m, strat, err := p.locate(doc)
		if err != nil {
			results = append(results, Result{Name: p.Name, Outcome: NotFound, Err: err})
			continue
		}
		res := Result{Name: p.Name, Strategy: strat, Span: m.Span, Extra: m.Extra}
		switch {
		case bytes.Equal(doc[m.Span.Start:m.Span.End], p.Replacement):
			res.Outcome = Unchanged
		default:
			if m.Extra > 0 {
				res.Outcome = Ambiguous
			} else {
				res.Outcome = Applied
			}
			doc = Apply(doc, m.Span, p.Replacement)
			if debug.Patch() {
				debug.Logf("%s %s: replaced %d bytes with %d\n",
					res.Outcome, p.Name, m.Span.Len(), len(p.Replacement))
			}
		}
		results = append(results, res)
	}
	return doc, results
}

// Changed reports whether any result mutated the document.
func Changed(results []Result) bool {
	for i := range results {
		switch results[i].Outcome {
		case Applied, Ambiguous:
			return true
		}
	}
	return false
}
