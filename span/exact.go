package span

import (
	"bytes"
	"fmt"
)

// Exact locates a previously known literal block verbatim. Any content
// drift breaks the match; the failure is reported, not papered over.
type Exact struct {
	Literal string
}

func (e *Exact) Name() string { return "exact" }

func (e *Exact) Locate(doc []byte) (*Match, error) {
	if e.Literal == "" {
		return nil, fmt.Errorf("exact: empty literal: %w", ErrNotFound)
	}
	lit := []byte(e.Literal)
	i := bytes.Index(doc, lit)
	if i < 0 {
		return nil, fmt.Errorf("exact %q: %w", abbrev(e.Literal), ErrNotFound)
	}
	m := &Match{Span: Span{Start: i, End: i + len(lit)}}
	m.Extra = bytes.Count(doc[m.Span.End:], lit)
	return m, nil
}
