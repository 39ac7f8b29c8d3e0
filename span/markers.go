package span

import (
	"bytes"
	"fmt"
)

// Markers locates the region from the first occurrence of Start through
// the first occurrence of End at or after it, inclusive of End. It
// tolerates drift in the bytes between the markers and so risks
// over-matching when End recurs; use it as a fallback after Exact, not
// as a primary strategy.
type Markers struct {
	Start, End string
}

func (mk *Markers) Name() string { return "markers" }

func (mk *Markers) Locate(doc []byte) (*Match, error) {
	if mk.Start == "" || mk.End == "" {
		return nil, fmt.Errorf("markers: empty marker: %w", ErrNotFound)
	}
	start := []byte(mk.Start)
	i := bytes.Index(doc, start)
	if i < 0 {
		return nil, fmt.Errorf("start marker %q: %w", abbrev(mk.Start), ErrNotFound)
	}
	j := bytes.Index(doc[i:], []byte(mk.End))
	if j < 0 {
		return nil, fmt.Errorf("end marker %q after %q: %w", abbrev(mk.End), abbrev(mk.Start), ErrNotFound)
	}
	m := &Match{Span: Span{Start: i, End: i + j + len(mk.End)}}
	m.Extra = bytes.Count(doc[i+len(start):], start)
	return m, nil
}
