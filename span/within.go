package span

import (
	"bytes"
	"fmt"
)

// Within restricts Inner to the tail of the document starting at the
// first occurrence of Anchor. It scopes marker searches to one region of
// a document where the inner markers recur elsewhere, e.g. one route
// handler among many.
type Within struct {
	Anchor string
	Inner  Strategy
}

func (w *Within) Name() string { return "anchored " + w.Inner.Name() }

func (w *Within) Locate(doc []byte) (*Match, error) {
	anchor := []byte(w.Anchor)
	i := bytes.Index(doc, anchor)
	if i < 0 {
		return nil, fmt.Errorf("scope anchor %q: %w", abbrev(w.Anchor), ErrNotFound)
	}
	m, err := w.Inner.Locate(doc[i:])
	if err != nil {
		return nil, fmt.Errorf("after %q: %w", abbrev(w.Anchor), err)
	}
	m.Span.Start += i
	m.Span.End += i
	// Scoping resolves inner-marker recurrence by design; only a
	// repeated scope anchor is ambiguous.
	m.Extra = bytes.Count(doc[i+len(anchor):], anchor)
	return m, nil
}
