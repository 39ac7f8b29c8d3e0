package span

import (
	"bytes"
	"fmt"
)

// Balanced locates a region by scanning forward from the first
// occurrence of Anchor, counting Open and Close delimiters. The span
// ends after the line containing the close delimiter that returns the
// depth to zero, so a trailing statement terminator such as `});` and
// its line break are consumed. Depth counting handles arbitrary nesting;
// delimiters inside string literals are not distinguished from
// structural ones.
type Balanced struct {
	Anchor string
	// Open and Close default to '{' and '}'.
	Open, Close byte
}

func (b *Balanced) Name() string { return "balanced" }

func (b *Balanced) Locate(doc []byte) (*Match, error) {
	if b.Anchor == "" {
		return nil, fmt.Errorf("balanced: empty anchor: %w", ErrNotFound)
	}
	op, cl := b.Open, b.Close
	if op == 0 {
		op, cl = '{', '}'
	}
	anchor := []byte(b.Anchor)
	i := bytes.Index(doc, anchor)
	if i < 0 {
		return nil, fmt.Errorf("anchor %q: %w", abbrev(b.Anchor), ErrNotFound)
	}
	depth := 0
	opened := false
	for j := i; j < len(doc); j++ {
		switch doc[j] {
		case op:
			depth++
			opened = true
		case cl:
			depth--
			if opened && depth == 0 {
				end := j + 1
				if nl := bytes.IndexByte(doc[end:], '\n'); nl < 0 {
					end = len(doc)
				} else {
					end += nl + 1
				}
				m := &Match{Span: Span{Start: i, End: end}}
				m.Extra = bytes.Count(doc[i+len(anchor):], anchor)
				return m, nil
			}
		}
	}
	return nil, &UnterminatedErr{Anchor: b.Anchor, Depth: depth}
}
