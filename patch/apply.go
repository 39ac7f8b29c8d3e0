package patch

import "github.com/alphalabs/pagepatch/span"

// Apply splices replacement over sp, returning a new document. Deletion
// is an empty replacement. Apply is a pure function of its arguments: it
// never mutates doc and never inspects bytes outside sp. No
// re-indentation or normalization is performed; the caller supplies
// replacement text already in the right shape.
func Apply(doc []byte, sp span.Span, replacement []byte) []byte {
	out := make([]byte, 0, len(doc)-sp.Len()+len(replacement))
	out = append(out, doc[:sp.Start]...)
	out = append(out, replacement...)
	out = append(out, doc[sp.End:]...)
	return out
}
