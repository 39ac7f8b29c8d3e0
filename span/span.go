// Package span locates byte ranges in schemaless text documents.
//
// A Strategy seeds its search with literal anchor text and produces a
// half-open Span. Strategies never retain or mutate the document; spans
// are recomputed on every run and must not be reused across document
// mutations, since offsets shift.
package span

// Span is a half-open byte range [Start, End) in a document.
type Span struct {
	Start, End int
}

func (s Span) Len() int { return s.End - s.Start }

// Match is a located span. Extra counts occurrences of the strategy's
// anchor beyond the first; the first occurrence always wins, Extra lets
// callers surface the ambiguity.
type Match struct {
	Span  Span
	Extra int
}

// Strategy locates a target region in a document.
type Strategy interface {
	Name() string
	Locate(doc []byte) (*Match, error)
}

func abbrev(s string) string {
	if len(s) <= 40 {
		return s
	}
	return s[:37] + "..."
}
