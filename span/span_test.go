package span

import (
	"errors"
	"testing"
)

func TestExact(t *testing.T) {
	doc := []byte("aaa NEEDLE bbb NEEDLE ccc")
	e := &Exact{Literal: "NEEDLE"}
	m, err := e.Locate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(doc[m.Span.Start:m.Span.End]); got != "NEEDLE" {
		t.Errorf("got %q", got)
	}
	if m.Span.Start != 4 {
		t.Errorf("start %d, want 4", m.Span.Start)
	}
	if m.Extra != 1 {
		t.Errorf("extra %d, want 1", m.Extra)
	}
}

func TestExactNotFound(t *testing.T) {
	e := &Exact{Literal: "NEEDLE"}
	_, err := e.Locate([]byte("aaa bbb"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestExactDriftBreaksMatch(t *testing.T) {
	// whitespace drift is a reported failure, never tolerated
	e := &Exact{Literal: "a  b"}
	if _, err := e.Locate([]byte("a b")); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestMarkers(t *testing.T) {
	doc := []byte("xx <start> middle <end> yy <end> zz")
	mk := &Markers{Start: "<start>", End: "<end>"}
	m, err := mk.Locate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(doc[m.Span.Start:m.Span.End]); got != "<start> middle <end>" {
		t.Errorf("got %q", got)
	}
}

func TestMarkersEndBeforeStart(t *testing.T) {
	// the end marker must be at or after the start marker
	doc := []byte("<end> xx <start> yy <end>")
	mk := &Markers{Start: "<start>", End: "<end>"}
	m, err := mk.Locate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(doc[m.Span.Start:m.Span.End]); got != "<start> yy <end>" {
		t.Errorf("got %q", got)
	}
}

func TestMarkersNotFound(t *testing.T) {
	mk := &Markers{Start: "<start>", End: "<end>"}
	for _, doc := range []string{"nothing", "<start> but no end"} {
		if _, err := mk.Locate([]byte(doc)); !errors.Is(err, ErrNotFound) {
			t.Errorf("%q: got %v, want ErrNotFound", doc, err)
		}
	}
}

type balancedTest struct {
	doc    string
	anchor string
	want   string // located span content
	rest   string // document after excision
}

func TestBalanced(t *testing.T) {
	bts := []balancedTest{
		{
			doc:    "before\n<!-- A -->\n{ x: 1, y: { z: 2 } }\nafter\n",
			anchor: "<!-- A -->",
			want:   "<!-- A -->\n{ x: 1, y: { z: 2 } }\n",
			rest:   "before\nafter\n",
		},
		{
			doc:    "app.get('/next', (req, res) => {\n  res.send({a: {b: 1}});\n});\nrest\n",
			anchor: "app.get('/next',",
			want:   "app.get('/next', (req, res) => {\n  res.send({a: {b: 1}});\n});\n",
			rest:   "rest\n",
		},
		{
			// close brace on the last line without a newline
			doc:    "x\nf() {\n  y\n}",
			anchor: "f()",
			want:   "f() {\n  y\n}",
			rest:   "x\n",
		},
		{
			// nesting two deep on one line
			doc:    "a\ngo { { { } } } tail\nb\n",
			anchor: "go",
			want:   "go { { { } } } tail\n",
			rest:   "a\nb\n",
		},
	}
	for _, bt := range bts {
		b := &Balanced{Anchor: bt.anchor}
		m, err := b.Locate([]byte(bt.doc))
		if err != nil {
			t.Errorf("%q: %v", bt.anchor, err)
			continue
		}
		got := bt.doc[m.Span.Start:m.Span.End]
		if got != bt.want {
			t.Errorf("%q: span %q, want %q", bt.anchor, got, bt.want)
		}
		rest := bt.doc[:m.Span.Start] + bt.doc[m.Span.End:]
		if rest != bt.rest {
			t.Errorf("%q: rest %q, want %q", bt.anchor, rest, bt.rest)
		}
	}
}

func TestBalancedUnterminated(t *testing.T) {
	b := &Balanced{Anchor: "start"}
	_, err := b.Locate([]byte("start { { }\nno close\n"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	uerr := &UnterminatedErr{}
	if !errors.As(err, &uerr) {
		t.Fatalf("got %T, want *UnterminatedErr", err)
	}
	if uerr.Depth != 1 {
		t.Errorf("depth %d, want 1", uerr.Depth)
	}
}

func TestBalancedCustomDelimiters(t *testing.T) {
	doc := []byte("pre\nlist [1, [2, 3]]\npost\n")
	b := &Balanced{Anchor: "list", Open: '[', Close: ']'}
	m, err := b.Locate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(doc[m.Span.Start:m.Span.End]); got != "list [1, [2, 3]]\n" {
		t.Errorf("got %q", got)
	}
}

func TestFirstOccurrenceWins(t *testing.T) {
	doc := []byte("x <!-- A -->\n{1}\ny <!-- A -->\n{2}\nz")
	b := &Balanced{Anchor: "<!-- A -->"}
	var first *Match
	for i := 0; i < 5; i++ {
		m, err := b.Locate(doc)
		if err != nil {
			t.Fatal(err)
		}
		if first == nil {
			first = m
			if m.Span.Start != 2 {
				t.Errorf("start %d, want 2", m.Span.Start)
			}
			if m.Extra != 1 {
				t.Errorf("extra %d, want 1", m.Extra)
			}
			continue
		}
		if *m != *first {
			t.Errorf("call %d: %+v differs from first %+v", i, m, first)
		}
	}
}

func TestWithin(t *testing.T) {
	doc := []byte("<m>one</m> SCOPE <m>two</m>")
	w := &Within{
		Anchor: "SCOPE",
		Inner:  &Markers{Start: "<m>", End: "</m>"},
	}
	m, err := w.Locate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(doc[m.Span.Start:m.Span.End]); got != "<m>two</m>" {
		t.Errorf("got %q", got)
	}
	// inner marker recurrence outside the scope is not ambiguity
	if m.Extra != 0 {
		t.Errorf("extra %d, want 0", m.Extra)
	}
	w.Anchor = "ABSENT"
	if _, err := w.Locate(doc); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
