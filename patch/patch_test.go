package patch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alphalabs/pagepatch/span"
)

func TestApplySubstitution(t *testing.T) {
	doc := []byte("aaa OLD bbb")
	out := Apply(doc, span.Span{Start: 4, End: 7}, []byte("NEWER"))
	if got := string(out); got != "aaa NEWER bbb" {
		t.Errorf("got %q", got)
	}
	// the input document is never mutated
	if string(doc) != "aaa OLD bbb" {
		t.Errorf("input mutated: %q", doc)
	}
}

func TestApplyDeletion(t *testing.T) {
	doc := []byte("keep1 CUT keep2")
	out := Apply(doc, span.Span{Start: 6, End: 10}, nil)
	if got := string(out); got != "keep1 keep2" {
		t.Errorf("got %q", got)
	}
}

func TestRunFailureIsolation(t *testing.T) {
	doc := []byte("<p1>one</p1>\n<p2>two</p2>\n<p3>three</p3>\n")
	patches := []*Patch{
		{
			Name:        "p1",
			Strategies:  []span.Strategy{&span.Markers{Start: "<p1>", End: "</p1>"}},
			Replacement: []byte("<p1>ONE</p1>"),
		},
		{
			Name:        "p2",
			Strategies:  []span.Strategy{&span.Markers{Start: "<missing>", End: "</missing>"}},
			Replacement: []byte("nope"),
		},
		{
			Name:        "p3",
			Strategies:  []span.Strategy{&span.Markers{Start: "<p3>", End: "</p3>"}},
			Replacement: []byte("<p3>THREE</p3>"),
		},
	}
	out, results := Run(doc, patches)
	if got := string(out); got != "<p1>ONE</p1>\n<p2>two</p2>\n<p3>THREE</p3>\n" {
		t.Errorf("got %q", got)
	}
	wants := []Outcome{Applied, NotFound, Applied}
	for i, want := range wants {
		if results[i].Outcome != want {
			t.Errorf("%s: outcome %s, want %s", results[i].Name, results[i].Outcome, want)
		}
	}
	if results[1].Err == nil {
		t.Error("p2: missing error")
	}
	// p2's region is byte-identical to the input
	if !bytes.Contains(out, []byte("<p2>two</p2>")) {
		t.Error("p2 region modified")
	}
	if !Changed(results) {
		t.Error("Changed() = false")
	}
}

func TestRunIdempotent(t *testing.T) {
	doc := []byte("head\n<s>old body</s>\ntail\n")
	patches := []*Patch{{
		Name:        "only",
		Strategies:  []span.Strategy{&span.Markers{Start: "<s>", End: "</s>"}},
		Replacement: []byte("<s>new body</s>"),
	}}
	once, results := Run(doc, patches)
	if results[0].Outcome != Applied {
		t.Fatalf("first run: %s", results[0].Outcome)
	}
	twice, results := Run(once, patches)
	if results[0].Outcome != Unchanged {
		t.Errorf("second run: %s, want unchanged", results[0].Outcome)
	}
	if !bytes.Equal(once, twice) {
		t.Errorf("second run changed bytes:\n%q\n%q", once, twice)
	}
	if Changed(results) {
		t.Error("Changed() = true on unchanged run")
	}
}

func TestRunFallbackStrategy(t *testing.T) {
	doc := []byte("x <a>drifted content</a> y")
	patches := []*Patch{{
		Name: "t",
		Strategies: []span.Strategy{
			&span.Exact{Literal: "<a>expected content</a>"},
			&span.Markers{Start: "<a>", End: "</a>"},
		},
		Replacement: []byte("<a>fresh</a>"),
	}}
	out, results := Run(doc, patches)
	if results[0].Outcome != Applied {
		t.Fatalf("outcome %s", results[0].Outcome)
	}
	if results[0].Strategy != "markers" {
		t.Errorf("strategy %q, want markers", results[0].Strategy)
	}
	if got := string(out); got != "x <a>fresh</a> y" {
		t.Errorf("got %q", got)
	}
}

func TestRunAmbiguous(t *testing.T) {
	doc := []byte("<a>one</a> <a>two</a>")
	patches := []*Patch{{
		Name:        "t",
		Strategies:  []span.Strategy{&span.Markers{Start: "<a>", End: "</a>"}},
		Replacement: []byte("<a>first</a>"),
	}}
	out, results := Run(doc, patches)
	if results[0].Outcome != Ambiguous {
		t.Fatalf("outcome %s, want ambiguous", results[0].Outcome)
	}
	if results[0].Extra != 1 {
		t.Errorf("extra %d, want 1", results[0].Extra)
	}
	if got := string(out); got != "<a>first</a> <a>two</a>" {
		t.Errorf("got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	doc := []byte("pre <target/> post")
	r := "<r-start>\ninserted body\n<r-end>"
	out := Apply(doc, span.Span{Start: 4, End: 13}, []byte(r))
	mk := &span.Markers{Start: "<r-start>", End: "<r-end>"}
	m, err := mk.Locate(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out[m.Span.Start:m.Span.End]); got != r {
		t.Errorf("got %q, want %q", got, r)
	}
}

func TestRunNonInterference(t *testing.T) {
	prefix := strings.Repeat("before|", 100)
	suffix := strings.Repeat("|after", 100)
	doc := []byte(prefix + "<s>x</s>" + suffix)
	out, _ := Run(doc, []*Patch{{
		Name:        "t",
		Strategies:  []span.Strategy{&span.Markers{Start: "<s>", End: "</s>"}},
		Replacement: []byte("<s>yyy</s>"),
	}})
	if !bytes.HasPrefix(out, []byte(prefix)) {
		t.Error("prefix modified")
	}
	if !bytes.HasSuffix(out, []byte(suffix)) {
		t.Error("suffix modified")
	}
	if len(out) != len(doc)+2 {
		t.Errorf("len %d, want %d", len(out), len(doc)+2)
	}
}
