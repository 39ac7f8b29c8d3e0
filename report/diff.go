package report

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// WriteDiff renders a character-level diff of from to to, with equal
// runs abbreviated to a little context on either side of each change.
func (r *Reporter) WriteDiff(from, to string) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	n := len(diffs)
	for i, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(r.w, "%s", r.ok("%s", mark(d.Text, "+")))
		case diffpatch.DiffDelete:
			fmt.Fprintf(r.w, "%s", r.warn("%s", mark(d.Text, "-")))
		case diffpatch.DiffEqual:
			fmt.Fprintf(r.w, "%s", r.dim("%s", context(d.Text, i == 0, i == n-1)))
		}
	}
	fmt.Fprintln(r.w)
}

// mark prefixes every line of text with sign, keeping the trailing
// newline structure intact.
func mark(text, sign string) string {
	trailing := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, ln := range lines {
		lines[i] = sign + ln
	}
	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

// context trims a long equal run to its edges nearest the surrounding
// changes.
func context(text string, first, last bool) string {
	const keep = 120
	if len(text) <= 2*keep+16 {
		return text
	}
	head, tail := text[:keep], text[len(text)-keep:]
	omit := func(n int) string {
		return fmt.Sprintf("\n... %d bytes unchanged ...\n", n)
	}
	switch {
	case first:
		return omit(len(text)-keep) + tail
	case last:
		return head + omit(len(text)-keep)
	default:
		return head + omit(len(text)-2*keep) + tail
	}
}
