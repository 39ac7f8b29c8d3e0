package span

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// UnterminatedErr reports a balanced scan that hit end of document with
// nonzero delimiter depth. It unwraps to ErrNotFound: an unterminated
// target is treated as absent, never truncated.
type UnterminatedErr struct {
	Anchor string
	Depth  int
}

func (e *UnterminatedErr) Unwrap() error { return ErrNotFound }

func (e *UnterminatedErr) Error() string {
	return fmt.Sprintf("unterminated region after %q: end of document at depth %d", abbrev(e.Anchor), e.Depth)
}
