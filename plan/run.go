package plan

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alphalabs/pagepatch/patch"
)

// RunResult holds one execution of a plan: the document snapshot read
// at the start of the run, the patched working copy, and the per-target
// outcomes. Execute never writes; Persist does.
type RunResult struct {
	Doc     []byte
	Patched []byte
	Results []patch.Result
	Skipped []string
}

// Changed reports whether the run changed any bytes.
func (rr *RunResult) Changed() bool {
	return !bytes.Equal(rr.Doc, rr.Patched)
}

// Execute reads the plan's document and applies all targets against an
// in-memory working copy. Read errors are fatal for the whole run;
// per-target location failures are not, they land in Results.
func (p *Plan) Execute() (*RunResult, error) {
	patches, skipped, err := p.Patches()
	if err != nil {
		return nil, err
	}
	doc, err := os.ReadFile(p.DocPath())
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", p.DocPath(), err)
	}
	patched, results := patch.Run(doc, patches)
	return &RunResult{
		Doc:     doc,
		Patched: patched,
		Results: results,
		Skipped: skipped,
	}, nil
}

// Persist writes the patched document back in place.
func (p *Plan) Persist(rr *RunResult) error {
	return WriteDoc(p.DocPath(), rr.Patched)
}

// WriteDoc writes d to path via a temporary file and rename, so a
// failed write never leaves a truncated document.
func WriteDoc(path string, d []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error creating temp file in %q: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(d); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing %q: %w", tmpName, err)
	}
	if fi, err := os.Stat(path); err == nil {
		os.Chmod(tmpName, fi.Mode())
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing %q: %w", path, err)
	}
	return nil
}
