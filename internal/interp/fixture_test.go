package interp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs each .bas program under testdata/fixtures and snapshots
// its PRINT output, so a change in evaluator semantics shows up as a diff
// against the committed snapshot rather than a silent behavior change.
func TestFixtures(t *testing.T) {
	entries, err := os.ReadDir("testdata/fixtures")
	if err != nil {
		t.Fatalf("reading fixtures dir: %v", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".bas" {
			continue
		}
		name := entry.Name()
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join("testdata/fixtures", name))
			if err != nil {
				t.Fatalf("reading %s: %v", name, err)
			}

			h := &captureHost{}
			it := New(h)
			if err := it.LoadSource(string(src)); err != nil {
				t.Fatalf("LoadSource(%s): %v", name, err)
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := it.Run(ctx); err != nil {
				t.Fatalf("Run(%s): %v", name, err)
			}
			snaps.MatchSnapshot(t, h.out.String())
		})
	}
}
