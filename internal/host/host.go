// Package host defines the seam between the interpreter core and its
// embedder: printing, reading input, loading/saving programs, and
// presenting a graphics surface. The evaluator (internal/interp) only
// ever talks to a Host; it never touches stdio, the filesystem, or a
// display directly.
package host

import "context"

// Surface is a drawable backing a GRAPHICS/DRAW/BOX session. The core
// never inspects how a Surface is implemented.
type Surface interface {
	Clear(color string)
	SetPixel(x, y int, color string)
	GetPixel(x, y int) string
	Width() int
	Height() int
}

// Host is the interpreter's only window onto the outside world. Every
// method may block (the specification models them as futures); callers
// pass a context so a cooperative cancellation can unblock a pending
// Input call.
type Host interface {
	// Print emits text with no implied trailing newline beyond what the
	// caller included.
	Print(ctx context.Context, text string) error
	// Input requests one line of input, optionally after showing prompt.
	// A cancelled ctx resolves Input with "", nil (see §5: an outstanding
	// input future is resolved with the empty string on cancellation).
	Input(ctx context.Context, prompt string) (string, error)
	// Load returns the source of a previously saved program.
	Load(ctx context.Context, filename string) (string, error)
	// Save persists text under filename.
	Save(ctx context.Context, filename, text string) error
	// CreateImage allocates a w*h drawable surface.
	CreateImage(ctx context.Context, w, h int) (Surface, error)
	// List renders program text through a dedicated channel, distinct
	// from Print, so an embedder can style LIST output differently. A
	// Host that has no such channel may just call Print.
	List(ctx context.Context, text string) error
}
