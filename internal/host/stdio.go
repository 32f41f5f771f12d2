package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdHost is the default Host: stdio for print/input, the filesystem
// (rooted at Dir) for load/save, and an in-memory Surface for graphics.
// Grounded on the teacher CLI's practice of threading a single io.Writer
// into the interpreter constructor (`interp.New(os.Stdout)`), generalized
// here into the full host seam the specification requires.
type StdHost struct {
	Out io.Writer
	In  *bufio.Reader
	Dir string // base directory for LOAD/SAVE filenames
}

// NewStdHost builds a StdHost reading from in and writing to out, with
// LOAD/SAVE filenames resolved under dir.
func NewStdHost(out io.Writer, in io.Reader, dir string) *StdHost {
	return &StdHost{Out: out, In: bufio.NewReader(in), Dir: dir}
}

func (h *StdHost) Print(_ context.Context, text string) error {
	_, err := fmt.Fprint(h.Out, text)
	return err
}

func (h *StdHost) List(_ context.Context, text string) error {
	_, err := fmt.Fprint(h.Out, text)
	return err
}

func (h *StdHost) Input(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		if err := h.Print(ctx, prompt); err != nil {
			return "", err
		}
	}

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := h.In.ReadString('\n')
		ch <- result{line: strings.TrimRight(line, "\r\n"), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", nil
	case r := <-ch:
		if r.err != nil && r.err != io.EOF {
			return "", r.err
		}
		return r.line, nil
	}
}

func (h *StdHost) resolve(filename string) string {
	if h.Dir == "" {
		return filename
	}
	return filepath.Join(h.Dir, filename)
}

func (h *StdHost) Load(_ context.Context, filename string) (string, error) {
	data, err := os.ReadFile(h.resolve(filename))
	if err != nil {
		return "", fmt.Errorf("load %s: %w", filename, err)
	}
	return string(data), nil
}

func (h *StdHost) Save(_ context.Context, filename, text string) error {
	if err := os.WriteFile(h.resolve(filename), []byte(text), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

func (h *StdHost) CreateImage(_ context.Context, w, h2 int) (Surface, error) {
	if w <= 0 || h2 <= 0 {
		return nil, fmt.Errorf("createImage: invalid dimensions %dx%d", w, h2)
	}
	return newMemSurface(w, h2), nil
}

// memSurface is an in-memory Surface, addressable by the CLI and tests
// without a real display backend.
type memSurface struct {
	w, h   int
	pixels []string
}

func newMemSurface(w, h int) *memSurface {
	s := &memSurface{w: w, h: h, pixels: make([]string, w*h)}
	s.Clear("00000000")
	return s
}

func (s *memSurface) Width() int  { return s.w }
func (s *memSurface) Height() int { return s.h }

func (s *memSurface) Clear(color string) {
	for i := range s.pixels {
		s.pixels[i] = color
	}
}

func (s *memSurface) inBounds(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

func (s *memSurface) SetPixel(x, y int, color string) {
	if !s.inBounds(x, y) {
		return
	}
	s.pixels[y*s.w+x] = color
}

func (s *memSurface) GetPixel(x, y int) string {
	if !s.inBounds(x, y) {
		return ""
	}
	return s.pixels[y*s.w+x]
}
