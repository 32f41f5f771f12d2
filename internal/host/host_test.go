package host

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStdHostPrint(t *testing.T) {
	var buf bytes.Buffer
	h := NewStdHost(&buf, strings.NewReader(""), "")
	if err := h.Print(context.Background(), "hello\n"); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestStdHostInput(t *testing.T) {
	var buf bytes.Buffer
	h := NewStdHost(&buf, strings.NewReader("42\n"), "")
	line, err := h.Input(context.Background(), "? ")
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if line != "42" {
		t.Errorf("Input() = %q, want 42", line)
	}
	if buf.String() != "? " {
		t.Errorf("prompt not printed, got %q", buf.String())
	}
}

func TestStdHostInputCancellation(t *testing.T) {
	h := NewStdHost(&bytes.Buffer{}, &blockingReader{}, "")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	line, err := h.Input(ctx, "")
	if err != nil {
		t.Fatalf("Input on cancellation should return nil error, got %v", err)
	}
	if line != "" {
		t.Errorf("Input on cancellation should return empty string, got %q", line)
	}
}

type blockingReader struct{}

func (blockingReader) Read(p []byte) (int, error) {
	select {}
}

func TestStdHostLoadSave(t *testing.T) {
	dir := t.TempDir()
	h := NewStdHost(&bytes.Buffer{}, strings.NewReader(""), dir)
	if err := h.Save(context.Background(), "prog.bas", "10 PRINT 1\n"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "prog.bas")); err != nil {
		t.Fatalf("save did not root at Dir: %v", err)
	}
	text, err := h.Load(context.Background(), "prog.bas")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text != "10 PRINT 1\n" {
		t.Errorf("Load() = %q", text)
	}
}

func TestMemSurface(t *testing.T) {
	h := NewStdHost(&bytes.Buffer{}, strings.NewReader(""), "")
	surf, err := h.CreateImage(context.Background(), 4, 4)
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	if surf.Width() != 4 || surf.Height() != 4 {
		t.Fatalf("dimensions wrong: %dx%d", surf.Width(), surf.Height())
	}
	surf.SetPixel(1, 1, "FF0000FF")
	if got := surf.GetPixel(1, 1); got != "FF0000FF" {
		t.Errorf("GetPixel(1,1) = %q", got)
	}
	if got := surf.GetPixel(99, 99); got != "" {
		t.Errorf("out-of-bounds GetPixel should return empty, got %q", got)
	}
}
