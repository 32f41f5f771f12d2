package interp

import (
	"testing"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	p := NewProgram()
	for _, line := range splitLines(src) {
		stmt, err := ParseLine(line)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		if stmt.LineNumber() != nil {
			p.Insert(stmt)
		}
	}
	return p
}

func splitLines(src string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, src[start:i])
			start = i + 1
		}
	}
	if start < len(src) {
		lines = append(lines, src[start:])
	}
	return lines
}

func TestProgramLinksSequentialLines(t *testing.T) {
	p := mustParse(t, "10 LET A = 1\n20 LET B = 2\n30 PRINT A\n")
	first, ok := p.EntryAt(10)
	if !ok {
		t.Fatalf("line 10 missing")
	}
	second := first.Next()
	if second == nil || *second.LineNumber() != 20 {
		t.Fatalf("line 10 should link to line 20, got %v", second)
	}
	third := second.Next()
	if third == nil || *third.LineNumber() != 30 {
		t.Fatalf("line 20 should link to line 30, got %v", third)
	}
	if third.Next() != nil {
		t.Fatalf("last line should link to nil, got %v", third.Next())
	}
}

func TestProgramCompoundLineLinksWithinAndAcross(t *testing.T) {
	p := mustParse(t, "10 LET A = 1 : LET B = 2\n20 PRINT A\n")
	first, ok := p.EntryAt(10)
	if !ok {
		t.Fatalf("line 10 missing")
	}
	// first is the COMPOUND's first sub; its LineNumber is unset (only the
	// CompoundStatement itself carries 10), so Next should lead to the
	// second sub, then to line 20's entry.
	second := first.Next()
	if second == nil {
		t.Fatalf("expected a second sub-statement")
	}
	third := second.Next()
	if third == nil || *third.LineNumber() != 20 {
		t.Fatalf("last sub of line 10 should link to line 20, got %v", third)
	}
}

func TestProgramInsertReplacesExistingLine(t *testing.T) {
	p := mustParse(t, "10 LET A = 1\n")
	stmt, err := ParseLine("10 LET A = 2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p.Insert(stmt)
	if len(p.Lines()) != 1 {
		t.Fatalf("expected 1 line after replace, got %d", len(p.Lines()))
	}
}

func TestProgramRemove(t *testing.T) {
	p := mustParse(t, "10 LET A = 1\n20 LET B = 2\n")
	p.Remove(10)
	if len(p.Lines()) != 1 || p.Lines()[0] != 20 {
		t.Fatalf("Remove(10) left %v", p.Lines())
	}
}

func TestProgramRenderRoundTrip(t *testing.T) {
	p := mustParse(t, "10 LET A = 1\n20 PRINT A\n")
	text := p.Render(nil, nil)
	reloaded := mustParse(t, text)
	if len(reloaded.Lines()) != 2 {
		t.Fatalf("round-tripped program has %d lines, want 2", len(reloaded.Lines()))
	}
}
