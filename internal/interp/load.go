package interp

import (
	"strings"

	"github.com/basiclang/gobasic/internal/ast"
	"github.com/basiclang/gobasic/internal/lexer"
	"github.com/basiclang/gobasic/internal/parser"
)

// LoadSource replaces the current program with the lines parsed from text,
// one statement per non-blank source line (the same round-trip format
// Program.Render produces for SAVE).
func (i *Interpreter) LoadSource(text string) error {
	fresh := NewProgram()
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		stmt, err := ParseLine(line)
		if err != nil {
			return err
		}
		if stmt.LineNumber() == nil {
			continue
		}
		fresh.Insert(stmt)
	}
	i.Program = fresh
	i.continue_ = nil
	return nil
}

// ParseLine parses a single line of source text into one statement, used
// both for loading a saved program and for REPL input.
func ParseLine(line string) (ast.Statement, error) {
	l := lexer.New(line)
	p := parser.New(l)
	stmt := p.ParseStatement()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, &parseError{errs}
	}
	return stmt, nil
}

type parseError struct{ errs []string }

func (e *parseError) Error() string { return strings.Join(e.errs, "; ") }
