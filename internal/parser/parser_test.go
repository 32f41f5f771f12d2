package parser

import (
	"testing"

	"github.com/basiclang/gobasic/internal/ast"
	"github.com/basiclang/gobasic/internal/lexer"
)

func parseOne(t *testing.T, input string) ast.Statement {
	t.Helper()
	p := New(lexer.New(input))
	stmt := p.ParseStatement()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors for %q: %v", input, p.Errors())
	}
	return stmt
}

func TestParseLetStatement(t *testing.T) {
	stmt := parseOne(t, "10 LET A% = 1 + 2")
	ls, ok := stmt.(*ast.LetStatement)
	if !ok {
		t.Fatalf("expected *ast.LetStatement, got %T", stmt)
	}
	if got := *ls.LineNumber(); got != 10 {
		t.Errorf("line number = %d, want 10", got)
	}
	if len(ls.Targets) != 1 || ls.Targets[0].Name.Value != "A%" {
		t.Errorf("targets = %+v", ls.Targets)
	}
	if ls.Value.String() != "1 + 2" {
		t.Errorf("value = %q, want %q", ls.Value.String(), "1 + 2")
	}
}

func TestParseLetWithoutKeyword(t *testing.T) {
	stmt := parseOne(t, "20 X = 5")
	ls, ok := stmt.(*ast.LetStatement)
	if !ok {
		t.Fatalf("expected *ast.LetStatement, got %T", stmt)
	}
	if ls.Targets[0].Name.Value != "X" {
		t.Errorf("target = %q, want X", ls.Targets[0].Name.Value)
	}
}

func TestParseCompoundStatement(t *testing.T) {
	stmt := parseOne(t, `10 LET A = 1 : LET B = 2 : PRINT A`)
	cs, ok := stmt.(*ast.CompoundStatement)
	if !ok {
		t.Fatalf("expected *ast.CompoundStatement, got %T", stmt)
	}
	if len(cs.Subs) != 3 {
		t.Fatalf("expected 3 sub-statements, got %d", len(cs.Subs))
	}
}

func TestParseIfThenLineNumber(t *testing.T) {
	stmt := parseOne(t, "10 IF A > 0 THEN 100")
	is, ok := stmt.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", stmt)
	}
	if is.ThenLine == nil || *is.ThenLine != 100 {
		t.Errorf("ThenLine = %v, want 100", is.ThenLine)
	}
}

func TestParseIfThenElseStatement(t *testing.T) {
	stmt := parseOne(t, `10 IF A > 0 THEN PRINT "POS" ELSE PRINT "NEG"`)
	is, ok := stmt.(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", stmt)
	}
	if is.ThenStmt == nil || is.ElseStmt == nil {
		t.Fatalf("expected both THEN and ELSE statement bodies")
	}
}

func TestParseForNext(t *testing.T) {
	stmt := parseOne(t, "10 FOR I = 1 TO 10 STEP 2")
	fs, ok := stmt.(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", stmt)
	}
	if fs.Iterator.Value != "I" || fs.Step == nil {
		t.Errorf("for statement malformed: %+v", fs)
	}

	next := parseOne(t, "20 NEXT I")
	ns, ok := next.(*ast.NextStatement)
	if !ok {
		t.Fatalf("expected *ast.NextStatement, got %T", next)
	}
	if len(ns.Iterators) != 1 || ns.Iterators[0].Value != "I" {
		t.Errorf("next iterators = %+v", ns.Iterators)
	}
}

func TestParseGotoGosubReturn(t *testing.T) {
	g := parseOne(t, "10 GOTO 100")
	if gs, ok := g.(*ast.GotoStatement); !ok || gs.Target != 100 {
		t.Fatalf("got %+v", g)
	}
	gs := parseOne(t, "20 GOSUB 200")
	if s, ok := gs.(*ast.GosubStatement); !ok || s.Target != 200 {
		t.Fatalf("got %+v", gs)
	}
	r := parseOne(t, "30 RETURN")
	if _, ok := r.(*ast.ReturnStatement); !ok {
		t.Fatalf("got %T", r)
	}
}

func TestParseOnGoto(t *testing.T) {
	stmt := parseOne(t, "10 ON X GOTO 100, 200, 300")
	os, ok := stmt.(*ast.OnStatement)
	if !ok {
		t.Fatalf("expected *ast.OnStatement, got %T", stmt)
	}
	if os.IsGosub {
		t.Errorf("expected GOTO form, got GOSUB")
	}
	if len(os.Targets) != 3 || os.Targets[2] != 300 {
		t.Errorf("targets = %+v", os.Targets)
	}
}

func TestParseDataReadRestore(t *testing.T) {
	d := parseOne(t, `10 DATA 1, 2, "three"`)
	ds, ok := d.(*ast.DataStatement)
	if !ok || len(ds.Values) != 3 {
		t.Fatalf("got %+v", d)
	}
	r := parseOne(t, "20 READ A, B, C$")
	rs, ok := r.(*ast.ReadStatement)
	if !ok || len(rs.Targets) != 3 {
		t.Fatalf("got %+v", r)
	}
	_ = parseOne(t, "30 RESTORE")
}

func TestParseDefFn(t *testing.T) {
	stmt := parseOne(t, "10 DEF FN SQUARE(X) = X * X")
	ds, ok := stmt.(*ast.DefStatement)
	if !ok {
		t.Fatalf("expected *ast.DefStatement, got %T", stmt)
	}
	if ds.Name != "SQUARE" || ds.Param == nil || ds.Param.Value != "X" {
		t.Errorf("def malformed: %+v", ds)
	}
}

func TestParseDim(t *testing.T) {
	stmt := parseOne(t, "10 DIM A(10), B$(5, 5)")
	ds, ok := stmt.(*ast.DimStatement)
	if !ok || len(ds.Decls) != 2 {
		t.Fatalf("got %+v", stmt)
	}
	if len(ds.Decls[1].Dims) != 2 {
		t.Errorf("expected two dimensions for B$, got %d", len(ds.Decls[1].Dims))
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "1 + 2 * 3"},
		{"(1 + 2) * 3", "(1 + 2) * 3"},
		{"1 < 2 AND 3 > 2", "1 < 2 AND 3 > 2"},
		{"-X + 1", "-X + 1"},
		{"NOT A = B", "NOT A = B"},
	}
	for _, tt := range tests {
		p := New(lexer.New(tt.input))
		expr := p.ParseExpression(LOWEST)
		if len(p.Errors()) != 0 {
			t.Fatalf("parse errors for %q: %v", tt.input, p.Errors())
		}
		if expr.String() != tt.want {
			t.Errorf("ParseExpression(%q) = %q, want %q", tt.input, expr.String(), tt.want)
		}
	}
}

func TestParseFunctionCallAndArrayIndex(t *testing.T) {
	stmt := parseOne(t, "10 LET A = SIN(X) + B(1, 2)")
	ls := stmt.(*ast.LetStatement)
	if ls.Value.String() != "SIN(X) + B(1, 2)" {
		t.Errorf("got %q", ls.Value.String())
	}
}

func TestParseFNCall(t *testing.T) {
	stmt := parseOne(t, "10 LET Y = FN SQUARE(3)")
	ls := stmt.(*ast.LetStatement)
	if _, ok := ls.Value.(*ast.FNCallExpression); !ok {
		t.Fatalf("expected *ast.FNCallExpression, got %T", ls.Value)
	}
}

func TestParserReportsErrorOnGarbage(t *testing.T) {
	p := New(lexer.New("10 @@@"))
	p.ParseStatement()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a parse error for garbage input")
	}
}
