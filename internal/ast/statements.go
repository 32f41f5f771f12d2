package ast

import (
	"strconv"
	"strings"
)

// AssignTarget is an assignment destination: a bare identifier, or an
// identifier with an index-expression list for an array element.
type AssignTarget struct {
	Name    *Identifier
	Indices []Expression // nil for a scalar target
}

func (t AssignTarget) String() string {
	if len(t.Indices) == 0 {
		return t.Name.String()
	}
	parts := make([]string, len(t.Indices))
	for i, e := range t.Indices {
		parts[i] = e.String()
	}
	return t.Name.String() + "(" + strings.Join(parts, ", ") + ")"
}

func targetsString(targets []AssignTarget) string {
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

func exprListString(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// noRefs is embedded by statements that never jump by line number, so they
// get a trivial References() without repeating the empty-slice method.
type noRefs struct{}

func (noRefs) References() []int { return nil }

// LetStatement assigns Value to one or more targets: LET A, B = 1
// assigns the same value to both A and B in source order.
type LetStatement struct {
	Base
	noRefs
	Targets []AssignTarget
	Value   Expression
}

func (ls *LetStatement) String() string {
	return "LET " + targetsString(ls.Targets) + " = " + ls.Value.String()
}

// PrintStatement evaluates and concatenates zero or more expressions with
// no separator and emits them via the host.
type PrintStatement struct {
	Base
	noRefs
	Args []Expression
}

func (ps *PrintStatement) String() string {
	return "PRINT " + exprListString(ps.Args)
}

// InputStatement prompts (optionally) and reads one line of input per
// destination.
type InputStatement struct {
	Base
	noRefs
	Prompt  *StringLiteral // nil if no prompt literal was given
	Targets []AssignTarget
}

func (is *InputStatement) String() string {
	var sb strings.Builder
	sb.WriteString("INPUT ")
	if is.Prompt != nil {
		sb.WriteString(is.Prompt.String())
		sb.WriteString("; ")
	}
	sb.WriteString(targetsString(is.Targets))
	return sb.String()
}

// IfStatement is IF condition THEN <int|stmt> [ELSE <int|stmt>]. Exactly
// one of ThenLine/ThenStmt and, if present, exactly one of ElseLine/ElseStmt
// is set.
type IfStatement struct {
	Base
	Condition Expression
	ThenLine  *int
	ThenStmt  Statement
	ElseLine  *int
	ElseStmt  Statement
}

func (is *IfStatement) References() []int {
	var refs []int
	if is.ThenLine != nil {
		refs = append(refs, *is.ThenLine)
	} else if is.ThenStmt != nil {
		refs = append(refs, is.ThenStmt.References()...)
	}
	if is.ElseLine != nil {
		refs = append(refs, *is.ElseLine)
	} else if is.ElseStmt != nil {
		refs = append(refs, is.ElseStmt.References()...)
	}
	return refs
}

func (is *IfStatement) String() string {
	var sb strings.Builder
	sb.WriteString("IF ")
	sb.WriteString(is.Condition.String())
	sb.WriteString(" THEN ")
	if is.ThenLine != nil {
		sb.WriteString(strconv.Itoa(*is.ThenLine))
	} else {
		sb.WriteString(is.ThenStmt.String())
	}
	if is.ElseLine != nil {
		sb.WriteString(" ELSE ")
		sb.WriteString(strconv.Itoa(*is.ElseLine))
	} else if is.ElseStmt != nil {
		sb.WriteString(" ELSE ")
		sb.WriteString(is.ElseStmt.String())
	}
	return sb.String()
}

// ForStatement opens a loop: FOR iterator = From TO To [STEP Step]. Step is
// nil when omitted; the evaluator treats a missing Step as 1.
type ForStatement struct {
	Base
	noRefs
	Iterator *Identifier
	From     Expression
	To       Expression
	Step     Expression // nil if omitted
}

func (fs *ForStatement) String() string {
	var sb strings.Builder
	sb.WriteString("FOR ")
	sb.WriteString(fs.Iterator.String())
	sb.WriteString(" = ")
	sb.WriteString(fs.From.String())
	sb.WriteString(" TO ")
	sb.WriteString(fs.To.String())
	if fs.Step != nil {
		sb.WriteString(" STEP ")
		sb.WriteString(fs.Step.String())
	}
	return sb.String()
}

// NextStatement closes the innermost (or named) FOR loop(s). An empty
// Iterators list means "the top of the FOR stack".
type NextStatement struct {
	Base
	noRefs
	Iterators []*Identifier
}

func (ns *NextStatement) String() string {
	if len(ns.Iterators) == 0 {
		return "NEXT"
	}
	parts := make([]string, len(ns.Iterators))
	for i, id := range ns.Iterators {
		parts[i] = id.String()
	}
	return "NEXT " + strings.Join(parts, ", ")
}

// GotoStatement jumps unconditionally to Target.
type GotoStatement struct {
	Base
	Target int
}

func (gs *GotoStatement) References() []int  { return []int{gs.Target} }
func (gs *GotoStatement) String() string      { return "GOTO " + strconv.Itoa(gs.Target) }

// GosubStatement pushes a return address and jumps to Target.
type GosubStatement struct {
	Base
	Target int
}

func (gs *GosubStatement) References() []int { return []int{gs.Target} }
func (gs *GosubStatement) String() string     { return "GOSUB " + strconv.Itoa(gs.Target) }

// ReturnStatement pops the return stack and resumes there.
type ReturnStatement struct {
	Base
	noRefs
}

func (rs *ReturnStatement) String() string { return "RETURN" }

// OnStatement is ON Expr (GOTO|GOSUB) line, line, ...: it evaluates Expr,
// floors it, and dispatches (1-based) to Targets[n-1].
type OnStatement struct {
	Base
	Expr    Expression
	IsGosub bool
	Targets []int
}

func (os *OnStatement) References() []int {
	refs := make([]int, len(os.Targets))
	copy(refs, os.Targets)
	return refs
}

func (os *OnStatement) String() string {
	verb := "GOTO"
	if os.IsGosub {
		verb = "GOSUB"
	}
	parts := make([]string, len(os.Targets))
	for i, n := range os.Targets {
		parts[i] = strconv.Itoa(n)
	}
	return "ON " + os.Expr.String() + " " + verb + " " + strings.Join(parts, ", ")
}

// RemStatement is a comment; it has no runtime effect.
type RemStatement struct {
	Base
	noRefs
	Text string
}

func (rs *RemStatement) String() string { return rs.Text }

// DataStatement holds a comma-separated list of literal values, pre-evaluated
// into the DATA pool at the start of each RUN.
type DataStatement struct {
	Base
	noRefs
	Values []Expression
}

func (ds *DataStatement) String() string { return "DATA " + exprListString(ds.Values) }

// ReadStatement consumes one DATA-pool item per target, in order.
type ReadStatement struct {
	Base
	noRefs
	Targets []AssignTarget
}

func (rs *ReadStatement) String() string { return "READ " + targetsString(rs.Targets) }

// RestoreStatement resets the DATA pool's read cursor to zero.
type RestoreStatement struct {
	Base
	noRefs
}

func (rs *RestoreStatement) String() string { return "RESTORE" }

// DefStatement defines a user function: DEF FN name(arg) = body. Param is
// nil if the function takes no formal.
type DefStatement struct {
	Base
	noRefs
	Name  string
	Param *Identifier
	Body  Expression
}

func (ds *DefStatement) String() string {
	arg := ""
	if ds.Param != nil {
		arg = ds.Param.String()
	}
	return "DEF FN " + ds.Name + "(" + arg + ") = " + ds.Body.String()
}

// ArrayDecl is one name(dims...) entry in a DIM statement.
type ArrayDecl struct {
	Name *Identifier
	Dims []Expression
}

func (d ArrayDecl) String() string {
	return d.Name.String() + "(" + exprListString(d.Dims) + ")"
}

// DimStatement declares one or more arrays.
type DimStatement struct {
	Base
	noRefs
	Decls []ArrayDecl
}

func (ds *DimStatement) String() string {
	parts := make([]string, len(ds.Decls))
	for i, d := range ds.Decls {
		parts[i] = d.String()
	}
	return "DIM " + strings.Join(parts, ", ")
}

// RunStatement restarts the program from its lowest-numbered line.
type RunStatement struct {
	Base
	noRefs
}

func (rs *RunStatement) String() string { return "RUN" }

// EndStatement halts execution and records a continuation point.
type EndStatement struct {
	Base
	noRefs
}

func (es *EndStatement) String() string { return "END" }

// ContStatement resumes at the last END/STOP continuation point.
type ContStatement struct {
	Base
	noRefs
}

func (cs *ContStatement) String() string { return "CONT" }

// ClrStatement clears variables and stacks but not the program.
type ClrStatement struct {
	Base
	noRefs
}

func (cs *ClrStatement) String() string { return "CLR" }

// ListStatement prints program lines in [Start, End] (inclusive), both
// optional.
type ListStatement struct {
	Base
	noRefs
	Start Expression // nil if omitted
	End   Expression // nil if omitted
}

func (ls *ListStatement) String() string {
	if ls.Start == nil && ls.End == nil {
		return "LIST"
	}
	if ls.Start != nil && ls.End != nil {
		return "LIST " + ls.Start.String() + "-" + ls.End.String()
	}
	if ls.Start != nil {
		return "LIST " + ls.Start.String() + "-"
	}
	return "LIST -" + ls.End.String()
}

// LoadStatement loads a saved program via the host and replaces the
// current one.
type LoadStatement struct {
	Base
	noRefs
	Filename Expression
}

func (ls *LoadStatement) String() string { return "LOAD " + ls.Filename.String() }

// SaveStatement renders the program and persists it via the host.
type SaveStatement struct {
	Base
	noRefs
	Filename Expression
}

func (ss *SaveStatement) String() string { return "SAVE " + ss.Filename.String() }

// NewStatement clears variables, stacks, and the program.
type NewStatement struct {
	Base
	noRefs
}

func (ns *NewStatement) String() string { return "NEW" }

// StopStatement halts execution and records a continuation point exactly
// like END, so CONT resumes at the statement after the STOP.
type StopStatement struct {
	Base
	noRefs
}

func (ss *StopStatement) String() string { return "STOP" }

// GraphicsStatement creates a drawable surface of the given size via the
// host.
type GraphicsStatement struct {
	Base
	noRefs
	Width  Expression
	Height Expression
}

func (gs *GraphicsStatement) String() string {
	return "GRAPHICS " + gs.Width.String() + ", " + gs.Height.String()
}

// DrawStatement plots a point (X2/Y2 nil) or rasterizes a line from
// (X1,Y1) to (X2,Y2).
type DrawStatement struct {
	Base
	noRefs
	Color Expression
	X1    Expression
	Y1    Expression
	X2    Expression // nil for a single point
	Y2    Expression
}

func (ds *DrawStatement) String() string {
	s := "DRAW " + ds.Color.String() + ", " + ds.X1.String() + ", " + ds.Y1.String()
	if ds.X2 != nil {
		s += " TO " + ds.X2.String() + ", " + ds.Y2.String()
	}
	return s
}

// BoxStatement draws an axis-aligned rectangle outline.
type BoxStatement struct {
	Base
	noRefs
	Color  Expression
	Left   Expression
	Top    Expression
	Width  Expression
	Height Expression
}

func (bs *BoxStatement) String() string {
	return "BOX " + bs.Color.String() + ", " + bs.Left.String() + ", " + bs.Top.String() +
		", " + bs.Width.String() + ", " + bs.Height.String()
}

// TronStatement turns on per-statement execution tracing.
type TronStatement struct {
	Base
	noRefs
}

func (ts *TronStatement) String() string { return "TRON" }

// TroffStatement turns off per-statement execution tracing.
type TroffStatement struct {
	Base
	noRefs
}

func (ts *TroffStatement) String() string { return "TROFF" }

// CompoundStatement is a colon-separated sequence of sub-statements that
// share one line number.
type CompoundStatement struct {
	Base
	Subs []Statement
}

func (cs *CompoundStatement) References() []int {
	var refs []int
	for _, s := range cs.Subs {
		refs = append(refs, s.References()...)
	}
	return refs
}

func (cs *CompoundStatement) String() string {
	parts := make([]string, len(cs.Subs))
	for i, s := range cs.Subs {
		parts[i] = s.String()
	}
	return strings.Join(parts, " : ")
}

// EmptyStatement is a blank or otherwise content-free line; it is a no-op.
type EmptyStatement struct {
	Base
	noRefs
}

func (es *EmptyStatement) String() string { return "" }
