// Package ast defines the tagged statement and expression tree produced by
// the parser and consumed by the evaluator.
//
// Every node keeps the token it began at, for diagnostics and for the
// round-trip rendering LIST relies on. Statements additionally carry an
// optional line number and a mutable Next link; the evaluator (not the
// parser) fills in Next when it links the program store (see
// internal/interp's linker).
package ast

import (
	"strings"

	"github.com/basiclang/gobasic/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a Value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that the evaluator dispatches and executes.
//
// LineNumber/SetLineNumber and Next/SetNext are promoted from the embedded
// Base on every concrete statement type; they exist on the interface so the
// program store and linker (internal/interp) can walk statements generically
// without a type switch.
type Statement interface {
	Node
	statementNode()
	LineNumber() *int
	SetLineNumber(*int)
	Next() Statement
	SetNext(Statement)
	// References returns the line numbers this statement can jump to
	// (GOTO/GOSUB targets, IF THEN/ELSE line targets, ON...GOTO/GOSUB
	// destinations, and recursively for COMPOUND). It is a read-only query
	// used for diagnostics; it does not validate that the lines exist.
	References() []int
}

// Base is embedded by every concrete Statement to supply the line-number
// and linkage plumbing required by the program store.
type Base struct {
	Tok  token.Token
	Line *int
	Nxt  Statement
}

func (b *Base) TokenLiteral() string   { return b.Tok.Literal }
func (b *Base) Pos() token.Position    { return b.Tok.Pos }
func (b *Base) LineNumber() *int       { return b.Line }
func (b *Base) SetLineNumber(n *int)   { b.Line = n }
func (b *Base) Next() Statement        { return b.Nxt }
func (b *Base) SetNext(s Statement)    { b.Nxt = s }
func (b *Base) statementNode()         {}

// Program is not produced by the parser directly (each parse call yields
// one Statement, per the specification's one-statement-at-a-time
// pipeline); it is a convenience used by tests and by LIST/SAVE rendering
// to treat a sequence of program lines as a unit.
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
