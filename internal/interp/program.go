package interp

import (
	"sort"
	"strconv"
	"strings"

	"github.com/basiclang/gobasic/internal/ast"
)

// Program is the sorted, line-keyed statement store (§3 "Program store").
// Inserting a line with an existing number replaces the prior statement.
// After any mutation, Next links are rebuilt across the whole program: line
// N's last executable unit points to line N+1's first, and within a
// COMPOUND line, each sub-statement points to the next, with the final
// sub inheriting the following program line's entry point.
type Program struct {
	lines map[int]ast.Statement
}

// NewProgram creates an empty program store.
func NewProgram() *Program {
	return &Program{lines: make(map[int]ast.Statement)}
}

// Insert adds or replaces the statement at its own line number (stmt must
// have a non-nil LineNumber).
func (p *Program) Insert(stmt ast.Statement) {
	n := stmt.LineNumber()
	if n == nil {
		return
	}
	p.lines[*n] = stmt
	p.relink()
}

// Remove deletes the line numbered n, if present.
func (p *Program) Remove(n int) {
	if _, ok := p.lines[n]; !ok {
		return
	}
	delete(p.lines, n)
	p.relink()
}

// Clear empties the program store.
func (p *Program) Clear() {
	p.lines = make(map[int]ast.Statement)
}

// Lines returns every line number in ascending order.
func (p *Program) Lines() []int {
	nums := make([]int, 0, len(p.lines))
	for n := range p.lines {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// Get returns the raw (possibly COMPOUND) statement stored at line n.
func (p *Program) Get(n int) (ast.Statement, bool) {
	stmt, ok := p.lines[n]
	return stmt, ok
}

// entryOf returns the first executable statement for a program line: the
// statement itself, or a COMPOUND line's first sub-statement.
func entryOf(stmt ast.Statement) ast.Statement {
	if cs, ok := stmt.(*ast.CompoundStatement); ok && len(cs.Subs) > 0 {
		return cs.Subs[0]
	}
	return stmt
}

// EntryAt resolves line n to its first executable statement, for GOTO,
// GOSUB, IF-THEN/ELSE, and ON...GOTO/GOSUB line targets.
func (p *Program) EntryAt(n int) (ast.Statement, bool) {
	stmt, ok := p.lines[n]
	if !ok {
		return nil, false
	}
	return entryOf(stmt), true
}

// First returns the entry point of the lowest-numbered line, for RUN.
func (p *Program) First() (ast.Statement, bool) {
	lines := p.Lines()
	if len(lines) == 0 {
		return nil, false
	}
	return p.EntryAt(lines[0])
}

// Empty reports whether the program store has no lines.
func (p *Program) Empty() bool { return len(p.lines) == 0 }

func (p *Program) relink() {
	lines := p.Lines()
	for i, n := range lines {
		stmt := p.lines[n]
		var following ast.Statement
		if i+1 < len(lines) {
			following = entryOf(p.lines[lines[i+1]])
		}
		linkWithin(stmt, following)
	}
}

// linkWithin wires stmt's (and, if it is a COMPOUND, its sub-statements')
// Next pointers so the final unit in the line points to following.
func linkWithin(stmt ast.Statement, following ast.Statement) {
	cs, ok := stmt.(*ast.CompoundStatement)
	if !ok {
		stmt.SetNext(following)
		return
	}
	for i, sub := range cs.Subs {
		if i+1 < len(cs.Subs) {
			sub.SetNext(cs.Subs[i+1])
		} else {
			sub.SetNext(following)
		}
	}
	cs.SetNext(following)
}

// Render produces the LIST text for lines in [start, end] inclusive; a nil
// bound is unbounded on that side. This is also what SAVE persists and
// LOAD re-parses, satisfying the round-trip guarantee (§6) since listing
// comes entirely from each statement's String() method.
func (p *Program) Render(start, end *int) string {
	var sb strings.Builder
	for _, n := range p.Lines() {
		if start != nil && n < *start {
			continue
		}
		if end != nil && n > *end {
			continue
		}
		sb.WriteString(strconv.Itoa(n))
		sb.WriteString(" ")
		sb.WriteString(p.lines[n].String())
		sb.WriteString("\n")
	}
	return sb.String()
}
