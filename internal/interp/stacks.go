package interp

import (
	"github.com/basiclang/gobasic/internal/ast"
	"github.com/basiclang/gobasic/internal/object"
)

// forFrame is one live FOR loop (§3 "FOR-stack").
type forFrame struct {
	iterator  string
	limit     float64
	step      float64
	isInteger bool
	bodyStart ast.Statement // statement immediately following the FOR
}

// forStack is a LIFO sequence of forFrame, popped by NEXT.
type forStack struct {
	frames []forFrame
}

func (s *forStack) push(f forFrame) { s.frames = append(s.frames, f) }

func (s *forStack) clear() { s.frames = nil }

// findFromTop returns the index of the topmost frame matching name (empty
// name matches the very top), or -1.
func (s *forStack) findFromTop(name string) int {
	if name == "" {
		if len(s.frames) == 0 {
			return -1
		}
		return len(s.frames) - 1
	}
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].iterator == name {
			return i
		}
	}
	return -1
}

// popThrough removes frames from the top down to and including index i
// (inner loops abandoned by a NEXT naming an outer iterator are dropped,
// matching typical BASIC NEXT semantics).
func (s *forStack) popThrough(i int) {
	s.frames = s.frames[:i]
}

func (s *forStack) top() *forFrame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

// gosubStack is a LIFO of resume points pushed by GOSUB, popped by RETURN
// (§3 "Return-stack").
type gosubStack struct {
	frames []ast.Statement
}

func (s *gosubStack) push(stmt ast.Statement) { s.frames = append(s.frames, stmt) }

func (s *gosubStack) pop() (ast.Statement, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	n := len(s.frames) - 1
	stmt := s.frames[n]
	s.frames = s.frames[:n]
	return stmt, true
}

func (s *gosubStack) clear() { s.frames = nil }

// dataPool is the flat sequence of pre-evaluated DATA literals with a read
// cursor (§3 "DATA pool").
type dataPool struct {
	items  []object.Value
	cursor int
}

func (d *dataPool) restore() { d.cursor = 0 }

func (d *dataPool) next() (object.Value, bool) {
	if d.cursor >= len(d.items) {
		return nil, false
	}
	v := d.items[d.cursor]
	d.cursor++
	return v, true
}
