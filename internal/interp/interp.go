// Package interp is the evaluator: it owns the program store, variable
// scope, FOR/GOSUB stacks, DATA pool, continuation point, and the
// statement-linked execution loop described by the specification's
// runtime component.
package interp

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/basiclang/gobasic/internal/ast"
	"github.com/basiclang/gobasic/internal/builtins"
	"github.com/basiclang/gobasic/internal/host"
	"github.com/basiclang/gobasic/internal/ierrors"
	"github.com/basiclang/gobasic/internal/object"
)

// State is the evaluator's execution state machine (§5).
type State int

const (
	StateIdle State = iota
	StateRunning
)

// Interpreter is one evaluator instance: program store, scope, control
// stacks, DATA pool, and the host seam. There is no sharing of this state
// across instances and no internal thread-safety beyond the cooperative
// cancellation flag, matching the single-writer discipline the
// specification requires (§5).
type Interpreter struct {
	Host      host.Host
	Builtins  *builtins.Registry
	Program   *Program
	Global    *Environment
	Arrays    map[string]*object.Array
	UserFuncs map[string]*ast.DefStatement

	forStack   forStack
	gosub      gosubStack
	data       dataPool
	state      State
	continue_  ast.Statement // continuation point for CONT
	surface    host.Surface
	traceOn    bool
	cancelFlag atomic.Bool
}

// New creates an Interpreter backed by h, using the default built-in
// function registry.
func New(h host.Host) *Interpreter {
	it := &Interpreter{
		Host:      h,
		Builtins:  builtins.DefaultRegistry,
		Program:   NewProgram(),
		Global:    NewEnvironment(),
		Arrays:    make(map[string]*object.Array),
		UserFuncs: make(map[string]*ast.DefStatement),
		state:     StateIdle,
	}
	seedGlobals(it.Global)
	return it
}

// seedGlobals binds the global constants the specification requires the
// scope to carry from construction (§4.5: "a global scope (seeded with
// PI = π)"). Called again after CLR/NEW, which otherwise wipe the global
// scope clean.
func seedGlobals(env *Environment) {
	env.Set("PI", &object.Float{Value: math.Pi})
}

// Stop requests cooperative cancellation of any in-progress Run/Immediate
// loop; it is safe to call from another goroutine.
func (i *Interpreter) Stop() { i.cancelFlag.Store(true) }

func (i *Interpreter) cancelled() bool { return i.cancelFlag.Load() }

// State reports the current execution state.
func (i *Interpreter) State() State { return i.state }

// InsertLine adds or replaces a numbered program line.
func (i *Interpreter) InsertLine(stmt ast.Statement) {
	i.Program.Insert(stmt)
}

// RemoveLine deletes a numbered program line.
func (i *Interpreter) RemoveLine(n int) {
	i.Program.Remove(n)
}

// NewProgram clears variables, stacks, and the program (§8 invariant 6).
func (i *Interpreter) NewProgram() {
	i.Program.Clear()
	i.clr()
}

// clr clears variables and stacks but not the program (CLR, §8 invariant 6).
func (i *Interpreter) clr() {
	i.Global.Clear()
	seedGlobals(i.Global)
	i.Arrays = make(map[string]*object.Array)
	i.UserFuncs = make(map[string]*ast.DefStatement)
	i.forStack.clear()
	i.gosub.clear()
	i.data = dataPool{}
	i.continue_ = nil
}

// rebuildDataPool walks the program in line order (descending into
// COMPOUND sub-statements) and pre-evaluates every DATA literal, per §3
// ("the pool is rebuilt each time the program begins a fresh RUN").
func (i *Interpreter) rebuildDataPool() *object.Error {
	var items []object.Value
	for _, n := range i.Program.Lines() {
		stmt, _ := i.Program.Get(n)
		for _, s := range flattenCompound(stmt) {
			ds, ok := s.(*ast.DataStatement)
			if !ok {
				continue
			}
			for _, expr := range ds.Values {
				v := i.evalExpression(i.Global, expr)
				if object.IsError(v) {
					return v.(*object.Error)
				}
				items = append(items, v)
			}
		}
	}
	i.data = dataPool{items: items}
	return nil
}

func flattenCompound(stmt ast.Statement) []ast.Statement {
	if cs, ok := stmt.(*ast.CompoundStatement); ok {
		return cs.Subs
	}
	return []ast.Statement{stmt}
}

// Run restarts the program from its lowest-numbered line: it clears the
// scope and FOR/GOSUB stacks, rebuilds the DATA pool, and executes until
// completion, an error, END/STOP, or cancellation (§8 invariant 6).
func (i *Interpreter) Run(ctx context.Context) error {
	if i.state == StateRunning {
		return fmt.Errorf("busy")
	}
	start, errVal := i.resetForRun()
	if errVal != nil {
		return fmt.Errorf("%s", errVal.Message)
	}
	return i.runLoop(ctx, start)
}

// resetForRun clears variables and stacks, rebuilds the DATA pool, and
// returns the program's first statement. It is shared by the public Run
// entry point and by the RUN statement's own dispatch inside an
// already-executing runLoop, which must not re-check the busy state or
// re-enter runLoop recursively (§5: exactly one execution loop per
// instance).
func (i *Interpreter) resetForRun() (ast.Statement, *object.Error) {
	if i.Program.Empty() {
		return nil, ierrors.New("empty program")
	}
	i.clr()
	if errVal := i.rebuildDataPool(); errVal != nil {
		return nil, errVal
	}
	start, _ := i.Program.First()
	return start, nil
}

// Cont resumes execution at the last END/STOP continuation point.
func (i *Interpreter) Cont(ctx context.Context) error {
	if i.continue_ == nil {
		return fmt.Errorf("%s", ierrors.MsgContinueWithoutRun)
	}
	start := i.continue_
	i.continue_ = nil
	return i.runLoop(ctx, start)
}

// Immediate executes a single statement with no line number directly
// against the live interpreter state, following Next links if the
// statement is itself a control-flow jump into the program (e.g. an
// immediate GOTO).
func (i *Interpreter) Immediate(ctx context.Context, stmt ast.Statement) error {
	if i.state == StateRunning {
		return fmt.Errorf("busy")
	}
	// An immediate line never goes through Program.relink (that only runs on
	// line insertion), so a COMPOUND statement's Subs carry no Next links
	// yet; wire them here so the whole colon-separated line executes, not
	// just its first sub.
	linkWithin(stmt, nil)
	return i.runLoop(ctx, stmt)
}

// runLoop is the shared execution engine for Run, Cont, and Immediate: it
// dispatches one statement at a time, polling for cancellation before each
// dispatch (§5).
func (i *Interpreter) runLoop(ctx context.Context, start ast.Statement) error {
	i.state = StateRunning
	defer func() { i.state = StateIdle }()

	current := start
	for current != nil {
		if i.cancelled() || ctx.Err() != nil {
			i.cancelFlag.Store(false)
			return nil
		}

		if i.traceOn {
			if n := current.LineNumber(); n != nil {
				_ = i.Host.Print(ctx, fmt.Sprintf("[%d]\n", *n))
			}
		}

		next, halt, errVal := i.execStatement(ctx, i.Global, current)
		if errVal != nil {
			return fmt.Errorf("%s", errVal.Message)
		}
		if halt {
			i.continue_ = next
			return nil
		}
		current = next
	}
	return nil
}

// execStatement evaluates one statement and decides what follows it. halt
// is true for END/STOP, which sets the continuation point and stops the
// loop without it being an error.
func (i *Interpreter) execStatement(ctx context.Context, env *Environment, stmt ast.Statement) (next ast.Statement, halt bool, errVal *object.Error) {
	switch s := stmt.(type) {

	case *ast.EmptyStatement, *ast.RemStatement, *ast.DataStatement:
		return stmt.Next(), false, nil

	case *ast.LetStatement:
		v := i.evalExpression(env, s.Value)
		if e, ok := v.(*object.Error); ok {
			return nil, false, e
		}
		for _, t := range s.Targets {
			if e := i.assign(env, t, v); e != nil {
				return nil, false, e
			}
		}
		return stmt.Next(), false, nil

	case *ast.PrintStatement:
		var sb strings.Builder
		for _, a := range s.Args {
			v := i.evalExpression(env, a)
			if e, ok := v.(*object.Error); ok {
				return nil, false, e
			}
			sb.WriteString(v.String())
		}
		sb.WriteString("\n")
		if err := i.Host.Print(ctx, sb.String()); err != nil {
			return nil, false, ierrors.New("print failed: %s", err)
		}
		return stmt.Next(), false, nil

	case *ast.InputStatement:
		if e := i.execInput(ctx, env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.IfStatement:
		return i.execIf(env, s)

	case *ast.ForStatement:
		if e := i.execFor(env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.NextStatement:
		return i.execNext(env, s)

	case *ast.GotoStatement:
		target, ok := i.Program.EntryAt(s.Target)
		if !ok {
			return nil, false, ierrors.UndefinedLine(s.Target)
		}
		return target, false, nil

	case *ast.GosubStatement:
		target, ok := i.Program.EntryAt(s.Target)
		if !ok {
			return nil, false, ierrors.UndefinedLine(s.Target)
		}
		i.gosub.push(stmt.Next())
		return target, false, nil

	case *ast.ReturnStatement:
		ret, ok := i.gosub.pop()
		if !ok {
			return nil, false, ierrors.New(ierrors.MsgReturnWithoutGosub)
		}
		return ret, false, nil

	case *ast.OnStatement:
		return i.execOn(env, s)

	case *ast.ReadStatement:
		if e := i.execRead(env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.RestoreStatement:
		i.data.restore()
		return stmt.Next(), false, nil

	case *ast.DefStatement:
		i.UserFuncs[s.Name] = s
		return stmt.Next(), false, nil

	case *ast.DimStatement:
		if e := i.execDim(env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.RunStatement:
		start, e := i.resetForRun()
		if e != nil {
			return nil, false, e
		}
		return start, false, nil

	case *ast.EndStatement, *ast.StopStatement:
		return stmt.Next(), true, nil

	case *ast.ContStatement:
		if i.continue_ == nil {
			return nil, false, ierrors.New(ierrors.MsgContinueWithoutRun)
		}
		start := i.continue_
		i.continue_ = nil
		return start, false, nil

	case *ast.ClrStatement:
		i.clr()
		return stmt.Next(), false, nil

	case *ast.NewStatement:
		i.NewProgram()
		return stmt.Next(), false, nil

	case *ast.ListStatement:
		if e := i.execList(ctx, env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.LoadStatement:
		if e := i.execLoad(ctx, env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.SaveStatement:
		if e := i.execSave(ctx, env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.GraphicsStatement:
		if e := i.execGraphics(ctx, env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.DrawStatement:
		if e := i.execDraw(env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.BoxStatement:
		if e := i.execBox(env, s); e != nil {
			return nil, false, e
		}
		return stmt.Next(), false, nil

	case *ast.TronStatement:
		i.traceOn = true
		return stmt.Next(), false, nil

	case *ast.TroffStatement:
		i.traceOn = false
		return stmt.Next(), false, nil

	case *ast.CompoundStatement:
		// Program-store insertion flattens COMPOUND into its Subs chain
		// (see program.go); reaching one directly means it was executed
		// standalone (e.g. an immediate multi-statement line). Run its
		// first sub and let its own Next chain carry on from there.
		if len(s.Subs) == 0 {
			return stmt.Next(), false, nil
		}
		return s.Subs[0], false, nil

	default:
		return nil, false, ierrors.New("internal error: unhandled statement type %T", stmt)
	}
}

func (i *Interpreter) execInput(ctx context.Context, env *Environment, s *ast.InputStatement) *object.Error {
	prompt := ""
	if s.Prompt != nil {
		prompt = s.Prompt.Value
	}
	for _, t := range s.Targets {
		line, err := i.Host.Input(ctx, prompt)
		if err != nil {
			return ierrors.New("input failed: %s", err)
		}
		// The prompt is shown only before the first destination.
		prompt = ""
		v := i.parseInputValue(t, strings.TrimSpace(line))
		if e := i.assign(env, t, v); e != nil {
			return e
		}
	}
	return nil
}

func (i *Interpreter) parseInputValue(t ast.AssignTarget, raw string) object.Value {
	if sigilType(t.Name.Value) == object.STRING {
		return &object.String{Value: raw}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return &object.Float{Value: 0}
	}
	return &object.Float{Value: f}
}

func (i *Interpreter) execIf(env *Environment, s *ast.IfStatement) (ast.Statement, bool, *object.Error) {
	cond := i.evalCondition(env, s.Condition)
	if e, ok := cond.(*object.Error); ok {
		return nil, false, e
	}
	if object.IsTruthy(cond) {
		if s.ThenLine != nil {
			target, ok := i.Program.EntryAt(*s.ThenLine)
			if !ok {
				return nil, false, ierrors.UndefinedLine(*s.ThenLine)
			}
			return target, false, nil
		}
		// An inline THEN statement has no sibling of its own to fall
		// through to; chain it to the IF's own Next so execution resumes
		// at whatever follows the IF, exactly as the untaken branch does.
		s.ThenStmt.SetNext(s.Next())
		return s.ThenStmt, false, nil
	}
	if s.ElseLine != nil {
		target, ok := i.Program.EntryAt(*s.ElseLine)
		if !ok {
			return nil, false, ierrors.UndefinedLine(*s.ElseLine)
		}
		return target, false, nil
	}
	if s.ElseStmt != nil {
		s.ElseStmt.SetNext(s.Next())
		return s.ElseStmt, false, nil
	}
	return s.Next(), false, nil
}

func (i *Interpreter) execFor(env *Environment, s *ast.ForStatement) *object.Error {
	from := i.evalExpression(env, s.From)
	if e, ok := from.(*object.Error); ok {
		return e
	}
	to := i.evalExpression(env, s.To)
	if e, ok := to.(*object.Error); ok {
		return e
	}
	step := object.Value(&object.Integer{Value: 1})
	if s.Step != nil {
		step = i.evalExpression(env, s.Step)
		if e, ok := step.(*object.Error); ok {
			return e
		}
	}

	toF, ok := asFloat(to)
	if !ok {
		return ierrors.TypeMismatch(to.Type(), "TO", to.Type())
	}
	stepF, ok := asFloat(step)
	if !ok {
		return ierrors.TypeMismatch(step.Type(), "STEP", step.Type())
	}

	name := s.Iterator.Value
	isInt := sigilType(name) != object.STRING && sigilType(name) == object.INTEGER
	env.Set(name, coerceForAssign(sigilType(name), from))

	i.forStack.push(forFrame{
		iterator:  name,
		limit:     toF,
		step:      stepF,
		isInteger: isInt,
		bodyStart: s.Next(),
	})
	return nil
}

// execNext processes every iterator named on the NEXT statement in order,
// equivalent to a sequence of single-iterator NEXTs (§4.5 "for each named
// iterator"): it finishes (and drops) each loop whose trip count is
// exhausted before moving to the next name, stopping as soon as one loop
// still has iterations left and jumping back into its body. A bare NEXT
// (no names) closes only the innermost loop.
func (i *Interpreter) execNext(env *Environment, s *ast.NextStatement) (ast.Statement, bool, *object.Error) {
	names := []string{""}
	if len(s.Iterators) > 0 {
		names = make([]string, len(s.Iterators))
		for n, ident := range s.Iterators {
			names[n] = ident.Value
		}
	}

	for _, name := range names {
		idx := i.forStack.findFromTop(name)
		if idx < 0 {
			return nil, false, ierrors.New(ierrors.MsgNextWithoutFor, name)
		}
		frame := i.forStack.frames[idx]

		cur, ok := env.Get(frame.iterator)
		if !ok {
			return nil, false, ierrors.UndefinedVariable(frame.iterator)
		}
		curF, _ := asFloat(cur)
		nextF := curF + frame.step

		done := (frame.step >= 0 && nextF > frame.limit) || (frame.step < 0 && nextF < frame.limit)
		if done {
			i.forStack.popThrough(idx)
			continue
		}

		var nv object.Value
		if frame.isInteger {
			nv = &object.Integer{Value: int64(nextF)}
		} else {
			nv = &object.Float{Value: nextF}
		}
		env.Set(frame.iterator, nv)
		return frame.bodyStart, false, nil
	}
	return s.Next(), false, nil
}

func (i *Interpreter) execOn(env *Environment, s *ast.OnStatement) (ast.Statement, bool, *object.Error) {
	v := i.evalExpression(env, s.Expr)
	if e, ok := v.(*object.Error); ok {
		return nil, false, e
	}
	f, ok := asFloat(v)
	if !ok {
		return nil, false, ierrors.TypeMismatch(v.Type(), "ON selector", v.Type())
	}
	n := int(math.Floor(f))
	if n < 1 || n > len(s.Targets) {
		// An out-of-range selector falls through to the next statement
		// rather than erroring, matching common ON...GOTO/GOSUB dialects.
		return s.Next(), false, nil
	}
	line := s.Targets[n-1]
	target, ok := i.Program.EntryAt(line)
	if !ok {
		return nil, false, ierrors.UndefinedLine(line)
	}
	if s.IsGosub {
		i.gosub.push(s.Next())
	}
	return target, false, nil
}

func (i *Interpreter) execRead(env *Environment, s *ast.ReadStatement) *object.Error {
	for _, t := range s.Targets {
		v, ok := i.data.next()
		if !ok {
			return ierrors.New(ierrors.MsgOutOfData)
		}
		if e := i.assign(env, t, v); e != nil {
			return e
		}
	}
	return nil
}

func (i *Interpreter) execDim(env *Environment, s *ast.DimStatement) *object.Error {
	for _, decl := range s.Decls {
		dims := make([]int, len(decl.Dims))
		for idx, expr := range decl.Dims {
			v := i.evalExpression(env, expr)
			if e, ok := v.(*object.Error); ok {
				return e
			}
			n, ok := v.(*object.Integer)
			if !ok {
				f, ok := v.(*object.Float)
				if !ok || f.Value != math.Trunc(f.Value) {
					return ierrors.New(ierrors.MsgBadArrayExtent, v.Type())
				}
				dims[idx] = int(f.Value) + 1
				continue
			}
			if n.Value < 0 {
				return ierrors.New(ierrors.MsgBadArrayExtent, v.String())
			}
			dims[idx] = int(n.Value) + 1
		}
		i.Arrays[decl.Name.Value] = object.NewArray(sigilType(decl.Name.Value), dims)
	}
	return nil
}

func (i *Interpreter) execList(ctx context.Context, env *Environment, s *ast.ListStatement) *object.Error {
	var start, end *int
	if s.Start != nil {
		v := i.evalExpression(env, s.Start)
		if e, ok := v.(*object.Error); ok {
			return e
		}
		f, _ := asFloat(v)
		n := int(f)
		start = &n
	}
	if s.End != nil {
		v := i.evalExpression(env, s.End)
		if e, ok := v.(*object.Error); ok {
			return e
		}
		f, _ := asFloat(v)
		n := int(f)
		end = &n
	}
	text := i.Program.Render(start, end)
	if err := i.Host.List(ctx, text); err != nil {
		return ierrors.New("list failed: %s", err)
	}
	return nil
}

func (i *Interpreter) execLoad(ctx context.Context, env *Environment, s *ast.LoadStatement) *object.Error {
	v := i.evalExpression(env, s.Filename)
	if e, ok := v.(*object.Error); ok {
		return e
	}
	fname, ok := v.(*object.String)
	if !ok {
		return ierrors.TypeMismatch(v.Type(), "LOAD filename", object.STRING)
	}
	text, err := i.Host.Load(ctx, fname.Value)
	if err != nil {
		return ierrors.New("load failed: %s", err)
	}
	if e := i.LoadSource(text); e != nil {
		return ierrors.New("%s", e)
	}
	return nil
}

func (i *Interpreter) execSave(ctx context.Context, env *Environment, s *ast.SaveStatement) *object.Error {
	v := i.evalExpression(env, s.Filename)
	if e, ok := v.(*object.Error); ok {
		return e
	}
	fname, ok := v.(*object.String)
	if !ok {
		return ierrors.TypeMismatch(v.Type(), "SAVE filename", object.STRING)
	}
	if err := i.Host.Save(ctx, fname.Value, i.Program.Render(nil, nil)); err != nil {
		return ierrors.New("save failed: %s", err)
	}
	return nil
}

func (i *Interpreter) execGraphics(ctx context.Context, env *Environment, s *ast.GraphicsStatement) *object.Error {
	w := i.evalExpression(env, s.Width)
	if e, ok := w.(*object.Error); ok {
		return e
	}
	h := i.evalExpression(env, s.Height)
	if e, ok := h.(*object.Error); ok {
		return e
	}
	wf, _ := asFloat(w)
	hf, _ := asFloat(h)
	surf, err := i.Host.CreateImage(ctx, int(wf), int(hf))
	if err != nil {
		return ierrors.New("createImage failed: %s", err)
	}
	i.surface = surf
	return nil
}

func (i *Interpreter) execDraw(env *Environment, s *ast.DrawStatement) *object.Error {
	if i.surface == nil {
		return ierrors.New("no graphics surface: use GRAPHICS first")
	}
	color, e := i.evalString(env, s.Color)
	if e != nil {
		return e
	}
	x1, e := i.evalInt(env, s.X1)
	if e != nil {
		return e
	}
	y1, e := i.evalInt(env, s.Y1)
	if e != nil {
		return e
	}
	if s.X2 == nil {
		i.surface.SetPixel(x1, y1, color)
		return nil
	}
	x2, e := i.evalInt(env, s.X2)
	if e != nil {
		return e
	}
	y2, e := i.evalInt(env, s.Y2)
	if e != nil {
		return e
	}
	rasterizeLine(i.surface, x1, y1, x2, y2, color)
	return nil
}

func (i *Interpreter) execBox(env *Environment, s *ast.BoxStatement) *object.Error {
	if i.surface == nil {
		return ierrors.New("no graphics surface: use GRAPHICS first")
	}
	color, e := i.evalString(env, s.Color)
	if e != nil {
		return e
	}
	left, e := i.evalInt(env, s.Left)
	if e != nil {
		return e
	}
	top, e := i.evalInt(env, s.Top)
	if e != nil {
		return e
	}
	width, e := i.evalInt(env, s.Width)
	if e != nil {
		return e
	}
	height, e := i.evalInt(env, s.Height)
	if e != nil {
		return e
	}
	rasterizeLine(i.surface, left, top, left+width, top, color)
	rasterizeLine(i.surface, left, top+height, left+width, top+height, color)
	rasterizeLine(i.surface, left, top, left, top+height, color)
	rasterizeLine(i.surface, left+width, top, left+width, top+height, color)
	return nil
}

func (i *Interpreter) evalString(env *Environment, expr ast.Expression) (string, *object.Error) {
	v := i.evalExpression(env, expr)
	if e, ok := v.(*object.Error); ok {
		return "", e
	}
	s, ok := v.(*object.String)
	if !ok {
		return "", ierrors.TypeMismatch(v.Type(), "color", object.STRING)
	}
	return s.Value, nil
}

func (i *Interpreter) evalInt(env *Environment, expr ast.Expression) (int, *object.Error) {
	v := i.evalExpression(env, expr)
	if e, ok := v.(*object.Error); ok {
		return 0, e
	}
	f, ok := asFloat(v)
	if !ok {
		return 0, ierrors.TypeMismatch(v.Type(), "coordinate", v.Type())
	}
	return int(f), nil
}

// rasterizeLine plots a line with Bresenham's algorithm, degrading to a
// single SetPixel when the endpoints coincide.
func rasterizeLine(surf host.Surface, x1, y1, x2, y2 int, color string) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		surf.SetPixel(x, y, color)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// assign writes v into a scalar or array target, coercing to the target's
// sigil-derived element type.
func (i *Interpreter) assign(env *Environment, t ast.AssignTarget, v object.Value) *object.Error {
	if len(t.Indices) == 0 {
		coerced := coerceForAssign(sigilType(t.Name.Value), v)
		if e, ok := coerced.(*object.Error); ok {
			return e
		}
		env.Set(t.Name.Value, coerced)
		return nil
	}

	arr, ok := i.Arrays[t.Name.Value]
	if !ok {
		return ierrors.New(ierrors.MsgNotAnArray, t.Name.Value)
	}
	idx, e := i.evalIndices(env, t.Indices)
	if e != nil {
		return e
	}
	offset, ok := arr.Index(idx)
	if !ok {
		return ierrors.New(ierrors.MsgIndexOutOfBounds, idx[len(idx)-1], arr.Dims[len(arr.Dims)-1]-1)
	}
	coerced := coerceForAssign(arr.ElemType, v)
	if e, ok := coerced.(*object.Error); ok {
		return e
	}
	arr.Data[offset] = coerced
	return nil
}

func (i *Interpreter) evalIndices(env *Environment, exprs []ast.Expression) ([]int, *object.Error) {
	idx := make([]int, len(exprs))
	for k, expr := range exprs {
		v := i.evalExpression(env, expr)
		if e, ok := v.(*object.Error); ok {
			return nil, e
		}
		f, ok := asFloat(v)
		if !ok {
			return nil, ierrors.TypeMismatch(v.Type(), "array index", v.Type())
		}
		idx[k] = int(math.Floor(f))
	}
	return idx, nil
}
