package interp

import (
	"github.com/basiclang/gobasic/internal/ast"
	"github.com/basiclang/gobasic/internal/ierrors"
	"github.com/basiclang/gobasic/internal/object"
)

// evalExpression evaluates expr in env, returning an *object.Error (never a
// Go error) on any runtime failure so callers can propagate it uniformly.
// AND/OR/NOT evaluate as bitwise integer operators outside a condition
// (§4.3); use evalCondition for an IF condition, where they are
// logical shorthand instead.
func (i *Interpreter) evalExpression(env *Environment, expr ast.Expression) object.Value {
	return i.evalExpr(env, expr, false)
}

// evalCondition evaluates expr as the top-level condition of an IF
// statement: AND/OR/NOT behave as logical operators yielding -1/0-style
// booleans instead of their bitwise counterparts (§4.3, §9 "condition
// context"). The flag is threaded through InfixExpression/PrefixExpression
// only; a nested CallExpression's own arguments are evaluated as ordinary
// (non-condition) expressions.
func (i *Interpreter) evalCondition(env *Environment, expr ast.Expression) object.Value {
	return i.evalExpr(env, expr, true)
}

func (i *Interpreter) evalExpr(env *Environment, expr ast.Expression, inCondition bool) object.Value {
	switch e := expr.(type) {

	case *ast.IntegerLiteral:
		return &object.Integer{Value: e.Value}

	case *ast.FloatLiteral:
		return &object.Float{Value: e.Value}

	case *ast.StringLiteral:
		return &object.String{Value: e.Value}

	case *ast.Identifier:
		return i.evalIdentifier(env, e)

	case *ast.PrefixExpression:
		right := i.evalExpr(env, e.Right, inCondition)
		return evalPrefix(e.Operator, right, inCondition)

	case *ast.InfixExpression:
		left := i.evalExpr(env, e.Left, inCondition)
		if object.IsError(left) {
			return left
		}
		right := i.evalExpr(env, e.Right, inCondition)
		return evalInfix(e.Operator, left, right, inCondition)

	case *ast.GroupedExpression:
		return i.evalExpr(env, e.Expression, inCondition)

	case *ast.CallExpression:
		return i.evalCall(env, e)

	case *ast.FNCallExpression:
		return i.evalFNCall(env, e)

	default:
		return ierrors.New("internal error: unhandled expression type %T", expr)
	}
}

// evalIdentifier looks up a scalar variable, auto-vivifying it to its
// sigil-derived zero value on first reference (§3: "an unassigned variable
// reads as the zero value of its declared kind").
func (i *Interpreter) evalIdentifier(env *Environment, id *ast.Identifier) object.Value {
	if v, ok := env.Get(id.Value); ok {
		return v
	}
	zero := object.ZeroValue(sigilType(id.Value))
	env.Set(id.Value, zero)
	return zero
}

// evalCall resolves a CallExpression's callee: a built-in function name or
// an array name. User functions are parsed as FNCallExpression instead, so
// they never reach here.
func (i *Interpreter) evalCall(env *Environment, ce *ast.CallExpression) object.Value {
	id, ok := ce.Callee.(*ast.Identifier)
	if !ok {
		return ierrors.New("internal error: call to non-identifier callee")
	}

	if arr, ok := i.Arrays[id.Value]; ok {
		return i.evalArrayIndex(env, id.Value, arr, ce.Arguments)
	}

	if fn, ok := i.Builtins.Lookup(id.Value); ok {
		args := make([]object.Value, len(ce.Arguments))
		for idx, a := range ce.Arguments {
			v := i.evalExpression(env, a)
			if object.IsError(v) {
				return v
			}
			args[idx] = v
		}
		return fn(args)
	}

	// An array read before any DIM is implicitly dimensioned with extent 10
	// per dimension (classic BASIC default): 11 cells, indices 0..10, as
	// recorded in DESIGN.md.
	if len(ce.Arguments) > 0 {
		dims := make([]int, len(ce.Arguments))
		for k := range dims {
			dims[k] = 11
		}
		arr := object.NewArray(sigilType(id.Value), dims)
		i.Arrays[id.Value] = arr
		return i.evalArrayIndex(env, id.Value, arr, ce.Arguments)
	}

	return ierrors.UndefinedFunction(id.Value)
}

func (i *Interpreter) evalArrayIndex(env *Environment, name string, arr *object.Array, argExprs []ast.Expression) object.Value {
	if len(argExprs) != len(arr.Dims) {
		return ierrors.New(ierrors.MsgWrongDimCount, len(arr.Dims), len(argExprs))
	}
	idx, errVal := i.evalIndices(env, argExprs)
	if errVal != nil {
		return errVal
	}
	offset, ok := arr.Index(idx)
	if !ok {
		return ierrors.New(ierrors.MsgIndexOutOfBounds, idx[len(idx)-1], arr.Dims[len(arr.Dims)-1]-1)
	}
	return arr.Data[offset]
}

// evalFNCall invokes a DEF FN function: a single enclosed scope binds the
// formal parameter, and the body expression is evaluated in it (§3: "at
// most one nested scope is live", since DEF FN bodies cannot recurse or
// call other FNs that themselves recurse arbitrarily deep in this dialect).
func (i *Interpreter) evalFNCall(env *Environment, fc *ast.FNCallExpression) object.Value {
	def, ok := i.UserFuncs[fc.Name.Value]
	if !ok {
		return ierrors.New(ierrors.MsgUndefinedDefFn, fc.Name.Value)
	}

	inner := NewEnclosedEnvironment(i.Global)
	if def.Param != nil {
		if fc.Arg == nil {
			return ierrors.WrongArgCount(1, 0)
		}
		argVal := i.evalExpression(env, fc.Arg)
		if object.IsError(argVal) {
			return argVal
		}
		inner.Set(def.Param.Value, coerceForAssign(sigilType(def.Param.Value), argVal))
	} else if fc.Arg != nil {
		return ierrors.WrongArgCount(0, 1)
	}

	return i.evalExpression(inner, def.Body)
}
