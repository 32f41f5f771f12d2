// Package ierrors is a catalog of standardized runtime error messages,
// mirroring the message-catalog pattern used for diagnostics elsewhere in
// the teacher's interpreter: one place that owns wording, so the evaluator
// and builtins never hand-format ad hoc strings.
package ierrors

import (
	"fmt"

	"github.com/basiclang/gobasic/internal/object"
)

const (
	MsgTypeMismatch       = "type mismatch: %s %s %s"
	MsgUnknownOperator    = "unknown operator: %s %s %s"
	MsgDivisionByZero     = "division by zero"
	MsgUndefinedVariable  = "undefined variable: %s"
	MsgUndefinedLine      = "undefined line number: %d"
	MsgUndefinedFunction  = "undefined function: %s"
	MsgWrongArgCount      = "wrong number of arguments: expected %d, got %d"
	MsgIndexOutOfBounds   = "subscript out of range: %d (bounds are 0..%d)"
	MsgWrongDimCount      = "wrong number of array subscripts: expected %d, got %d"
	MsgNotAnArray         = "%s is not an array"
	MsgNextWithoutFor     = "NEXT without matching FOR: %s"
	MsgReturnWithoutGosub = "RETURN without GOSUB"
	MsgOutOfData          = "out of DATA"
	MsgDimRedeclared      = "array already dimensioned: %s"
	MsgUndefinedDefFn     = "undefined function: FN %s"
	MsgInvalidDataValue   = "invalid DATA value for %s: %q"
	MsgContinueWithoutRun = "CONT without a suspended program"
	MsgBadArrayExtent     = "array dimension must be a non-negative integer, got %s"
)

// New builds an *object.Error from a catalog message template.
func New(format string, args ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}

// TypeMismatch reports a binary operation across incompatible value kinds.
func TypeMismatch(leftType object.Type, op string, rightType object.Type) *object.Error {
	return New(MsgTypeMismatch, leftType, op, rightType)
}

// UnknownOperator reports an operator with no defined meaning for the given
// operand kinds (as opposed to a type mismatch between otherwise-valid
// operands).
func UnknownOperator(leftType object.Type, op string, rightType object.Type) *object.Error {
	return New(MsgUnknownOperator, leftType, op, rightType)
}

func DivisionByZero() *object.Error { return New(MsgDivisionByZero) }

func UndefinedVariable(name string) *object.Error { return New(MsgUndefinedVariable, name) }

func UndefinedLine(n int) *object.Error { return New(MsgUndefinedLine, n) }

func UndefinedFunction(name string) *object.Error { return New(MsgUndefinedFunction, name) }

func WrongArgCount(expected, got int) *object.Error {
	return New(MsgWrongArgCount, expected, got)
}
