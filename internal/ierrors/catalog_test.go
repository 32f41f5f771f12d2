package ierrors

import (
	"testing"

	"github.com/basiclang/gobasic/internal/object"
)

func TestTypeMismatch(t *testing.T) {
	err := TypeMismatch(object.STRING, "+", object.INTEGER)
	want := "type mismatch: STRING + INTEGER"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestUnknownOperator(t *testing.T) {
	err := UnknownOperator(object.STRING, "-", object.STRING)
	want := "unknown operator: STRING - STRING"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestDivisionByZero(t *testing.T) {
	if got := DivisionByZero().Message; got != "division by zero" {
		t.Errorf("Message = %q", got)
	}
}

func TestUndefinedVariable(t *testing.T) {
	if got := UndefinedVariable("X").Message; got != "undefined variable: X" {
		t.Errorf("Message = %q", got)
	}
}

func TestUndefinedLine(t *testing.T) {
	if got := UndefinedLine(999).Message; got != "undefined line number: 999" {
		t.Errorf("Message = %q", got)
	}
}

func TestUndefinedFunction(t *testing.T) {
	if got := UndefinedFunction("FOO").Message; got != "undefined function: FOO" {
		t.Errorf("Message = %q", got)
	}
}

func TestWrongArgCount(t *testing.T) {
	err := WrongArgCount(2, 1)
	want := "wrong number of arguments: expected 2, got 1"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

func TestNewIsAGenericCatalogLookup(t *testing.T) {
	err := New(MsgNextWithoutFor, "I")
	want := "NEXT without matching FOR: I"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}

	err = New(MsgOutOfData)
	if err.Message != "out of DATA" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestErrorValueSatisfiesValueInterface(t *testing.T) {
	var v object.Value = DivisionByZero()
	if v.Type() != object.ERROR {
		t.Errorf("Type() = %s, want ERROR", v.Type())
	}
}
