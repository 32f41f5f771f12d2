package interp

import (
	"testing"

	"github.com/basiclang/gobasic/internal/object"
)

func TestEvalInfixIntegerPreserving(t *testing.T) {
	sum := evalInfix("+", &object.Integer{Value: 2}, &object.Integer{Value: 3}, false)
	if _, ok := sum.(*object.Integer); !ok {
		t.Fatalf("int+int should stay Integer, got %T", sum)
	}
	if sum.String() != "5" {
		t.Errorf("2+3 = %s, want 5", sum.String())
	}

	mixed := evalInfix("+", &object.Integer{Value: 2}, &object.Float{Value: 0.5}, false)
	if _, ok := mixed.(*object.Float); !ok {
		t.Fatalf("int+float should promote to Float, got %T", mixed)
	}
}

func TestEvalInfixDivisionAlwaysFloat(t *testing.T) {
	got := evalInfix("/", &object.Integer{Value: 4}, &object.Integer{Value: 2}, false)
	if _, ok := got.(*object.Float); !ok {
		t.Fatalf("division should always produce Float, got %T", got)
	}
}

func TestEvalInfixDivisionByZero(t *testing.T) {
	got := evalInfix("/", &object.Integer{Value: 1}, &object.Integer{Value: 0}, false)
	if !object.IsError(got) {
		t.Fatalf("expected division-by-zero error, got %v", got)
	}
}

func TestEvalInfixStringConcat(t *testing.T) {
	got := evalInfix("+", &object.String{Value: "AB"}, &object.String{Value: "CD"}, false)
	if got.String() != "ABCD" {
		t.Errorf("string concat = %s, want ABCD", got.String())
	}
}

func TestEvalInfixStringTypeMismatch(t *testing.T) {
	got := evalInfix("-", &object.String{Value: "A"}, &object.String{Value: "B"}, false)
	if !object.IsError(got) {
		t.Fatalf("expected a type mismatch error, got %v", got)
	}
}

func TestEvalComparisonStringEquality(t *testing.T) {
	got := evalInfix("=", &object.String{Value: "A"}, &object.String{Value: "A"}, false)
	if got.String() != "1" {
		t.Errorf("\"A\"=\"A\" = %s, want 1", got.String())
	}
	got = evalInfix("=", &object.String{Value: "A"}, &object.String{Value: "B"}, false)
	if got.String() != "0" {
		t.Errorf("\"A\"=\"B\" = %s, want 0", got.String())
	}
}

func TestEvalComparisonNumericPolarity(t *testing.T) {
	one := &object.Integer{Value: 1}
	two := &object.Integer{Value: 2}
	if got := evalInfix("<", one, two, false); got.String() != "-1" {
		t.Errorf("1<2 = %s, want -1", got.String())
	}
	if got := evalInfix("<", two, one, false); got.String() != "0" {
		t.Errorf("2<1 = %s, want 0", got.String())
	}
	if got := evalInfix("=", one, one, false); got.String() != "-1" {
		t.Errorf("1=1 = %s, want -1", got.String())
	}
}

func TestEvalLogicalOperatorsInCondition(t *testing.T) {
	one := &object.Integer{Value: 1}
	zero := &object.Integer{Value: 0}
	if evalInfix("AND", one, one, true).String() != "-1" {
		t.Error("1 AND 1 should be -1")
	}
	if evalInfix("AND", one, zero, true).String() != "0" {
		t.Error("1 AND 0 should be 0")
	}
	if evalInfix("OR", zero, one, true).String() != "-1" {
		t.Error("0 OR 1 should be -1")
	}
	if evalInfix("XOR", one, one, true).String() != "0" {
		t.Error("1 XOR 1 should be 0")
	}
}

func TestEvalBitwiseOperatorsOutsideCondition(t *testing.T) {
	six := &object.Integer{Value: 6}  // 110
	three := &object.Integer{Value: 3} // 011
	if got := evalInfix("AND", six, three, false); got.String() != "2" {
		t.Errorf("6 AND 3 = %s, want 2", got.String())
	}
	if got := evalInfix("OR", six, three, false); got.String() != "7" {
		t.Errorf("6 OR 3 = %s, want 7", got.String())
	}
	if got := evalInfix("XOR", six, three, false); got.String() != "5" {
		t.Errorf("6 XOR 3 = %s, want 5", got.String())
	}
}

func TestEvalPrefix(t *testing.T) {
	neg := evalPrefix("-", &object.Integer{Value: 5}, false)
	if neg.String() != "-5" {
		t.Errorf("-5 = %s", neg.String())
	}
	not := evalPrefix("NOT", &object.Integer{Value: 0}, true)
	if not.String() != "-1" {
		t.Errorf("NOT 0 in condition context = %s, want -1", not.String())
	}
	bitwiseNot := evalPrefix("NOT", &object.Integer{Value: 0}, false)
	if bitwiseNot.String() != "-1" {
		t.Errorf("NOT 0 outside condition context = %s, want -1 (bitwise complement)", bitwiseNot.String())
	}
}

func TestCoerceForAssignTruncatesTowardZero(t *testing.T) {
	got := coerceForAssign(object.INTEGER, &object.Float{Value: 3.9})
	n, ok := got.(*object.Integer)
	if !ok || n.Value != 3 {
		t.Fatalf("coerce 3.9 to integer = %v", got)
	}
	got = coerceForAssign(object.INTEGER, &object.Float{Value: -3.9})
	n, ok = got.(*object.Integer)
	if !ok || n.Value != -3 {
		t.Fatalf("coerce -3.9 to integer = %v", got)
	}
}
