package interp

import (
	"math"
	"strings"

	"github.com/basiclang/gobasic/internal/ierrors"
	"github.com/basiclang/gobasic/internal/object"
)

// sigilType derives a name's element type from its trailing sigil (§3).
func sigilType(name string) object.Type {
	if name == "" {
		return object.FLOAT
	}
	switch name[len(name)-1] {
	case '$':
		return object.STRING
	case '%':
		return object.INTEGER
	default:
		return object.FLOAT
	}
}

// coerceForAssign converts v for assignment into a target of kind
// targetType. integer<->float conversions are always allowed (integer
// assignment truncates toward zero); any other kind mismatch is an error.
func coerceForAssign(targetType object.Type, v object.Value) object.Value {
	switch targetType {
	case object.STRING:
		if s, ok := v.(*object.String); ok {
			return s
		}
		return ierrors.TypeMismatch(v.Type(), "assignment to", object.STRING)
	case object.INTEGER:
		switch n := v.(type) {
		case *object.Integer:
			return n
		case *object.Float:
			return &object.Integer{Value: int64(math.Trunc(n.Value))}
		default:
			return ierrors.TypeMismatch(v.Type(), "assignment to", object.INTEGER)
		}
	case object.FLOAT:
		switch n := v.(type) {
		case *object.Float:
			return n
		case *object.Integer:
			return &object.Float{Value: float64(n.Value)}
		default:
			return ierrors.TypeMismatch(v.Type(), "assignment to", object.FLOAT)
		}
	default:
		return v
	}
}

func asFloat(v object.Value) (float64, bool) {
	switch n := v.(type) {
	case *object.Integer:
		return float64(n.Value), true
	case *object.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

func bothInteger(a, b object.Value) bool {
	_, ok1 := a.(*object.Integer)
	_, ok2 := b.(*object.Integer)
	return ok1 && ok2
}

// boolToInt renders b as the string-equality truth convention (1/0), kept
// distinct from the numeric -1/0 convention per §4.3's noted asymmetry.
func boolToInt(b bool) *object.Integer {
	if b {
		return &object.Integer{Value: 1}
	}
	return &object.Integer{Value: 0}
}

// boolToBasic renders b as BASIC's numeric true/false (-1/0): condition-context
// AND/OR/XOR/NOT and numeric comparisons all use this polarity.
func boolToBasic(b bool) *object.Integer {
	if b {
		return &object.Integer{Value: -1}
	}
	return &object.Integer{Value: 0}
}

// evalInfix applies a binary operator to two already-evaluated operands.
// AND/OR/XOR evaluate as logical shorthand (yielding a boolean integer) when
// inCondition is set, and as bitwise integer operators otherwise (§4.3).
func evalInfix(op string, left, right object.Value, inCondition bool) object.Value {
	if object.IsError(left) {
		return left
	}
	if object.IsError(right) {
		return right
	}

	switch op {
	case "AND", "OR", "XOR":
		if inCondition {
			return evalLogical(op, left, right)
		}
		return evalBitwise(op, left, right)
	case "=", "<>", "<", ">", "<=", ">=":
		return evalComparison(op, left, right)
	}

	ls, lIsStr := left.(*object.String)
	rs, rIsStr := right.(*object.String)
	if lIsStr || rIsStr {
		if op == "+" && lIsStr && rIsStr {
			return &object.String{Value: ls.Value + rs.Value}
		}
		return ierrors.TypeMismatch(left.Type(), op, right.Type())
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return ierrors.TypeMismatch(left.Type(), op, right.Type())
	}

	integer := bothInteger(left, right)

	switch op {
	case "+":
		if integer {
			return &object.Integer{Value: left.(*object.Integer).Value + right.(*object.Integer).Value}
		}
		return &object.Float{Value: lf + rf}
	case "-":
		if integer {
			return &object.Integer{Value: left.(*object.Integer).Value - right.(*object.Integer).Value}
		}
		return &object.Float{Value: lf - rf}
	case "*":
		if integer {
			return &object.Integer{Value: left.(*object.Integer).Value * right.(*object.Integer).Value}
		}
		return &object.Float{Value: lf * rf}
	case "/":
		if rf == 0 {
			return ierrors.DivisionByZero()
		}
		return &object.Float{Value: lf / rf}
	case "^":
		return &object.Float{Value: math.Pow(lf, rf)}
	case "MOD":
		if integer {
			ri := right.(*object.Integer).Value
			if ri == 0 {
				return ierrors.DivisionByZero()
			}
			return &object.Integer{Value: left.(*object.Integer).Value % ri}
		}
		if rf == 0 {
			return ierrors.DivisionByZero()
		}
		return &object.Float{Value: math.Mod(lf, rf)}
	default:
		return ierrors.UnknownOperator(left.Type(), op, right.Type())
	}
}

func evalLogical(op string, left, right object.Value) object.Value {
	l, r := object.IsTruthy(left), object.IsTruthy(right)
	switch op {
	case "AND":
		return boolToBasic(l && r)
	case "OR":
		return boolToBasic(l || r)
	case "XOR":
		return boolToBasic(l != r)
	}
	return ierrors.UnknownOperator(left.Type(), op, right.Type())
}

// evalBitwise applies AND/OR/XOR as integer bitwise operators (§4.3's
// "otherwise behave as bitwise integer operations"). Operands are truncated
// to integers first, per the same integer-vs-float distinction the rest of
// the evaluator uses.
func evalBitwise(op string, left, right object.Value) object.Value {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return ierrors.TypeMismatch(left.Type(), op, right.Type())
	}
	li := int64(math.Trunc(lf))
	ri := int64(math.Trunc(rf))
	switch op {
	case "AND":
		return &object.Integer{Value: li & ri}
	case "OR":
		return &object.Integer{Value: li | ri}
	case "XOR":
		return &object.Integer{Value: li ^ ri}
	}
	return ierrors.UnknownOperator(left.Type(), op, right.Type())
}

func evalComparison(op string, left, right object.Value) object.Value {
	ls, lIsStr := left.(*object.String)
	rs, rIsStr := right.(*object.String)
	if lIsStr && rIsStr {
		return boolToInt(compareStrings(op, ls.Value, rs.Value))
	}
	if lIsStr != rIsStr {
		return ierrors.TypeMismatch(left.Type(), op, right.Type())
	}

	lf, _ := asFloat(left)
	rf, _ := asFloat(right)
	switch op {
	case "=":
		return boolToBasic(lf == rf)
	case "<>":
		return boolToBasic(lf != rf)
	case "<":
		return boolToBasic(lf < rf)
	case ">":
		return boolToBasic(lf > rf)
	case "<=":
		return boolToBasic(lf <= rf)
	case ">=":
		return boolToBasic(lf >= rf)
	}
	return ierrors.UnknownOperator(left.Type(), op, right.Type())
}

func compareStrings(op, a, b string) bool {
	switch op {
	case "=":
		return a == b
	case "<>":
		return a != b
	case "<":
		return strings.Compare(a, b) < 0
	case ">":
		return strings.Compare(a, b) > 0
	case "<=":
		return strings.Compare(a, b) <= 0
	case ">=":
		return strings.Compare(a, b) >= 0
	}
	return false
}

// evalPrefix applies a unary operator to an already-evaluated operand. NOT
// flips truthiness in a condition context and bitwise-complements the
// integer value otherwise (§4.3).
func evalPrefix(op string, right object.Value, inCondition bool) object.Value {
	if object.IsError(right) {
		return right
	}
	switch op {
	case "-":
		switch n := right.(type) {
		case *object.Integer:
			return &object.Integer{Value: -n.Value}
		case *object.Float:
			return &object.Float{Value: -n.Value}
		default:
			return ierrors.TypeMismatch(right.Type(), "-", right.Type())
		}
	case "NOT":
		if inCondition {
			return boolToBasic(!object.IsTruthy(right))
		}
		f, ok := asFloat(right)
		if !ok {
			return ierrors.TypeMismatch(right.Type(), "NOT", right.Type())
		}
		return &object.Integer{Value: ^int64(math.Trunc(f))}
	default:
		return ierrors.UnknownOperator(object.NULL.Type(), op, right.Type())
	}
}
