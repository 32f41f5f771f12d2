package builtins

import (
	"math"
	"math/rand"

	"github.com/basiclang/gobasic/internal/ierrors"
	"github.com/basiclang/gobasic/internal/object"
)

// numArg coerces a single numeric argument to float64, whatever its
// integer/float kind.
func numArg(v object.Value) (float64, *object.Error) {
	switch n := v.(type) {
	case *object.Integer:
		return float64(n.Value), nil
	case *object.Float:
		return n.Value, nil
	default:
		return 0, ierrors.TypeMismatch(v.Type(), "numeric argument", v.Type())
	}
}

// unaryFloat builds a Func that takes one numeric argument and returns a
// Float computed by f; a non-finite result reports ILLEGAL QUANTITY, per
// the transcendental functions' contract.
func unaryFloat(f func(float64) float64) Func {
	return func(args []object.Value) object.Value {
		if len(args) != 1 {
			return ierrors.WrongArgCount(1, len(args))
		}
		x, err := numArg(args[0])
		if err != nil {
			return err
		}
		result := f(x)
		if math.IsNaN(result) || math.IsInf(result, 0) {
			return ierrors.New("ILLEGAL QUANTITY")
		}
		return &object.Float{Value: result}
	}
}

func abs(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	x, err := numArg(args[0])
	if err != nil {
		return err
	}
	return &object.Float{Value: math.Abs(x)}
}

func intFn(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	x, err := numArg(args[0])
	if err != nil {
		return err
	}
	return &object.Integer{Value: int64(math.Floor(x))}
}

func sgn(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	x, err := numArg(args[0])
	if err != nil {
		return err
	}
	switch {
	case x > 0:
		return &object.Integer{Value: 1}
	case x < 0:
		return &object.Integer{Value: -1}
	default:
		return &object.Integer{Value: 0}
	}
}

func rnd(args []object.Value) object.Value {
	if len(args) > 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	// RND (no argument, or a positive argument) returns a uniform value
	// in [0, 1); a zero or negative argument is accepted for dialect
	// compatibility and behaves the same way.
	return &object.Float{Value: rand.Float64()}
}

func sqr(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	x, err := numArg(args[0])
	if err != nil {
		return err
	}
	if x < 0 {
		return ierrors.New("ILLEGAL QUANTITY")
	}
	return &object.Float{Value: math.Sqrt(x)}
}

// RegisterMathFunctions wires the numeric builtin library.
func RegisterMathFunctions(r *Registry) {
	r.Register("ABS", abs, CategoryMath)
	r.Register("ATN", unaryFloat(math.Atan), CategoryMath)
	r.Register("COS", unaryFloat(math.Cos), CategoryMath)
	r.Register("SIN", unaryFloat(math.Sin), CategoryMath)
	r.Register("TAN", unaryFloat(math.Tan), CategoryMath)
	r.Register("EXP", unaryFloat(math.Exp), CategoryMath)
	r.Register("LOG", unaryFloat(math.Log), CategoryMath)
	r.Register("SQR", sqr, CategoryMath)
	r.Register("INT", intFn, CategoryMath)
	r.Register("SGN", sgn, CategoryMath)
	r.Register("RND", rnd, CategoryMath)
}
