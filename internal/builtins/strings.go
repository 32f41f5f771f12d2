package builtins

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/basiclang/gobasic/internal/ierrors"
	"github.com/basiclang/gobasic/internal/object"
)

func strArg(v object.Value) (string, *object.Error) {
	s, ok := v.(*object.String)
	if !ok {
		return "", ierrors.TypeMismatch(v.Type(), "string argument", v.Type())
	}
	return s.Value, nil
}

func intArg(v object.Value) (int64, *object.Error) {
	switch n := v.(type) {
	case *object.Integer:
		return n.Value, nil
	case *object.Float:
		return int64(n.Value), nil
	default:
		return 0, ierrors.TypeMismatch(v.Type(), "integer argument", v.Type())
	}
}

// normalized applies Unicode NFC normalization before measuring or slicing
// a string, so composed and decomposed spellings of the same text agree on
// LEN/ASC/MID$ results.
func normalized(s string) string {
	return norm.NFC.String(s)
}

func asc(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	s, err := strArg(args[0])
	if err != nil {
		return err
	}
	s = normalized(s)
	runes := []rune(s)
	if len(runes) == 0 {
		return ierrors.New("ASC of empty string")
	}
	return &object.Integer{Value: int64(runes[0])}
}

func chrDollar(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	n, err := intArg(args[0])
	if err != nil {
		return err
	}
	return &object.String{Value: string(rune(n))}
}

func length(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	s, err := strArg(args[0])
	if err != nil {
		return err
	}
	return &object.Integer{Value: int64(len([]rune(normalized(s))))}
}

func leftDollar(args []object.Value) object.Value {
	if len(args) != 2 {
		return ierrors.WrongArgCount(2, len(args))
	}
	s, err := strArg(args[0])
	if err != nil {
		return err
	}
	n, err := intArg(args[1])
	if err != nil {
		return err
	}
	runes := []rune(s)
	if n < 0 {
		n = 0
	}
	if n > int64(len(runes)) {
		n = int64(len(runes))
	}
	return &object.String{Value: string(runes[:n])}
}

func rightDollar(args []object.Value) object.Value {
	if len(args) != 2 {
		return ierrors.WrongArgCount(2, len(args))
	}
	s, err := strArg(args[0])
	if err != nil {
		return err
	}
	n, err := intArg(args[1])
	if err != nil {
		return err
	}
	runes := []rune(s)
	if n < 0 {
		n = 0
	}
	if n > int64(len(runes)) {
		n = int64(len(runes))
	}
	return &object.String{Value: string(runes[int64(len(runes))-n:])}
}

func midDollar(args []object.Value) object.Value {
	if len(args) != 2 && len(args) != 3 {
		return ierrors.WrongArgCount(3, len(args))
	}
	s, err := strArg(args[0])
	if err != nil {
		return err
	}
	start, err := intArg(args[1])
	if err != nil {
		return err
	}
	runes := []rune(normalized(s))
	// MID$ positions are 1-based.
	idx := start - 1
	if idx < 0 {
		idx = 0
	}
	if idx > int64(len(runes)) {
		idx = int64(len(runes))
	}
	length := int64(len(runes)) - idx
	if len(args) == 3 {
		n, err := intArg(args[2])
		if err != nil {
			return err
		}
		if n < length {
			length = n
		}
		if length < 0 {
			length = 0
		}
	}
	return &object.String{Value: string(runes[idx : idx+length])}
}

func strDollar(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	switch n := args[0].(type) {
	case *object.Integer:
		return &object.String{Value: strconv.FormatInt(n.Value, 10)}
	case *object.Float:
		return &object.String{Value: strconv.FormatFloat(n.Value, 'g', -1, 64)}
	default:
		return ierrors.TypeMismatch(args[0].Type(), "STR$ argument", args[0].Type())
	}
}

func val(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	s, err := strArg(args[0])
	if err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if f, perr := strconv.ParseFloat(s, 64); perr == nil {
		return &object.Float{Value: f}
	}
	return &object.Float{Value: 0}
}

func spcDollar(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	n, err := intArg(args[0])
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	return &object.String{Value: strings.Repeat(" ", int(n))}
}

func tabDollar(args []object.Value) object.Value {
	// PRINT has no running column counter (§4.5 concatenates args with no
	// separator), so TAB(n) degrades to SPC(n): n spaces from wherever
	// output currently stands.
	return spcDollar(args)
}

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

func ucaseDollar(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	s, err := strArg(args[0])
	if err != nil {
		return err
	}
	return &object.String{Value: upperCaser.String(s)}
}

func lcaseDollar(args []object.Value) object.Value {
	if len(args) != 1 {
		return ierrors.WrongArgCount(1, len(args))
	}
	s, err := strArg(args[0])
	if err != nil {
		return err
	}
	return &object.String{Value: lowerCaser.String(s)}
}

// RegisterStringFunctions wires the string builtin library.
func RegisterStringFunctions(r *Registry) {
	r.Register("ASC", asc, CategoryString)
	r.Register("CHR$", chrDollar, CategoryString)
	r.Register("LEN", length, CategoryString)
	r.Register("LEFT$", leftDollar, CategoryString)
	r.Register("RIGHT$", rightDollar, CategoryString)
	r.Register("MID$", midDollar, CategoryString)
	r.Register("STR$", strDollar, CategoryString)
	r.Register("VAL", val, CategoryString)
	r.Register("SPC", spcDollar, CategoryString)
	r.Register("TAB", tabDollar, CategoryString)
	r.Register("UCASE$", ucaseDollar, CategoryString)
	r.Register("LCASE$", lcaseDollar, CategoryString)
}
