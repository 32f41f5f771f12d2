package builtins

import (
	"fmt"

	"github.com/basiclang/gobasic/internal/ierrors"
	"github.com/basiclang/gobasic/internal/object"
)

func clampByte(x float64) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

func rgb(args []object.Value) object.Value {
	if len(args) != 3 {
		return ierrors.WrongArgCount(3, len(args))
	}
	r, err := numArg(args[0])
	if err != nil {
		return err
	}
	g, err := numArg(args[1])
	if err != nil {
		return err
	}
	b, err := numArg(args[2])
	if err != nil {
		return err
	}
	return &object.String{
		Value: fmt.Sprintf("%02X%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b), uint8(255)),
	}
}

// RegisterGraphicsFunctions wires the graphics-surface builtin library.
func RegisterGraphicsFunctions(r *Registry) {
	r.Register("RGB", rgb, CategoryGraphics)
}
