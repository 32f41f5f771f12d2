package interp

import (
	"testing"

	"github.com/basiclang/gobasic/internal/object"
)

func TestEnvironmentGetSet(t *testing.T) {
	env := NewEnvironment()
	env.Set("A", &object.Integer{Value: 1})
	v, ok := env.Get("A")
	if !ok || v.(*object.Integer).Value != 1 {
		t.Fatalf("Get(A) = %v, %v", v, ok)
	}
	if _, ok := env.Get("B"); ok {
		t.Fatalf("Get(B) should miss")
	}
}

func TestEnclosedEnvironmentOuterLookup(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("X", &object.Integer{Value: 10})
	inner := NewEnclosedEnvironment(outer)

	v, ok := inner.Get("X")
	if !ok || v.(*object.Integer).Value != 10 {
		t.Fatalf("inner should see outer's X, got %v, %v", v, ok)
	}

	inner.Set("X", &object.Integer{Value: 99})
	innerV, _ := inner.Get("X")
	outerV, _ := outer.Get("X")
	if innerV.(*object.Integer).Value != 99 {
		t.Errorf("inner write should land in inner scope")
	}
	if outerV.(*object.Integer).Value != 10 {
		t.Errorf("writing in inner scope must not mutate outer")
	}
}

func TestEnvironmentClear(t *testing.T) {
	env := NewEnvironment()
	env.Set("A", &object.Integer{Value: 1})
	env.Clear()
	if _, ok := env.Get("A"); ok {
		t.Fatalf("Clear should remove all bindings")
	}
}
