// Package builtins implements the native function library (ABS, SIN, LEN,
// MID$, RND, RGB, ...) available to BASIC expressions.
package builtins

import (
	"sort"
	"strings"
	"sync"

	"github.com/basiclang/gobasic/internal/object"
)

// Category groups built-in functions for discoverability (e.g. a future
// `HELP` command could list by category).
type Category string

const (
	CategoryMath     Category = "math"
	CategoryString   Category = "string"
	CategoryGraphics Category = "graphics"
)

// Func is the native implementation signature shared by every built-in.
type Func func(args []object.Value) object.Value

// FunctionInfo holds metadata about one registered built-in.
type FunctionInfo struct {
	Name     string
	Function Func
	Category Category
}

// Registry provides case-insensitive lookup of built-in functions,
// mirroring the teacher's function-library registry (name normalization,
// category bookkeeping, a package-level default instance populated on
// init).
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]*FunctionInfo
	categories map[Category][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		functions:  make(map[string]*FunctionInfo),
		categories: make(map[Category][]string),
	}
}

// Register adds fn under name (case-insensitive lookup key); re-registering
// the same name replaces the function without duplicating its category
// entry.
func (r *Registry) Register(name string, fn Func, category Category) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToUpper(name)
	if _, exists := r.functions[key]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.functions[key] = &FunctionInfo{Name: name, Function: fn, Category: category}
}

// Lookup finds a built-in by name (case-insensitive, sigil included since
// BASIC built-ins like MID$ and CHR$ carry a sigil as part of their name).
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.functions[strings.ToUpper(name)]
	if !ok {
		return nil, false
	}
	return info.Function, true
}

// AllFunctions returns every registered function, sorted by name.
func (r *Registry) AllFunctions() []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*FunctionInfo, 0, len(r.functions))
	for _, info := range r.functions {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// DefaultRegistry is populated on package init with every standard
// built-in function.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry()
	RegisterAll(DefaultRegistry)
}

// RegisterAll wires every built-in category into r.
func RegisterAll(r *Registry) {
	RegisterMathFunctions(r)
	RegisterStringFunctions(r)
	RegisterGraphicsFunctions(r)
}
