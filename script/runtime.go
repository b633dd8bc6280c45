// Package script exposes a Store to tengo scripts. Scripts see a global
// immutable map named props:
//
//	speed := props.get("ice", "SpeedMultiplier")
//	props.set_list("IceTiles", "Friction", 0.1, true)
//
// Tiles are addressed by name. A trailing boolean argument selects strict
// mode for the call; it defaults to false.
package script

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/tileprops/store"
	"github.com/milk9111/tileprops/tiles"
)

const propsVar = "props"

// Runtime is a compiled script bound to a store.
type Runtime struct {
	compiled *tengo.Compiled
	store    *store.Store
	reg      *tiles.Registry
}

// Compile compiles src against s. Tile names are looked up in reg when it is
// non-nil so scripts hit the identity pass of tile resolution.
func Compile(src []byte, s *store.Store, reg *tiles.Registry) (*Runtime, error) {
	if s == nil {
		return nil, fmt.Errorf("script: nil store")
	}
	sc := tengo.NewScript(src)
	sc.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := sc.Add(propsVar, map[string]any{}); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	compiled, err := sc.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Runtime{compiled: compiled, store: s, reg: reg}, nil
}

// CompileFile reads and compiles the script at path.
func CompileFile(path string, s *store.Store, reg *tiles.Registry) (*Runtime, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	return Compile(src, s, reg)
}

// Run executes the script once.
func (rt *Runtime) Run(ctx context.Context) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("script: nil runtime")
	}
	if err := rt.compiled.Set(propsVar, rt.bindings()); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	if err := rt.compiled.RunContext(ctx); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

// Get returns the Go value of a script global after Run, or nil when it is
// not defined.
func (rt *Runtime) Get(name string) any {
	if rt == nil || rt.compiled == nil || !rt.compiled.IsDefined(name) {
		return nil
	}
	return objectToAny(rt.compiled.Get(name).Object())
}

func (rt *Runtime) tile(obj tengo.Object) tiles.Tile {
	name := strings.TrimSpace(objectAsString(obj))
	if name == "" {
		return nil
	}
	if rt.reg != nil {
		if ref, ok := rt.reg.Lookup(name); ok {
			return ref
		}
	}
	return &tiles.Ref{Name: name}
}

// strictArg reports whether args[i] exists and is truthy.
func strictArg(args []tengo.Object, i int) bool {
	return len(args) > i && !args[i].IsFalsy()
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
