package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/prefabs"
)

const wanderDispatchScript = `
__next := choose(__current)
`

// ScriptLoader reads a wander script by name.
type ScriptLoader func(name string) ([]byte, error)

// WanderScripts compiles and caches tengo scripts exposing
// choose(current) -> direction. The result may be a direction name
// ("up", "down", "left", "right") or its index.
type WanderScripts struct {
	load  ScriptLoader
	cache map[string]*tengo.Compiled
}

func NewWanderScripts(load ScriptLoader) *WanderScripts {
	if load == nil {
		load = prefabs.LoadScript
	}
	return &WanderScripts{load: load, cache: map[string]*tengo.Compiled{}}
}

// Reset drops every compiled script so the next call reloads from disk.
func (s *WanderScripts) Reset() {
	if s == nil {
		return
	}
	clear(s.cache)
}

func (s *WanderScripts) Choose(name string, current component.Direction) (component.Direction, error) {
	compiled, err := s.compiled(name)
	if err != nil {
		return current, err
	}
	if err := compiled.Set("__current", current.String()); err != nil {
		return current, fmt.Errorf("wander script %s: %w", name, err)
	}
	if err := compiled.Run(); err != nil {
		return current, fmt.Errorf("wander script %s: run: %w", name, err)
	}

	v := compiled.Get("__next")
	switch v.ValueType() {
	case "string":
		if d, ok := component.ParseDirection(strings.TrimSpace(v.String())); ok {
			return d, nil
		}
	case "int":
		if i := v.Int(); i >= 0 && i < len(component.Directions) {
			return component.Directions[i], nil
		}
	}
	return current, fmt.Errorf("wander script %s: invalid direction %s", name, v.String())
}

func (s *WanderScripts) compiled(name string) (*tengo.Compiled, error) {
	if c, ok := s.cache[name]; ok {
		return c, nil
	}

	src, err := s.load(name)
	if err != nil {
		return nil, fmt.Errorf("wander script %s: %w", name, err)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + wanderDispatchScript))
	_ = script.Add("__current", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("wander script %s: compile: %w", name, err)
	}
	s.cache[name] = compiled
	return compiled, nil
}
