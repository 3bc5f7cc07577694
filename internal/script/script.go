// Package script runs the optional user rc script at startup. The
// script is plain Lua with two entry points into the viewer: map(keys,
// command) to rebind keys and set(option, value) for viewer options.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Env is the surface the rc script can touch.
type Env struct {
	// Map binds a key spec to a named command.
	Map func(keys, command string) error

	// Set assigns a viewer option by name.
	Set func(option, value string) error
}

// Run executes the rc script at path against the environment. Script
// errors abort execution and are returned; the viewer treats them as
// non-fatal.
func Run(path string, env Env) error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("map", L.NewFunction(func(L *lua.LState) int {
		keys := L.CheckString(1)
		cmd := L.CheckString(2)
		if err := env.Map(keys, cmd); err != nil {
			L.RaiseError("map(%q, %q): %v", keys, cmd, err)
		}
		return 0
	}))

	L.SetGlobal("set", L.NewFunction(func(L *lua.LState) int {
		option := L.CheckString(1)
		value := L.ToStringMeta(L.CheckAny(2)).String()
		if err := env.Set(option, value); err != nil {
			L.RaiseError("set(%q, %q): %v", option, value, err)
		}
		return 0
	}))

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("rc script %s: %w", path, err)
	}
	return nil
}
