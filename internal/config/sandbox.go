package config

import (
	lua "github.com/yuin/gopher-lua"
)

// sandboxedGlobals are removed from every config VM. Without them a config
// cannot run commands, touch files or load other code.
var sandboxedGlobals = []string{
	"os",
	"io",
	"debug",
	"require",
	"module",
	"package",
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"collectgarbage",
}

// newSandboxedVM creates a Lua state with only the declarative-safe
// libraries left: base functions, string, table and math.
func newSandboxedVM() *lua.LState {
	L := lua.NewState()
	for _, name := range sandboxedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}
