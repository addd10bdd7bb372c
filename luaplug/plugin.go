package luaplug

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/chassis/options"
	"github.com/dshills/chassis/plugin"
)

// Plugin adapts one Lua script to the plugin hook contract.
type Plugin struct {
	name string
	path string

	state *lua.LState
	vals  *options.Values
}

// Spec describes a script-backed plugin for registration. The name is
// the plugin's registry identity; path is the script loaded at
// initialize time.
func Spec(name, path string, requires ...plugin.Spec) plugin.Spec {
	return plugin.Spec{
		Name:     name,
		New:      func() plugin.Plugin { return &Plugin{name: name, path: path} },
		Requires: requires,
	}
}

// Name returns the plugin's registry name.
func (p *Plugin) Name() string { return p.name }

// DeclareOptions implements plugin.Plugin. Scripts read options declared
// by other plugins; they declare none of their own.
func (p *Plugin) DeclareOptions(*options.Set) {}

// OnInitialize loads the script into a fresh interpreter and runs its
// on_initialize hook if defined.
func (p *Plugin) OnInitialize(vals *options.Values) error {
	p.vals = vals

	L := lua.NewState()
	L.SetGlobal("get_option", L.NewFunction(p.getOption))

	if err := L.DoFile(p.path); err != nil {
		L.Close()
		return fmt.Errorf("loading script %s: %w", p.path, err)
	}
	p.state = L

	return p.call("on_initialize")
}

// OnStartup implements plugin.Plugin.
func (p *Plugin) OnStartup() error {
	return p.call("on_startup")
}

// OnShutdown runs the script's on_shutdown hook and closes the
// interpreter.
func (p *Plugin) OnShutdown() error {
	err := p.call("on_shutdown")
	if p.state != nil {
		p.state.Close()
		p.state = nil
	}
	return err
}

// OnReload implements plugin.Reloader.
func (p *Plugin) OnReload() error {
	return p.call("on_reload")
}

// call invokes the named global function if the script defined one.
func (p *Plugin) call(hook string) error {
	if p.state == nil {
		return nil
	}
	fn := p.state.GetGlobal(hook)
	if fn == lua.LNil {
		return nil
	}
	err := p.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	})
	if err != nil {
		return fmt.Errorf("script %s: %s: %w", p.path, hook, err)
	}
	return nil
}

// getOption exposes the merged option view to Lua. Values come back as
// strings; scripts convert with tonumber as needed.
func (p *Plugin) getOption(L *lua.LState) int {
	key := L.CheckString(1)
	if p.vals == nil {
		L.Push(lua.LNil)
		return 1
	}
	val, ok := p.vals.Raw(key)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(val))
	return 1
}
