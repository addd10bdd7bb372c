package app

import (
	"fmt"

	"github.com/dshills/chassis/plugin"
)

// Register adds the plugin described by spec and, transitively, every
// plugin it requires. Registration is idempotent by name: a name already
// present returns the existing instance untouched. The new plugin's
// DeclareOptions runs immediately so its options exist before ParseConfig.
//
// Register panics on a malformed spec (empty name or nil factory); those
// are authoring defects, not runtime conditions.
func (a *App) Register(spec plugin.Spec) plugin.Plugin {
	if spec.Name == "" {
		panic("app: plugin spec with empty name")
	}
	if spec.New == nil {
		panic(fmt.Sprintf("app: plugin spec %q with nil factory", spec.Name))
	}

	if h, ok := a.hosts[spec.Name]; ok {
		return h.plugin
	}

	p := spec.New()
	h := &host{
		name:   spec.Name,
		plugin: p,
		state:  plugin.StateRegistered,
	}
	for _, dep := range spec.Requires {
		h.requires = append(h.requires, dep.Name)
	}
	// Insert before recursing so mutually-requiring specs terminate.
	a.hosts[spec.Name] = h
	a.registerOrder = append(a.registerOrder, spec.Name)

	p.DeclareOptions(a.opts)
	a.logger.Debug().Str("plugin", spec.Name).Msg("registered plugin")

	for _, dep := range spec.Requires {
		a.Register(dep)
	}
	return p
}

// FindPlugin returns the registered plugin with the given name.
func (a *App) FindPlugin(name string) (plugin.Plugin, bool) {
	h, ok := a.hosts[name]
	if !ok {
		return nil, false
	}
	return h.plugin, true
}

// GetPlugin returns the registered plugin with the given name, or an
// error wrapping ErrPluginNotFound.
func (a *App) GetPlugin(name string) (plugin.Plugin, error) {
	p, ok := a.FindPlugin(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrPluginNotFound)
	}
	return p, nil
}

// PluginState returns the lifecycle state of the named plugin.
func (a *App) PluginState(name string) (plugin.State, bool) {
	h, ok := a.hosts[name]
	if !ok {
		return 0, false
	}
	return h.state, true
}

// Plugins returns the registered plugin names in registration order.
func (a *App) Plugins() []string {
	out := make([]string, len(a.registerOrder))
	copy(out, a.registerOrder)
	return out
}

// Get returns the first registered plugin assignable to P, in
// registration order.
func Get[P plugin.Plugin](a *App) (P, error) {
	for _, name := range a.registerOrder {
		if p, ok := a.hosts[name].plugin.(P); ok {
			return p, nil
		}
	}
	var zero P
	return zero, fmt.Errorf("%T: %w", zero, ErrPluginNotFound)
}

// MustGet is Get but panics when no plugin matches.
func MustGet[P plugin.Plugin](a *App) P {
	p, err := Get[P](a)
	if err != nil {
		panic(err)
	}
	return p
}
