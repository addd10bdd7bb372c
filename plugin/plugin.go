package plugin

import "github.com/dshills/chassis/options"

// Plugin is the hook contract a component implements to participate in the
// application lifecycle. The runtime invokes each hook at most once, in
// dependency-first order for OnInitialize and OnStartup and in reverse
// startup order for OnShutdown.
//
// An error returned from OnInitialize or OnStartup aborts the enclosing
// lifecycle phase; see the app package for the exact failure semantics.
type Plugin interface {
	// DeclareOptions registers the plugin's configuration options.
	// Called once at registration time, before any lifecycle hook and
	// before the command line or config file is parsed.
	DeclareOptions(set *options.Set)

	// OnInitialize is called after every declared dependency has
	// initialized. The values view carries merged command-line and
	// config-file options.
	OnInitialize(vals *options.Values) error

	// OnStartup is called after every declared dependency has started.
	OnStartup() error

	// OnShutdown is called during application shutdown, in reverse
	// startup order. Only plugins that started are shut down.
	OnShutdown() error
}

// Reloader is an optional interface for plugins that react to a reload
// signal (SIGHUP or a config-file change) while started.
type Reloader interface {
	OnReload() error
}

// Factory constructs a plugin instance. The registry calls a factory at
// most once per application run.
type Factory func() Plugin

// Spec describes a plugin type to the registry: a stable, globally unique
// name, a factory, and the plugins it requires. Registration is idempotent
// by Name — registering the same Spec twice returns the existing instance.
//
// The name is the plugin's identity everywhere: dependency edges, lookup,
// and log output. Pick names that survive refactors ("chain", "net"), not
// Go type names.
type Spec struct {
	// Name uniquely identifies the plugin within an application.
	Name string

	// New constructs the plugin instance.
	New Factory

	// Requires lists plugins that must initialize and start before this
	// one. The registry materializes the whole subgraph at registration
	// time, so requiring a plugin also registers it.
	Requires []Spec
}

// Base provides no-op implementations of every hook. Embed it in a plugin
// that only needs a subset of the contract.
type Base struct{}

// DeclareOptions implements Plugin.
func (Base) DeclareOptions(*options.Set) {}

// OnInitialize implements Plugin.
func (Base) OnInitialize(*options.Values) error { return nil }

// OnStartup implements Plugin.
func (Base) OnStartup() error { return nil }

// OnShutdown implements Plugin.
func (Base) OnShutdown() error { return nil }
