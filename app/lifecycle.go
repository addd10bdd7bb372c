package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/chassis/plugin"
)

// Initialize runs the initialize hook of each named plugin and of every
// plugin it transitively requires, dependencies first. Names already
// enabled through the --plugin option are included. A plugin that is
// already initialized (or further along) is skipped, so overlapping
// dependency graphs initialize each plugin exactly once.
//
// On a hook failure or a dependency cycle Initialize stops and returns
// the error; plugins that already initialized stay initialized and are
// torn down by the shutdown pass that Exec or Shutdown performs.
func (a *App) Initialize(names ...string) error {
	if a.vals == nil {
		vals, err := a.opts.Parse(nil, "")
		if err != nil {
			return err
		}
		a.vals = vals
	}

	requested := slices.Clone(names)
	requested = append(requested, a.vals.StringSlice("plugin")...)

	marks := make(map[string]int) // 0 unvisited, 1 visiting, 2 done
	for _, name := range requested {
		if err := a.initializeWalk(name, marks, nil); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) initializeWalk(name string, marks map[string]int, path []string) error {
	switch marks[name] {
	case 2:
		return nil
	case 1:
		return &CycleError{Path: append(slices.Clone(path), name)}
	}

	h, ok := a.hosts[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrPluginNotFound)
	}

	marks[name] = 1
	path = append(path, name)
	for _, dep := range h.requires {
		if err := a.initializeWalk(dep, marks, path); err != nil {
			return err
		}
	}
	marks[name] = 2

	return a.initializeHost(h)
}

func (a *App) initializeHost(h *host) error {
	switch h.state {
	case plugin.StateRegistered:
		if err := h.plugin.OnInitialize(a.vals); err != nil {
			return &HookError{Plugin: h.name, Phase: "initialize", Err: err}
		}
		a.initialized = append(a.initialized, h)
		h.state = plugin.StateInitialized
		a.logger.Info().Str("plugin", h.name).Msg("initialized plugin")
	case plugin.StateInitialized, plugin.StateStarted:
		// Already past this phase.
	case plugin.StateStopped:
		panic(fmt.Sprintf("app: initializing stopped plugin %q", h.name))
	}
	return nil
}

// Startup runs the startup hook of every initialized plugin in
// initialization order, dependencies first. While hooks run, terminate
// signals are caught on a private auxiliary loop so a long startup can
// still be interrupted; an interrupt makes Startup stop between hooks
// and return normally with quiescence requested.
//
// A hook failure shuts down every plugin already started, in reverse
// order, and returns the startup error.
func (a *App) Startup() error {
	boot := a.startBootstrapSignals()

	var startupErr error
	for _, h := range slices.Clone(a.initialized) {
		if a.IsQuiting() {
			break
		}
		if err := a.startupHost(h); err != nil {
			startupErr = err
			break
		}
	}

	boot.stop()

	if startupErr != nil {
		if err := a.Shutdown(); err != nil {
			a.logger.Error().Err(err).Msg("shutdown after failed startup")
		}
		return startupErr
	}

	a.armRuntimeSignals()
	return nil
}

func (a *App) startupHost(h *host) error {
	switch h.state {
	case plugin.StateInitialized:
		for _, dep := range h.requires {
			if d, ok := a.hosts[dep]; ok {
				if err := a.startupHost(d); err != nil {
					return err
				}
			}
		}
		if err := h.plugin.OnStartup(); err != nil {
			return &HookError{Plugin: h.name, Phase: "startup", Err: err}
		}
		a.started = append(a.started, h)
		h.state = plugin.StateStarted
		a.logger.Info().Str("plugin", h.name).Msg("started plugin")
	case plugin.StateStarted:
		// Shared dependency already started.
	case plugin.StateRegistered:
		panic(fmt.Sprintf("app: starting uninitialized plugin %q", h.name))
	case plugin.StateStopped:
		panic(fmt.Sprintf("app: starting stopped plugin %q", h.name))
	}
	return nil
}

// Shutdown stops every started plugin in reverse startup order, running
// each shutdown hook exactly once. Hook errors are logged, collected,
// and joined into the return value; they never prevent the remaining
// plugins from stopping. Shutdown also disarms signal watchers, stops
// the config watcher, clears the registry, and requests quiescence.
func (a *App) Shutdown() error {
	var errs []error
	for i := len(a.started) - 1; i >= 0; i-- {
		h := a.started[i]
		if h.state != plugin.StateStarted {
			continue
		}
		a.logger.Info().Str("plugin", h.name).Msg("stopping plugin")
		if err := h.plugin.OnShutdown(); err != nil {
			herr := &HookError{Plugin: h.name, Phase: "shutdown", Err: err}
			a.logger.Error().Err(herr).Msg("plugin shutdown failed")
			errs = append(errs, herr)
		}
		h.state = plugin.StateStopped
	}

	a.stopRuntimeSignals()
	a.stopConfigWatcher()

	a.hosts = make(map[string]*host)
	a.registerOrder = nil
	a.initialized = nil
	a.started = nil

	a.Quit()
	return errors.Join(errs...)
}
