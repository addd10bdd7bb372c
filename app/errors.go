package app

import (
	"errors"
	"fmt"
	"strings"
)

// Runtime errors.
var (
	// ErrPluginNotFound - A plugin was looked up by a name or type that
	// is not registered.
	ErrPluginNotFound = errors.New("plugin not found")
)

// HookError reports a plugin lifecycle hook failure. It aborts the
// enclosing lifecycle phase; see Initialize and Startup for what happens
// to plugins that already transitioned.
type HookError struct {
	// Plugin is the registered plugin name.
	Plugin string

	// Phase is the lifecycle phase: "initialize", "startup", or
	// "shutdown".
	Phase string

	// Err is the error the hook returned.
	Err error
}

// Error implements error.
func (e *HookError) Error() string {
	return fmt.Sprintf("plugin %q: %s hook: %v", e.Plugin, e.Phase, e.Err)
}

// Unwrap returns the hook's error.
func (e *HookError) Unwrap() error {
	return e.Err
}

// CycleError reports a dependency cycle discovered while resolving
// initialization order. No hook of any plugin on the cycle has run.
type CycleError struct {
	// Path is the cycle, ending with the plugin that closed it.
	Path []string
}

// Error implements error.
func (e *CycleError) Error() string {
	return "dependency cycle: " + strings.Join(e.Path, " -> ")
}
