package plugin

// State represents the lifecycle state of a plugin.
// States advance monotonically: Registered -> Initialized -> Started ->
// Stopped. The runtime never moves a plugin backward and never skips a
// state.
type State int

// Plugin states.
const (
	// StateRegistered - Plugin is constructed and known to the registry,
	// but no lifecycle hook has run.
	StateRegistered State = iota

	// StateInitialized - OnInitialize has completed.
	StateInitialized

	// StateStarted - OnStartup has completed.
	StateStarted

	// StateStopped - OnShutdown has completed. Terminal.
	StateStopped
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateRegistered:
		return "registered"
	case StateInitialized:
		return "initialized"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Next returns the state that legally follows s. StateStopped has no
// successor and returns itself.
func (s State) Next() State {
	if s >= StateStopped {
		return StateStopped
	}
	return s + 1
}

// IsTerminal returns true once the plugin has shut down.
func (s State) IsTerminal() bool {
	return s == StateStopped
}
