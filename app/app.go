package app

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/dshills/chassis/bus"
	"github.com/dshills/chassis/options"
	"github.com/dshills/chassis/reactor"
	"github.com/dshills/chassis/scheduler"
)

// App is the runtime context. It owns the reactor, the priority
// scheduler, the endpoint registry, the option set, and the plugin
// registry. Create one per process with New and pass it explicitly.
type App struct {
	name       string
	logger     zerolog.Logger
	homeDir    string
	configFile string

	loop  *reactor.Loop
	sched *scheduler.Scheduler
	bus   *bus.Registry
	opts  *options.Set
	vals  *options.Values

	hosts         map[string]*host
	registerOrder []string
	initialized   []*host
	started       []*host

	quiting        atomic.Bool
	reloadCallback func()

	termWatch *reactor.Signals
	hupWatch  *reactor.Signals
	watcher   *configWatcher
}

// Option customizes a new App.
type Option func(*App)

// WithLogger replaces the default console logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithHomeDir sets the data directory, overriding the ~/.<name> default.
func WithHomeDir(dir string) Option {
	return func(a *App) { a.homeDir = dir }
}

// WithConfigFile sets the config file. A relative path is resolved under
// the home directory's config/ subdirectory.
func WithConfigFile(path string) Option {
	return func(a *App) { a.configFile = path }
}

// New creates an application runtime named name. The name seeds the
// default home directory and the option set's usage output.
func New(name string, opts ...Option) *App {
	loop := reactor.NewLoop()
	a := &App{
		name:       name,
		logger:     newLogger(os.Stderr, zerolog.InfoLevel),
		configFile: "config.toml",
		loop:       loop,
		sched:      scheduler.New(loop),
		opts:       options.NewSet(name),
		hosts:      make(map[string]*host),
	}
	a.bus = bus.NewRegistry(a.sched)
	for _, opt := range opts {
		opt(a)
	}
	a.declareBuiltinOptions()
	return a
}

func (a *App) declareBuiltinOptions() {
	top := a.opts.Section("", "Application runtime")
	top.StringSlice("plugin", nil, "Plugin(s) to enable, may be specified multiple times")
	top.String("home", "", "Directory containing configuration and runtime data", options.CLIOnly)
	top.String("config", "", "Configuration file to read (relative to home)", options.CLIOnly)
	top.String("log-level", "info", "Log level: trace, debug, info, warn, error")
}

// Name returns the application name.
func (a *App) Name() string { return a.name }

// Logger returns the runtime logger.
func (a *App) Logger() zerolog.Logger { return a.logger }

// Options returns the declaration surface plugins add their options to.
func (a *App) Options() *options.Set { return a.opts }

// Values returns the merged option view, or nil before ParseConfig or
// Initialize has run.
func (a *App) Values() *options.Values { return a.vals }

// Bus returns the endpoint registry for channels and methods.
func (a *App) Bus() *bus.Registry { return a.bus }

// Scheduler returns the priority task scheduler.
func (a *App) Scheduler() *scheduler.Scheduler { return a.sched }

// Reactor returns the underlying event loop.
func (a *App) Reactor() *reactor.Loop { return a.loop }

// HomeDir returns the data directory, defaulting to ~/.<name>.
func (a *App) HomeDir() string {
	if a.homeDir != "" {
		return a.homeDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "."+a.name)
}

// SetHomeDir overrides the data directory.
func (a *App) SetHomeDir(dir string) { a.homeDir = dir }

// ConfigFile returns the config file path. A relative setting resolves
// under HomeDir()/config.
func (a *App) ConfigFile() string {
	if filepath.IsAbs(a.configFile) {
		return a.configFile
	}
	return filepath.Join(a.HomeDir(), "config", a.configFile)
}

// SetConfigFile overrides the config file path.
func (a *App) SetConfigFile(path string) { a.configFile = path }
