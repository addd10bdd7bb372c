package app

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dshills/chassis/options"
	"github.com/dshills/chassis/plugin"
)

// stubPlugin records lifecycle hook invocations into a shared log.
type stubPlugin struct {
	plugin.Base
	name     string
	log      *[]string
	initErr  error
	startErr error
	stopErr  error
}

func (p *stubPlugin) OnInitialize(*options.Values) error {
	*p.log = append(*p.log, "init:"+p.name)
	return p.initErr
}

func (p *stubPlugin) OnStartup() error {
	*p.log = append(*p.log, "start:"+p.name)
	return p.startErr
}

func (p *stubPlugin) OnShutdown() error {
	*p.log = append(*p.log, "stop:"+p.name)
	return p.stopErr
}

func stubSpec(log *[]string, name string, requires ...plugin.Spec) plugin.Spec {
	return plugin.Spec{
		Name:     name,
		New:      func() plugin.Plugin { return &stubPlugin{name: name, log: log} },
		Requires: requires,
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	return New("test", WithLogger(zerolog.Nop()), WithHomeDir(t.TempDir()))
}

func checkLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("hook log %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("hook log %v, want %v", got, want)
		}
	}
}

func TestRegisterMaterializesDependencies(t *testing.T) {
	a := newTestApp(t)
	var log []string

	depA := stubSpec(&log, "a")
	a.Register(stubSpec(&log, "b", depA))

	if _, ok := a.FindPlugin("a"); !ok {
		t.Fatal("required plugin a was not registered")
	}
	if _, ok := a.FindPlugin("b"); !ok {
		t.Fatal("plugin b was not registered")
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	a := newTestApp(t)
	var log []string

	first := a.Register(stubSpec(&log, "a"))
	second := a.Register(stubSpec(&log, "a"))
	if first != second {
		t.Fatal("re-registration returned a different instance")
	}
	if got := a.Plugins(); len(got) != 1 {
		t.Fatalf("Plugins() = %v, want one entry", got)
	}
}

func TestRegisterPanicsOnMalformedSpec(t *testing.T) {
	a := newTestApp(t)
	defer func() {
		if recover() == nil {
			t.Fatal("empty spec name did not panic")
		}
	}()
	a.Register(plugin.Spec{New: func() plugin.Plugin { return &plugin.Base{} }})
}

func TestInitializeRunsDependenciesFirst(t *testing.T) {
	a := newTestApp(t)
	var log []string

	depA := stubSpec(&log, "a")
	a.Register(stubSpec(&log, "b", depA))

	if err := a.Initialize("b"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	checkLog(t, log, "init:a", "init:b")

	if st, _ := a.PluginState("a"); st != plugin.StateInitialized {
		t.Errorf("plugin a state = %s, want initialized", st)
	}
}

func TestInitializeIsIdempotentPerPlugin(t *testing.T) {
	a := newTestApp(t)
	var log []string

	shared := stubSpec(&log, "shared")
	a.Register(stubSpec(&log, "x", shared))
	a.Register(stubSpec(&log, "y", shared))

	if err := a.Initialize("x", "y"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	checkLog(t, log, "init:shared", "init:x", "init:y")
}

func TestInitializeUnknownPlugin(t *testing.T) {
	a := newTestApp(t)
	if err := a.Initialize("ghost"); !errors.Is(err, ErrPluginNotFound) {
		t.Fatalf("Initialize(ghost) = %v, want ErrPluginNotFound", err)
	}
}

func TestInitializeDetectsCycle(t *testing.T) {
	a := newTestApp(t)
	var log []string

	aSpec := stubSpec(&log, "a")
	bSpec := stubSpec(&log, "b", aSpec)
	aSpec.Requires = []plugin.Spec{bSpec}

	a.Register(aSpec)

	var cycle *CycleError
	err := a.Initialize("a")
	if !errors.As(err, &cycle) {
		t.Fatalf("Initialize = %v, want *CycleError", err)
	}
	if len(cycle.Path) < 3 || cycle.Path[0] != cycle.Path[len(cycle.Path)-1] {
		t.Fatalf("cycle path %v does not close on itself", cycle.Path)
	}
	if len(log) != 0 {
		t.Fatalf("hooks ran despite cycle: %v", log)
	}
}

func TestInitializeHookFailure(t *testing.T) {
	a := newTestApp(t)
	var log []string
	boom := errors.New("boom")

	a.Register(plugin.Spec{
		Name: "bad",
		New: func() plugin.Plugin {
			return &stubPlugin{name: "bad", log: &log, initErr: boom}
		},
	})

	err := a.Initialize("bad")
	var hookErr *HookError
	if !errors.As(err, &hookErr) {
		t.Fatalf("Initialize = %v, want *HookError", err)
	}
	if hookErr.Plugin != "bad" || hookErr.Phase != "initialize" {
		t.Fatalf("HookError = %+v, want plugin bad, phase initialize", hookErr)
	}
	if !errors.Is(err, boom) {
		t.Fatal("HookError does not unwrap to the hook's error")
	}

	if st, _ := a.PluginState("bad"); st != plugin.StateRegistered {
		t.Errorf("failed plugin state = %s, want registered", st)
	}
}

func TestStartupOrderAndReverseShutdown(t *testing.T) {
	a := newTestApp(t)
	var log []string

	depA := stubSpec(&log, "a")
	a.Register(stubSpec(&log, "b", depA))

	if err := a.Initialize("b"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := a.Startup(); err != nil {
		t.Fatalf("Startup: %v", err)
	}
	if err := a.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	checkLog(t, log,
		"init:a", "init:b",
		"start:a", "start:b",
		"stop:b", "stop:a",
	)
}

func TestStartupFailureShutsDownStartedPrefix(t *testing.T) {
	a := newTestApp(t)
	var log []string
	boom := errors.New("boom")

	good := stubSpec(&log, "good")
	a.Register(good)
	a.Register(plugin.Spec{
		Name: "bad",
		New: func() plugin.Plugin {
			return &stubPlugin{name: "bad", log: &log, startErr: boom}
		},
		Requires: []plugin.Spec{good},
	})

	if err := a.Initialize("bad"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	err := a.Startup()
	var hookErr *HookError
	if !errors.As(err, &hookErr) {
		t.Fatalf("Startup = %v, want *HookError", err)
	}
	if hookErr.Phase != "startup" {
		t.Fatalf("HookError phase = %q, want startup", hookErr.Phase)
	}

	checkLog(t, log,
		"init:good", "init:bad",
		"start:good", "start:bad",
		"stop:good",
	)
	if !a.IsQuiting() {
		t.Error("IsQuiting() = false after failed startup")
	}
}

func TestShutdownCollectsHookErrors(t *testing.T) {
	a := newTestApp(t)
	var log []string
	boom := errors.New("boom")

	a.Register(plugin.Spec{
		Name: "flaky",
		New: func() plugin.Plugin {
			return &stubPlugin{name: "flaky", log: &log, stopErr: boom}
		},
	})
	a.Register(stubSpec(&log, "solid"))

	if err := a.Initialize("flaky", "solid"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := a.Startup(); err != nil {
		t.Fatalf("Startup: %v", err)
	}

	err := a.Shutdown()
	if !errors.Is(err, boom) {
		t.Fatalf("Shutdown = %v, want wrapped boom", err)
	}
	// The failing hook must not prevent the rest from stopping.
	checkLog(t, log,
		"init:flaky", "init:solid",
		"start:flaky", "start:solid",
		"stop:solid", "stop:flaky",
	)
}

func TestShutdownIsIdempotent(t *testing.T) {
	a := newTestApp(t)
	var log []string

	a.Register(stubSpec(&log, "a"))
	if err := a.Initialize("a"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := a.Startup(); err != nil {
		t.Fatalf("Startup: %v", err)
	}

	if err := a.Shutdown(); err != nil {
		t.Fatalf("first Shutdown: %v", err)
	}
	before := len(log)
	if err := a.Shutdown(); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}
	if len(log) != before {
		t.Fatalf("second Shutdown ran hooks: %v", log)
	}
}

func TestPluginOptionEnablesInitialization(t *testing.T) {
	a := newTestApp(t)
	var log []string

	a.Register(stubSpec(&log, "extra"))

	if err := a.ParseConfig([]string{"--plugin", "extra"}); err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if err := a.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	checkLog(t, log, "init:extra")
}

func TestFindAndGetPlugin(t *testing.T) {
	a := newTestApp(t)
	var log []string

	registered := a.Register(stubSpec(&log, "a"))

	if p, ok := a.FindPlugin("a"); !ok || p != registered {
		t.Fatal("FindPlugin did not return the registered instance")
	}
	if _, err := a.GetPlugin("missing"); !errors.Is(err, ErrPluginNotFound) {
		t.Fatalf("GetPlugin(missing) = %v, want ErrPluginNotFound", err)
	}

	typed, err := Get[*stubPlugin](a)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if typed != registered {
		t.Fatal("Get returned a different instance")
	}
	if MustGet[*stubPlugin](a) != registered {
		t.Fatal("MustGet returned a different instance")
	}
}

func TestGetUnmatchedType(t *testing.T) {
	a := newTestApp(t)
	if _, err := Get[*stubPlugin](a); !errors.Is(err, ErrPluginNotFound) {
		t.Fatalf("Get on empty registry = %v, want ErrPluginNotFound", err)
	}
}
