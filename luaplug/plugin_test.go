package luaplug

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/chassis/options"
	"github.com/dshills/chassis/plugin"
)

func scriptPlugin(t *testing.T, script string) *Plugin {
	t.Helper()
	spec := Spec("script", filepath.Join("testdata", script))
	p, ok := spec.New().(*Plugin)
	if !ok {
		t.Fatalf("factory returned %T, want *Plugin", spec.New())
	}
	return p
}

func TestHooksRunInLifecycleOrder(t *testing.T) {
	p := scriptPlugin(t, "hooks.lua")

	if err := p.OnInitialize(nil); err != nil {
		t.Fatalf("OnInitialize: %v", err)
	}
	if err := p.OnStartup(); err != nil {
		t.Fatalf("OnStartup: %v", err)
	}
	if err := p.OnReload(); err != nil {
		t.Fatalf("OnReload: %v", err)
	}
	if err := p.OnShutdown(); err != nil {
		t.Fatalf("OnShutdown: %v", err)
	}
}

func TestMissingHooksAreNoOps(t *testing.T) {
	p := scriptPlugin(t, "empty.lua")

	if err := p.OnInitialize(nil); err != nil {
		t.Fatalf("OnInitialize: %v", err)
	}
	if err := p.OnStartup(); err != nil {
		t.Fatalf("OnStartup: %v", err)
	}
	if err := p.OnReload(); err != nil {
		t.Fatalf("OnReload: %v", err)
	}
	if err := p.OnShutdown(); err != nil {
		t.Fatalf("OnShutdown: %v", err)
	}
}

func TestHookErrorPropagates(t *testing.T) {
	p := scriptPlugin(t, "failing.lua")

	if err := p.OnInitialize(nil); err != nil {
		t.Fatalf("OnInitialize: %v", err)
	}
	err := p.OnStartup()
	if err == nil {
		t.Fatal("OnStartup = nil, want error from script")
	}
	if !strings.Contains(err.Error(), "refusing to start") {
		t.Fatalf("OnStartup error %q does not carry the script message", err)
	}
	if err := p.OnShutdown(); err != nil {
		t.Fatalf("OnShutdown: %v", err)
	}
}

func TestMissingScriptFailsInitialize(t *testing.T) {
	p := scriptPlugin(t, "absent.lua")
	if err := p.OnInitialize(nil); err == nil {
		t.Fatal("OnInitialize with missing script = nil, want error")
	}
}

func TestGetOptionExposesMergedValues(t *testing.T) {
	set := options.NewSet("test")
	set.Section("demo", "").String("greeting", "hello", "Greeting text")
	vals, err := set.Parse(nil, "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	p := scriptPlugin(t, "option.lua")
	if err := p.OnInitialize(vals); err != nil {
		t.Fatalf("OnInitialize: %v", err)
	}
	if err := p.OnShutdown(); err != nil {
		t.Fatalf("OnShutdown: %v", err)
	}
}

func TestSpecBuildsRegistrySpec(t *testing.T) {
	dep := plugin.Spec{Name: "chain", New: func() plugin.Plugin { return &plugin.Base{} }}
	spec := Spec("scripted", "testdata/empty.lua", dep)

	if spec.Name != "scripted" {
		t.Errorf("spec name = %q, want scripted", spec.Name)
	}
	if len(spec.Requires) != 1 || spec.Requires[0].Name != "chain" {
		t.Errorf("spec requires %v, want [chain]", spec.Requires)
	}
	if _, ok := spec.New().(*Plugin); !ok {
		t.Error("factory did not return a *Plugin")
	}
}
