package game

import (
	"errors"
	"testing"
)

type countingPlugin struct {
	name  string
	inits int
	err   error
}

func (p *countingPlugin) Name() string { return p.name }

func (p *countingPlugin) Init() error {
	p.inits++
	return p.err
}

func TestInstallPluginsOnce(t *testing.T) {
	p := &countingPlugin{name: "test.once"}

	if PluginInstalled(p.name) {
		t.Fatal("plugin should not be installed yet")
	}
	for i := 0; i < 3; i++ {
		if err := InstallPlugins(p); err != nil {
			t.Fatalf("InstallPlugins error: %v", err)
		}
	}
	if p.inits != 1 {
		t.Errorf("Init called %d times, want 1", p.inits)
	}
	if !PluginInstalled(p.name) {
		t.Error("plugin should be installed")
	}

	found := false
	for _, name := range InstalledPlugins() {
		if name == p.name {
			found = true
		}
	}
	if !found {
		t.Errorf("InstalledPlugins() = %v, missing %s", InstalledPlugins(), p.name)
	}
}

func TestInstallPluginsFailureCanRetry(t *testing.T) {
	p := &countingPlugin{name: "test.retry", err: errors.New("boom")}

	if err := InstallPlugins(p); err == nil {
		t.Fatal("expected error from failing plugin")
	}
	if PluginInstalled(p.name) {
		t.Error("failed plugin must not be marked installed")
	}

	p.err = nil
	if err := InstallPlugins(p); err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if p.inits != 2 || !PluginInstalled(p.name) {
		t.Errorf("inits = %d installed = %v, want 2/true", p.inits, PluginInstalled(p.name))
	}
}
