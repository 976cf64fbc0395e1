package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "nest.yaml")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeConfig(t, `
format: json
color: false
filter: kind == "change"
looseTruth: true
store:
  dir: /tmp/nest
`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	off := false
	want := &FileConfig{
		Format:     FormatJSON,
		Color:      &off,
		Filter:     `kind == "change"`,
		LooseTruth: true,
		Store:      &StoreConfig{Dir: "/tmp/nest"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
	if len(cfg.modelOpts()) != 1 {
		t.Error("looseTruth not applied")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "filter: depth == 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("format %q, want %q", cfg.Format, FormatYAML)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "colour: true\n")); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestValidate(t *testing.T) {
	for name, cfg := range map[string]*FileConfig{
		"format": {Format: "toml"},
		"filter": {Format: FormatYAML, Filter: "kind =="},
		"store":  {Format: FormatYAML, Store: &StoreConfig{}},
	} {
		t.Run(name, func(t *testing.T) {
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestOpenStore(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := cfg.openStore(); err == nil {
		t.Error("expected error without store")
	}
	cfg.Store = &StoreConfig{Dir: t.TempDir()}
	if _, err := cfg.openStore(); err != nil {
		t.Error(err)
	}
}
