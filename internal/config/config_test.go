package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig_Full(t *testing.T) {
	yaml := `
render:
  style: tree
  color: never
  unicode: false
  types: true
samples: [add, cond]
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Render.Style != StyleTree {
		t.Errorf("style = %q, want tree", cfg.Render.Style)
	}
	if cfg.Render.Color != ColorNever {
		t.Errorf("color = %q, want never", cfg.Render.Color)
	}
	if cfg.Render.UseUnicode() {
		t.Error("expected unicode to be false")
	}
	if !cfg.Render.Types {
		t.Error("expected types to be true")
	}
	if len(cfg.Samples) != 2 || cfg.Samples[0] != "add" || cfg.Samples[1] != "cond" {
		t.Errorf("samples = %v, want [add cond]", cfg.Samples)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("samples: [lit]\n"), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Render.Style != StyleInline {
		t.Errorf("style = %q, want inline", cfg.Render.Style)
	}
	if cfg.Render.Color != ColorAuto {
		t.Errorf("color = %q, want auto", cfg.Render.Color)
	}
	if !cfg.Render.UseUnicode() {
		t.Error("expected unicode to default to true")
	}

	def := Default()
	if def.Render.Style != StyleInline || !def.Render.UseUnicode() || len(def.Samples) != 0 {
		t.Errorf("Default() = %+v", def)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad style", "render:\n  style: boxed\n"},
		{"bad color", "render:\n  color: sometimes\n"},
		{"empty sample", "samples: [add, '']\n"},
		{"duplicate sample", "samples: [add, cond, add]\n"},
		{"not yaml", "render: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.yaml), "test.yaml"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestUseColor(t *testing.T) {
	tests := []struct {
		mode     string
		terminal bool
		want     bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	}
	for _, tt := range tests {
		if got := (Render{Color: tt.mode}).UseColor(tt.terminal); got != tt.want {
			t.Errorf("UseColor(%s, %v) = %v, want %v", tt.mode, tt.terminal, got, tt.want)
		}
	}
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, []byte("render:\n  style: tree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}
	if found != path {
		t.Errorf("FindConfig = %q, want %q", found, path)
	}

	cfg, err := LoadConfig(found)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Render.Style != StyleTree {
		t.Errorf("style = %q, want tree", cfg.Render.Style)
	}

	if _, err := LoadConfig(filepath.Join(root, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
