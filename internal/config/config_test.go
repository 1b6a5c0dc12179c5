package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{
		"files": {
			"include": ["app/**/*.tsx"],
			"exclude": ["app/legacy/**"]
		},
		"allowTypes": ["Decimal", "ObjectId"],
		"allowProps": ["onServerSubmit"],
		"strict": true,
		"quiet": true
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Files.Include) != 1 || cfg.Files.Include[0] != "app/**/*.tsx" {
		t.Errorf("unexpected include: %v", cfg.Files.Include)
	}
	if len(cfg.Files.Exclude) != 1 {
		t.Errorf("unexpected exclude: %v", cfg.Files.Exclude)
	}
	if len(cfg.AllowTypes) != 2 || cfg.AllowTypes[0] != "Decimal" {
		t.Errorf("unexpected allowTypes: %v", cfg.AllowTypes)
	}
	if len(cfg.AllowProps) != 1 || cfg.AllowProps[0] != "onServerSubmit" {
		t.Errorf("unexpected allowProps: %v", cfg.AllowProps)
	}
	if !cfg.Strict || !cfg.Quiet {
		t.Error("expected strict and quiet to be set")
	}
}

func TestLoadEmptyConfigUsesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Files.Include) != 0 || cfg.Strict || cfg.Quiet {
		t.Errorf("expected zero defaults, got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"files": `)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadRejectsEmptyAllowType(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"allowTypes": [""]}`)
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for empty allow type")
	}
}

func TestLoadRejectsEmptyAllowProp(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"allowProps": [""]}`)
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for empty allow prop")
	}
}

func TestLoadRejectsEmptyPattern(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"files": {"include": [""]}}`)
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for empty pattern")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := Discover(dir); got != "" {
		t.Errorf("expected no config, got %q", got)
	}
	path := writeConfig(t, dir, `{}`)
	if got := Discover(dir); got != path {
		t.Errorf("expected %q, got %q", path, got)
	}
}
