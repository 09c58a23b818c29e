package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"medialog/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for a missing file")
	}
	if !cfg.DemoData {
		t.Fatal("expected demo data on by default")
	}
	if cfg.UI.SortBy != "rating" || cfg.UI.SortDirection != "desc" {
		t.Fatalf("unexpected UI defaults: %+v", cfg.UI)
	}
}

func TestLoadAppliesOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "demo_data = false\n[ui]\nview = \" LIST \"\nsort_by = \"title\"\n[logging]\nlevel = \"DEBUG\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected resolved existing path, got %q exists=%v", resolved, exists)
	}
	if cfg.DemoData {
		t.Fatal("expected demo_data override")
	}
	if cfg.UI.View != "list" {
		t.Fatalf("expected normalized view, got %q", cfg.UI.View)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized level, got %q", cfg.Logging.Level)
	}
	// Unset keys keep their defaults.
	if cfg.UI.SortDirection != "desc" {
		t.Fatalf("expected default sort direction, got %q", cfg.UI.SortDirection)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []string{
		"[ui]\nview = \"carousel\"\n",
		"[ui]\nsort_by = \"popularity\"\n",
		"[ui]\nlocale = \"not a tag\"\n",
		"[logging]\nformat = \"xml\"\n",
	}
	for _, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatalf("expected validation error for %q", strings.TrimSpace(content))
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if *cfg != config.Default() {
		t.Fatalf("sample must match defaults, got %+v", cfg)
	}
}
