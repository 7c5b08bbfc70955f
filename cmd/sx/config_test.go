package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "sx.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_NoFile(t *testing.T) {
	cfg, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("Expected default color auto, got %q", cfg.Output.Color)
	}
	if cfg.Output.Precision != -1 {
		t.Errorf("Expected default precision -1, got %d", cfg.Output.Precision)
	}
	if cfg.Lexer.NewlineDelimits {
		t.Error("Expected newline_delimits off by default")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[output]
color = "off"
precision = 2

[lexer]
newline_delimits = true
`)

	cfg, err := loadConfig(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Output.Color != "off" {
		t.Errorf("Expected color off, got %q", cfg.Output.Color)
	}
	if cfg.Output.Precision != 2 {
		t.Errorf("Expected precision 2, got %d", cfg.Output.Precision)
	}
	if !cfg.Lexer.NewlineDelimits {
		t.Error("Expected newline_delimits on")
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[lexer]
newline_delimits = true
`)

	cfg, err := loadConfig(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Output.Color != "auto" || cfg.Output.Precision != -1 {
		t.Errorf("Absent [output] keys must keep defaults, got %+v", cfg.Output)
	}
	if !cfg.Lexer.NewlineDelimits {
		t.Error("Expected newline_delimits on")
	}
}

func TestLoadConfig_FoundInParentDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[output]
precision = 4
`)
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(nested)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Output.Precision != 4 {
		t.Errorf("Expected precision 4 from parent config, got %d", cfg.Output.Precision)
	}
}

func TestLoadConfig_InvalidColor(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[output]
color = "rainbow"
`)
	if _, err := loadConfig(dir); err == nil {
		t.Fatal("Expected error for invalid color value")
	}
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output\ncolor =")
	if _, err := loadConfig(dir); err == nil {
		t.Fatal("Expected error for malformed TOML")
	}
}
