package config

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, `
[defaults]
language = "eng"
max_examples = 50
show_all = true

[lang.eng]
allowed_chars = "ñ"
suppress = ["CJK"]
benign_words = ["y'all"]
`)
	f, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !f.HasDefaults {
		t.Error("HasDefaults = false")
	}
	if f.Defaults.Language != "eng" || f.Defaults.MaxExamples != 50 || !f.Defaults.ShowAll {
		t.Errorf("defaults = %+v", f.Defaults)
	}
	ov, ok := f.Lang["eng"]
	if !ok {
		t.Fatal("missing [lang.eng]")
	}
	if ov.AllowedChars != "ñ" || len(ov.Suppress) != 1 || len(ov.BenignWords) != 1 {
		t.Errorf("override = %+v", ov)
	}
}

func TestDiscover_Missing(t *testing.T) {
	f, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if f.HasDefaults {
		t.Error("HasDefaults = true for missing manifest")
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "not [valid")
	if _, err := Load(filepath.Join(dir, FileName)); err == nil {
		t.Error("expected parse error")
	}
}
