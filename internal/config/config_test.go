package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Questions != "data/questions.json" {
		t.Errorf("expected default questions %q, got %q", "data/questions.json", cfg.Questions)
	}
	if cfg.StaticPartsDir != "static-parts" {
		t.Errorf("expected default static_parts_dir %q, got %q", "static-parts", cfg.StaticPartsDir)
	}
	if cfg.Output != "README.md" {
		t.Errorf("expected default output %q, got %q", "README.md", cfg.Output)
	}
	if cfg.TagNames["css"] != "CSS" {
		t.Errorf("expected css display name CSS, got %q", cfg.TagNames["css"])
	}
	if cfg.UsesMarkdownDir() {
		t.Error("default config should read the JSON document")
	}
}

func TestDefaultConfigCopiesTagNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TagNames["css"] = "Cascading Style Sheets"
	if DefaultTagNames["css"] != "CSS" {
		t.Errorf("DefaultTagNames mutated through config: %q", DefaultTagNames["css"])
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.qbank.yml")

	original := DefaultConfig()
	original.QuestionsDir = "questions"
	original.QuestionsGlob = []string{"**/*.md", "extra/*.md"}
	original.Output = "out/README.md"
	original.TagNames["go"] = "Go"
	original.Log.Format = LogFormatJSON

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.QuestionsDir != original.QuestionsDir {
		t.Errorf("questions_dir: got %q, want %q", loaded.QuestionsDir, original.QuestionsDir)
	}
	if loaded.Output != original.Output {
		t.Errorf("output: got %q, want %q", loaded.Output, original.Output)
	}
	if loaded.Log.Format != LogFormatJSON {
		t.Errorf("log.format: got %q, want %q", loaded.Log.Format, LogFormatJSON)
	}
	if loaded.TagNames["go"] != "Go" {
		t.Errorf("tag_names.go: got %q, want %q", loaded.TagNames["go"], "Go")
	}
	if len(loaded.QuestionsGlob) != len(original.QuestionsGlob) {
		t.Fatalf("questions_glob length: got %d, want %d", len(loaded.QuestionsGlob), len(original.QuestionsGlob))
	}
	for i, v := range loaded.QuestionsGlob {
		if v != original.QuestionsGlob[i] {
			t.Errorf("questions_glob[%d]: got %q, want %q", i, v, original.QuestionsGlob[i])
		}
	}
	if !loaded.UsesMarkdownDir() {
		t.Error("expected markdown directory source after load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Output != "README.md" {
		t.Errorf("expected default output, got %q", cfg.Output)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("output: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("QBANK_OUTPUT", "docs/README.md")
	t.Setenv("QBANK_LOG__LEVEL", "debug")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Output != "docs/README.md" {
		t.Errorf("env override failed: got %q, want %q", loaded.Output, "docs/README.md")
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("nested env override failed: got %q, want %q", loaded.Log.Level, "debug")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no question source", func(c *Config) { c.Questions = ""; c.QuestionsDir = "" }},
		{"empty static parts", func(c *Config) { c.StaticPartsDir = "" }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"blank tag name", func(c *Config) { c.TagNames["css"] = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.md", []string{"**/*.md"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
