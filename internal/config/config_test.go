package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
paths:
  page_dump: "ocr_pages.txt"
  chapters: "out/chapters"
  vocabulary: "out/vocab.json"

book:
  lesson_count: 12

llm:
  model: "claude-sonnet-4-20250514"
  max_tokens: 4000
  max_parallel: 3
  call_timeout: "2m"

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Paths.PageDump != "ocr_pages.txt" {
		t.Errorf("paths.page_dump = %q", cfg.Paths.PageDump)
	}
	if cfg.Paths.Chapters != "out/chapters" {
		t.Errorf("paths.chapters = %q", cfg.Paths.Chapters)
	}
	// Unset paths keep their defaults.
	if cfg.Paths.Combined != "hsk1_corrected.txt" {
		t.Errorf("paths.combined = %q, want default", cfg.Paths.Combined)
	}

	if cfg.Book.LessonCount != 12 {
		t.Errorf("book.lesson_count = %d, want 12", cfg.Book.LessonCount)
	}

	if cfg.LLM.MaxParallel != 3 {
		t.Errorf("llm.max_parallel = %d, want 3", cfg.LLM.MaxParallel)
	}
	if cfg.LLM.CallTimeout != 2*time.Minute {
		t.Errorf("llm.call_timeout = %v, want 2m", cfg.LLM.CallTimeout)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("BOOK_LESSON_COUNT", "15")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Book.LessonCount != 15 {
		t.Errorf("book.lesson_count = %d, want 15 (ENV override)", cfg.Book.LessonCount)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Book.LessonCount != 15 {
		t.Errorf("book.lesson_count = %d, want 15 (default)", cfg.Book.LessonCount)
	}
	if cfg.LLM.MaxParallel != 5 {
		t.Errorf("llm.max_parallel = %d, want 5 (default)", cfg.LLM.MaxParallel)
	}
	if cfg.Paths.Chapters != "corrected_chapters" {
		t.Errorf("paths.chapters = %q, want default", cfg.Paths.Chapters)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero lesson count", mutate: func(c *Config) { c.Book.LessonCount = 0 }, wantErr: true},
		{name: "negative lesson count", mutate: func(c *Config) { c.Book.LessonCount = -1 }, wantErr: true},
		{name: "zero max parallel", mutate: func(c *Config) { c.LLM.MaxParallel = 0 }, wantErr: true},
		{name: "zero max tokens", mutate: func(c *Config) { c.LLM.MaxTokens = 0 }, wantErr: true},
		{name: "zero call timeout", mutate: func(c *Config) { c.LLM.CallTimeout = 0 }, wantErr: true},
		{name: "empty chapters dir", mutate: func(c *Config) { c.Paths.Chapters = "" }, wantErr: true},
		{name: "missing api key is allowed", mutate: func(c *Config) { c.LLM.APIKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Paths: PathsConfig{
			PageDump:   "hsk1_ocr.txt",
			Book:       "hsk1.txt",
			Chapters:   "corrected_chapters",
			Combined:   "hsk1_corrected.txt",
			Vocabulary: "hsk1_vocabulary.json",
			Atoms:      "hsk1_atoms.json",
		},
		Book: BookConfig{LessonCount: 15},
		LLM: LLMConfig{
			Model:       "claude-sonnet-4-20250514",
			MaxTokens:   8000,
			MaxParallel: 5,
			CallTimeout: 5 * time.Minute,
		},
	}
}
