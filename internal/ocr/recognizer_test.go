package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type fakeRecognizer struct {
	texts map[string]string // keyed by image content
}

func (f *fakeRecognizer) Recognize(_ context.Context, image []byte) (string, error) {
	text, ok := f.texts[string(image)]
	if !ok {
		return "", fmt.Errorf("unexpected image %q", image)
	}
	return text, nil
}

func TestExtractDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"page_002.png": "img-b",
		"page_001.png": "img-a",
		"page_003.jpg": "img-c",
		"notes.txt":    "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rec := &fakeRecognizer{texts: map[string]string{
		"img-a": "第一页",
		"img-b": "",
		"img-c": "第三页",
	}}

	pages, err := ExtractDir(context.Background(), rec, dir)
	if err != nil {
		t.Fatalf("ExtractDir: %v", err)
	}

	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	// Filename order, positional indices from 1; empty recognition is kept
	// as an empty page, not an error.
	if pages[0].Index != 1 || pages[0].Text != "第一页" {
		t.Errorf("page 1: %+v", pages[0])
	}
	if pages[1].Index != 2 || pages[1].Text != "" {
		t.Errorf("page 2: %+v", pages[1])
	}
	if pages[2].Index != 3 || pages[2].Text != "第三页" {
		t.Errorf("page 3: %+v", pages[2])
	}
}

func TestExtractDir_MissingDir(t *testing.T) {
	_, err := ExtractDir(context.Background(), &fakeRecognizer{}, "/nonexistent")
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestNewEngine_DisabledBuild(t *testing.T) {
	// The default build carries the stub engine.
	if _, err := NewEngine(); err == nil {
		t.Skip("built with -tags ocr")
	}
}
