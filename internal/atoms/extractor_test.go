package atoms

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/hskpipe/internal/domain"
)

type mockLLM struct {
	correctFn func(ctx context.Context, prompt string) (string, error)
}

func (m *mockLLM) Correct(ctx context.Context, prompt string) (string, error) {
	return m.correctFn(ctx, prompt)
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		resp    string
		want    string
		wantErr bool
	}{
		{
			name: "bare array",
			resp: `[{"word": "四"}]`,
			want: `[{"word": "四"}]`,
		},
		{
			name: "json fence",
			resp: "Here are the atoms:\n```json\n[{\"word\": \"四\"}]\n```\nDone.",
			want: `[{"word": "四"}]`,
		},
		{
			name: "plain fence",
			resp: "```\n[]\n```",
			want: `[]`,
		},
		{
			name: "surrounding prose without fences",
			resp: "The atoms I found are [{\"word\": \"五\"}] as requested.",
			want: `[{"word": "五"}]`,
		},
		{
			name:    "no array",
			resp:    "I could not find any atoms in this chapter.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONArray(tt.resp)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractJSONArray: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractAll_MergesInChapterOrder(t *testing.T) {
	llm := &mockLLM{
		correctFn: func(_ context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "Chapter 1 ") {
				return `[{"word": "十", "pinyin": "shí", "part_of_speech": "numeral", "meaning": "ten", "context": "number table"}]`, nil
			}
			return `[{"word": "百", "pinyin": "bǎi", "part_of_speech": "numeral", "meaning": "hundred"},
			        {"word": "十", "pinyin": "shí", "part_of_speech": "numeral", "meaning": "ten"}]`, nil
		},
	}
	e := NewExtractor(llm, 2, 0, discardLogger())

	records := e.ExtractAll(context.Background(), map[int]string{1: "text", 2: "text"}, nil)

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// 十 appears in both chapters; chapter 1 wins.
	if records[0].Word != "十" || records[0].Chapter != 1 {
		t.Errorf("first record: %+v", records[0])
	}
	if records[1].Word != "百" || records[1].Chapter != 2 {
		t.Errorf("second record: %+v", records[1])
	}
	for _, rec := range records {
		if rec.Tag != domain.TagAtom || rec.Source != domain.SourceHSK1 {
			t.Errorf("record missing tag/source: %+v", rec)
		}
		if rec.PartOfSpeech != domain.PartOfSpeechNumeral {
			t.Errorf("part of speech: %+v", rec)
		}
	}
}

// An atom whose word is already in the seed vocabulary must be dropped and
// the skip logged, even when its pinyin or meaning differ.
func TestExtractAll_SeededDuplicateDroppedAndLogged(t *testing.T) {
	llm := &mockLLM{
		correctFn: func(_ context.Context, _ string) (string, error) {
			return `[{"word": "五", "pinyin": "wu3", "part_of_speech": "numeral", "meaning": "the digit five"},
			        {"word": "六", "pinyin": "liù", "part_of_speech": "numeral", "meaning": "six"}]`, nil
		},
	}

	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))
	e := NewExtractor(llm, 1, 0, log)

	records := e.ExtractAll(context.Background(), map[int]string{3: "text"}, []string{"五"})

	if len(records) != 1 || records[0].Word != "六" {
		t.Fatalf("seeded word should be dropped: %+v", records)
	}
	if !strings.Contains(logBuf.String(), "skipping duplicate atom") ||
		!strings.Contains(logBuf.String(), "五") {
		t.Error("duplicate skip should be logged with the word")
	}
}

func TestExtractAll_FailedChapterDegradesToEmpty(t *testing.T) {
	llm := &mockLLM{
		correctFn: func(_ context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "Chapter 2 ") {
				return "", errors.New("api overloaded")
			}
			return `[{"word": "九", "pinyin": "jiǔ", "part_of_speech": "numeral", "meaning": "nine"}]`, nil
		},
	}
	e := NewExtractor(llm, 2, 0, discardLogger())

	records := e.ExtractAll(context.Background(), map[int]string{1: "a", 2: "b"}, nil)

	if len(records) != 1 || records[0].Chapter != 1 {
		t.Errorf("chapter 1 atoms should survive chapter 2's failure: %+v", records)
	}
}

func TestExtractAll_SkipsBlankChapters(t *testing.T) {
	calls := 0
	llm := &mockLLM{
		correctFn: func(_ context.Context, _ string) (string, error) {
			calls++
			return "[]", nil
		},
	}
	e := NewExtractor(llm, 1, 0, discardLogger())

	records := e.ExtractAll(context.Background(), map[int]string{1: "   \n  "}, nil)
	if calls != 0 {
		t.Errorf("blank chapter should not reach the model, got %d calls", calls)
	}
	if len(records) != 0 {
		t.Errorf("got %d records", len(records))
	}
}

func TestBuildPrompt_SeedWordsListed(t *testing.T) {
	p := buildPrompt(4, "chapter text", []string{"你", "好"})
	for _, want := range []string{"Chapter 4 ", "你", "好", "chapter text", "JSON array"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
