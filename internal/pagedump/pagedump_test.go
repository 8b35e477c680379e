package pagedump

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteParse(t *testing.T) {
	pages := []Page{
		{Index: 1, Text: "你好 Nǐ hǎo\n01-1"},
		{Index: 2, Text: ""},
		{Index: 3, Text: "谢谢 Xièxie"},
	}

	var buf bytes.Buffer
	if err := Write(&buf, pages); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "# HSK 1") {
		t.Error("dump should start with the comment header")
	}
	if !strings.Contains(out, "## PAGE 1") {
		t.Error("dump should contain banner for page 1")
	}
	if strings.Contains(out, "## PAGE 2") {
		t.Error("empty page should be skipped")
	}
	if !strings.Contains(out, "## PAGE 3") {
		t.Error("dump should contain banner for page 3")
	}

	parsed, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	// Two non-empty pages survive the round trip.
	if len(parsed) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(parsed))
	}
	if !strings.Contains(parsed[0].Text, "你好") {
		t.Errorf("page 1 text lost: %q", parsed[0].Text)
	}
	if !strings.Contains(parsed[1].Text, "谢谢") {
		t.Errorf("page 2 text lost: %q", parsed[1].Text)
	}
	if parsed[0].Index != 1 || parsed[1].Index != 2 {
		t.Errorf("indices should be positional: got %d, %d", parsed[0].Index, parsed[1].Index)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	pages, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			t.Errorf("unexpected non-empty page: %q", p.Text)
		}
	}
}

func TestParse_NoHeader(t *testing.T) {
	sep := strings.Repeat("=", 60)
	dump := "\n" + sep + "\n## PAGE 1\n" + sep + "\nsome text\n"
	pages, err := Parse(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	var nonEmpty int
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			nonEmpty++
		}
	}
	if nonEmpty != 1 {
		t.Errorf("expected 1 non-empty page, got %d", nonEmpty)
	}
}
