// Package pagedump reads and writes the OCR page dump: the intermediate text
// file produced by the OCR stage and consumed by segmentation. Pages are
// separated by a "## PAGE n" banner between lines of equals signs.
package pagedump

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const separatorWidth = 60

// Header is the two-line comment block written at the top of a page dump.
const Header = "# HSK 1 - Chapters 1-15 (OCR Extracted)\n" +
	"# Note: Review for OCR errors, especially in pinyin tones\n"

// pageMarkerRe matches the page banner, e.g.
//
//	============...=
//	## PAGE 12
//	============...=
var pageMarkerRe = regexp.MustCompile(`={60,}\n## PAGE \d+\n={60,}`)

// Page is one OCR'd page: immutable once produced.
type Page struct {
	Index int    // 1-based position in the source document
	Text  string // raw recognized text, may be empty
}

// Write emits pages in dump format. Pages with empty text are skipped,
// matching the OCR stage's "no text found" behavior.
func Write(w io.Writer, pages []Page) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return err
	}

	sep := strings.Repeat("=", separatorWidth)
	for _, p := range pages {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		if _, err := fmt.Fprintf(bw, "\n%s\n## PAGE %d\n%s\n\n%s\n", sep, p.Index, sep, p.Text); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse splits a page dump back into pages. The leading comment header block
// is discarded. Page indices are assigned by position: the dump's own page
// numbers are display-only and may have gaps where pages held no text.
func Parse(r io.Reader) ([]Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read page dump: %w", err)
	}

	chunks := pageMarkerRe.Split(string(data), -1)
	if len(chunks) > 0 && strings.HasPrefix(strings.TrimSpace(chunks[0]), "#") {
		chunks = chunks[1:]
	}

	pages := make([]Page, 0, len(chunks))
	for i, c := range chunks {
		pages = append(pages, Page{Index: i + 1, Text: c})
	}
	return pages, nil
}
