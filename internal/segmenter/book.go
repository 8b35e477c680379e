package segmenter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/hskpipe/internal/domain"
)

const bannerWidth = 70

// WriteBook writes the structured book file: a comment header followed by
// every lesson in ascending order under a 第X课 banner.
func WriteBook(w io.Writer, res Result) error {
	bw := bufio.NewWriter(w)

	header := []string{
		"# HSK 1 - Chapters 1-15",
		"# Extracted from HSK1_SC_L1-L15.pdf via OCR",
		"# Note: Review for OCR errors, especially in pinyin tones",
		"",
	}
	for _, line := range header {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	banner := strings.Repeat("=", bannerWidth)
	for _, n := range res.Order {
		if _, err := fmt.Fprintf(bw, "\n%s\n## 第%s课 - Lesson %d\n%s\n\n%s\n",
			banner, domain.ChineseNumeral(n), n, banner, res.Lessons[n]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
