// Package ocr is the text-recognition boundary of the pipeline. The real
// engine wraps Tesseract via gosseract and requires the "ocr" build tag
// (Tesseract must be installed on the system); without the tag, NewEngine
// returns ErrNotEnabled so the rest of the pipeline still builds and runs
// from a pre-existing page dump.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/heartmarshall/hskpipe/internal/pagedump"
)

// ErrNotEnabled is returned by NewEngine when the binary was built without
// the "ocr" build tag.
var ErrNotEnabled = errors.New("ocr support not enabled (build with -tags ocr)")

// Recognizer extracts text from one page image. An empty string means
// "no text found" and is not an error.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// imageExts are the page-image formats ExtractDir picks up.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
}

// ExtractDir runs the recognizer over every page image in dir, in filename
// order, and returns one Page per image that yielded text. The positional
// page index follows the sorted filename order, starting at 1.
func ExtractDir(ctx context.Context, rec Recognizer, dir string) ([]pagedump.Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var pages []pagedump.Page
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return pages, err
		}
		img, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return pages, fmt.Errorf("read %s: %w", name, err)
		}
		text, err := rec.Recognize(ctx, img)
		if err != nil {
			return pages, fmt.Errorf("recognize %s: %w", name, err)
		}
		pages = append(pages, pagedump.Page{Index: i + 1, Text: text})
	}
	return pages, nil
}
