package corrector

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// dividerWidth is the width of the line separating chapters in the combined
// document.
const dividerWidth = 70

// Store persists one corrected chapter per file under dir, named by the
// zero-padded convention chapter_NN.txt. File presence is the resumability
// signal: a later run skips chapters that already have an artifact.
type Store struct {
	dir string
}

// NewStore creates the chapter directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chapters dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the artifact path for a chapter.
func (s *Store) Path(chapter int) string {
	return filepath.Join(s.dir, fmt.Sprintf("chapter_%02d.txt", chapter))
}

// Exists reports whether a chapter already has a persisted artifact.
func (s *Store) Exists(chapter int) bool {
	_, err := os.Stat(s.Path(chapter))
	return err == nil
}

// Write persists corrected chapter text atomically: the content lands in a
// temp file first and is renamed into place, so a crash never leaves a
// half-written artifact that a resumed run would trust.
func (s *Store) Write(chapter int, text string) error {
	tmp, err := os.CreateTemp(s.dir, "chapter_*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write chapter %d: %w", chapter, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close chapter %d: %w", chapter, err)
	}
	if err := os.Rename(tmpName, s.Path(chapter)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename chapter %d: %w", chapter, err)
	}
	return nil
}

// Read returns a chapter's persisted text.
func (s *Store) Read(chapter int) (string, error) {
	data, err := os.ReadFile(s.Path(chapter))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Combine writes the combined corrected document: a two-line header banner,
// then every persisted chapter in ascending order separated by a fixed
// divider line. Chapters without an artifact are skipped. Returns the
// chapter numbers that were included.
func (s *Store) Combine(w io.Writer, maxLesson int) ([]int, error) {
	header := "# HSK 1 - Chapters 1-15 (Corrected)\n" +
		"# OCR errors fixed, formatting standardized\n"
	if _, err := io.WriteString(w, header); err != nil {
		return nil, err
	}

	divider := strings.Repeat("=", dividerWidth)
	var included []int
	for n := 1; n <= maxLesson; n++ {
		text, err := s.Read(n)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return included, fmt.Errorf("read chapter %d: %w", n, err)
		}
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", divider, text); err != nil {
			return included, err
		}
		included = append(included, n)
	}
	return included, nil
}
