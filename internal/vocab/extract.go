package vocab

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/heartmarshall/hskpipe/internal/corrector"
	"github.com/heartmarshall/hskpipe/internal/domain"
)

// ChapterStats counts line-level outcomes for one chapter, surfaced in the
// pipeline summary for auditability.
type ChapterStats struct {
	Candidates int `json:"candidates"`
	Parsed     int `json:"parsed"`
	Unparsed   int `json:"unparsed"`
	Duplicates int `json:"duplicates"`
}

// ExtractResult is the outcome of a full extraction pass.
type ExtractResult struct {
	Records    []domain.VocabRecord
	PerChapter map[int]ChapterStats
}

// ParseChapter scans one chapter's corrected text and parses every candidate
// line. Records are returned in line order; de-duplication is the caller's
// concern.
func ParseChapter(text string, chapter int) ([]domain.VocabRecord, ChapterStats) {
	var (
		records []domain.VocabRecord
		stats   ChapterStats
	)
	for _, line := range strings.Split(text, "\n") {
		if !IsCandidate(line) {
			continue
		}
		stats.Candidates++
		rec, ok := ParseLine(line)
		if !ok {
			stats.Unparsed++
			continue
		}
		rec.Chapter = chapter
		rec.Source = domain.SourceHSK1
		records = append(records, rec)
		stats.Parsed++
	}
	return records, stats
}

// ExtractAll reads persisted chapters 1..maxLesson in ascending order,
// parses their vocabulary lines and de-duplicates by word, first occurrence
// winning. Chapters without a persisted artifact are skipped. The returned
// records are ordered by (chapter ascending, word ascending).
func ExtractAll(store *corrector.Store, maxLesson int, dedup *Deduper, log *slog.Logger) (ExtractResult, error) {
	res := ExtractResult{PerChapter: make(map[int]ChapterStats)}
	if dedup == nil {
		dedup = NewDeduper(nil)
	}

	for n := 1; n <= maxLesson; n++ {
		text, err := store.Read(n)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return res, fmt.Errorf("read chapter %d: %w", n, err)
		}

		records, stats := ParseChapter(text, n)
		for _, rec := range records {
			if !dedup.Accept(rec.Word) {
				stats.Duplicates++
				log.Info("skipping duplicate word",
					slog.String("word", rec.Word), slog.Int("chapter", n))
				continue
			}
			res.Records = append(res.Records, rec)
		}
		res.PerChapter[n] = stats

		log.Info("chapter extracted",
			slog.Int("chapter", n),
			slog.Int("parsed", stats.Parsed),
			slog.Int("unparsed", stats.Unparsed),
			slog.Int("duplicates", stats.Duplicates))
	}

	sortRecords(res.Records)
	return res, nil
}

// sortRecords orders records by (chapter ascending, word ascending), the
// canonical order of the vocabulary artifact.
func sortRecords(records []domain.VocabRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Chapter != records[j].Chapter {
			return records[i].Chapter < records[j].Chapter
		}
		return records[i].Word < records[j].Word
	})
}

// WriteJSON serializes records as an indented JSON array.
func WriteJSON(w io.Writer, records []domain.VocabRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}
