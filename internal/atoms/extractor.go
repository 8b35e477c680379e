// Package atoms extracts "atom" vocabulary from corrected chapters: simple
// terms (numerals, stroke-practice characters, base characters of compounds)
// that the textbook uses but never lists in its New Words sections. Atoms
// are mutually exclusive with the standard vocabulary pass, so extraction is
// seeded with the words that pass already produced.
package atoms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hskpipe/internal/corrector"
	"github.com/heartmarshall/hskpipe/internal/domain"
	"github.com/heartmarshall/hskpipe/internal/vocab"
)

// rawAtom is one entry as the model emits it. Context is extraction
// guidance only and is dropped from the final records.
type rawAtom struct {
	Word         string `json:"word"`
	Pinyin       string `json:"pinyin"`
	PartOfSpeech string `json:"part_of_speech"`
	Meaning      string `json:"meaning"`
	Context      string `json:"context"`
}

type chapterAtoms struct {
	chapter int
	atoms   []rawAtom
	err     error
}

// Extractor fans per-chapter atom extraction out over a bounded pool. A
// chapter whose extraction fails degrades to zero atoms and is logged, never
// fatal.
type Extractor struct {
	llm         corrector.TextCorrector
	maxParallel int
	callTimeout time.Duration
	log         *slog.Logger
}

// NewExtractor wires the atom-extraction layer. maxParallel <= 0 falls back
// to the correction pool default.
func NewExtractor(llm corrector.TextCorrector, maxParallel int, callTimeout time.Duration, log *slog.Logger) *Extractor {
	if maxParallel <= 0 {
		maxParallel = corrector.DefaultMaxParallel
	}
	if callTimeout <= 0 {
		callTimeout = 5 * time.Minute
	}
	return &Extractor{llm: llm, maxParallel: maxParallel, callTimeout: callTimeout, log: log}
}

// ExtractAll extracts atoms from every chapter concurrently, then merges the
// per-chapter results in ascending chapter order, de-duplicating against
// knownWords and against atoms already accepted from earlier chapters. The
// returned records are ordered by (chapter ascending, word ascending).
func (e *Extractor) ExtractAll(ctx context.Context, lessons map[int]string, knownWords []string) []domain.VocabRecord {
	byChapter := make(map[int][]rawAtom, len(lessons))

	resultCh := make(chan chapterAtoms)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range resultCh {
			if r.err != nil {
				e.log.Error("atom extraction failed",
					slog.Int("chapter", r.chapter), slog.String("error", r.err.Error()))
				continue
			}
			byChapter[r.chapter] = r.atoms
			e.log.Info("chapter atoms extracted",
				slog.Int("chapter", r.chapter), slog.Int("atoms", len(r.atoms)))
		}
	}()

	g := new(errgroup.Group)
	g.SetLimit(e.maxParallel)
	for chapter, content := range lessons {
		g.Go(func() error {
			atoms, err := e.extractOne(ctx, chapter, content, knownWords)
			resultCh <- chapterAtoms{chapter: chapter, atoms: atoms, err: err}
			return nil
		})
	}
	_ = g.Wait()
	close(resultCh)
	<-done

	return e.merge(byChapter, knownWords)
}

// extractOne runs one model call for a chapter and decodes the JSON array
// from its response.
func (e *Extractor) extractOne(ctx context.Context, chapter int, content string, knownWords []string) ([]rawAtom, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	resp, err := e.llm.Correct(callCtx, buildPrompt(chapter, content, knownWords))
	if err != nil {
		return nil, err
	}

	payload, err := extractJSONArray(resp)
	if err != nil {
		return nil, err
	}
	var atoms []rawAtom
	if err := json.Unmarshal([]byte(payload), &atoms); err != nil {
		return nil, fmt.Errorf("decode atoms: %w", err)
	}
	return atoms, nil
}

// merge combines per-chapter atoms in ascending chapter order, first
// occurrence winning against both the seed words and earlier chapters, then
// orders the result by (chapter, word).
func (e *Extractor) merge(byChapter map[int][]rawAtom, knownWords []string) []domain.VocabRecord {
	chapters := make([]int, 0, len(byChapter))
	for n := range byChapter {
		chapters = append(chapters, n)
	}
	sort.Ints(chapters)

	dedup := vocab.NewDeduper(knownWords)
	var records []domain.VocabRecord
	for _, n := range chapters {
		for _, a := range byChapter[n] {
			if !dedup.Accept(a.Word) {
				e.log.Info("skipping duplicate atom",
					slog.String("word", a.Word), slog.Int("chapter", n))
				continue
			}
			records = append(records, domain.VocabRecord{
				Word:         domain.NormalizeWord(a.Word),
				Pinyin:       strings.TrimSpace(a.Pinyin),
				PartOfSpeech: normalizePOS(a.PartOfSpeech),
				Meaning:      strings.TrimSpace(a.Meaning),
				Chapter:      n,
				Source:       domain.SourceHSK1,
				Tag:          domain.TagAtom,
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Chapter != records[j].Chapter {
			return records[i].Chapter < records[j].Chapter
		}
		return records[i].Word < records[j].Word
	})
	return records
}

// normalizePOS accepts both canonical category names (what the prompt asks
// for) and textbook abbreviations (what the model sometimes emits anyway).
func normalizePOS(s string) domain.PartOfSpeech {
	if p := domain.PartOfSpeech(strings.ToLower(strings.TrimSpace(s))); p.IsValid() {
		return p
	}
	return domain.NormalizePOS(s)
}

// extractJSONArray pulls the JSON array out of a model response, tolerating
// markdown code fences and surrounding prose.
func extractJSONArray(resp string) (string, error) {
	s := strings.TrimSpace(resp)
	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+len("```"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON array in response")
	}
	return s[start : end+1], nil
}
