// Package pipeline sequences the full extraction run: page dump →
// segmentation → correction → combined document → vocabulary. Every stage
// degrades to partial output; only configuration errors (missing input
// artifact, missing credential) abort the run.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/heartmarshall/hskpipe/internal/config"
	"github.com/heartmarshall/hskpipe/internal/corrector"
	"github.com/heartmarshall/hskpipe/internal/domain"
	"github.com/heartmarshall/hskpipe/internal/pagedump"
	"github.com/heartmarshall/hskpipe/internal/segmenter"
	"github.com/heartmarshall/hskpipe/internal/vocab"
)

// LessonReport is the per-lesson slice of the final report.
type LessonReport struct {
	Corrected  bool   `json:"corrected"`
	Skipped    bool   `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
	Parsed     int    `json:"parsed"`
	Unparsed   int    `json:"unparsed"`
	Duplicates int    `json:"duplicates"`
}

// Report summarizes a pipeline run. MissingChapters makes it unambiguous
// which lessons need a re-run; resumability guarantees the re-run touches
// only those.
type Report struct {
	Lessons         int                   `json:"lessons"`
	Corrected       int                   `json:"corrected"`
	Failed          int                   `json:"failed"`
	Skipped         int                   `json:"skipped"`
	Records         int                   `json:"records"`
	Duplicates      int                   `json:"duplicates"`
	UnparsedLines   int                   `json:"unparsed_lines"`
	MissingChapters []int                 `json:"missing_chapters"`
	PerLesson       map[int]*LessonReport `json:"per_lesson"`
}

// Pipeline owns the stage wiring for one run.
type Pipeline struct {
	cfg *config.Config
	llm corrector.TextCorrector
	log *slog.Logger
}

// New builds a pipeline over an already-constructed corrector client.
func New(cfg *config.Config, llm corrector.TextCorrector, log *slog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, llm: llm, log: log}
}

// Run executes the full pipeline and writes every artifact it can, then the
// report. The returned Report is also persisted to cfg.Paths.Report.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	pages, err := p.loadPages()
	if err != nil {
		return nil, err
	}

	seg := segmenter.Segment(pages, p.cfg.Book.LessonCount)
	p.log.Info("segmentation complete",
		slog.Int("pages", seg.Stats.TotalPages),
		slog.Int("lessons", len(seg.Lessons)),
		slog.Int("noise_markers", seg.Stats.NoiseMarkers))
	if err := p.writeBook(seg); err != nil {
		return nil, err
	}

	store, err := corrector.NewStore(p.cfg.Paths.Chapters)
	if err != nil {
		return nil, err
	}

	orch := corrector.NewOrchestrator(p.llm, store, p.structureContext(),
		p.cfg.LLM.MaxParallel, p.cfg.LLM.CallTimeout, p.log)
	results := orch.CorrectAll(ctx, seg.Lessons)

	if err := p.writeCombined(store); err != nil {
		return nil, err
	}

	extracted, err := vocab.ExtractAll(store, p.cfg.Book.LessonCount, nil, p.log)
	if err != nil {
		return nil, err
	}
	if err := p.writeVocabulary(extracted.Records); err != nil {
		return nil, err
	}

	report := p.buildReport(results, extracted)
	if err := p.writeReport(report); err != nil {
		return nil, err
	}

	p.log.Info("pipeline complete",
		slog.Int("corrected", report.Corrected),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
		slog.Int("records", report.Records),
		slog.Any("missing_chapters", report.MissingChapters))
	return report, nil
}

// loadPages reads and parses the OCR page dump. Its absence is a
// configuration error: nothing downstream can run without it.
func (p *Pipeline) loadPages() ([]pagedump.Page, error) {
	f, err := os.Open(p.cfg.Paths.PageDump)
	if err != nil {
		return nil, fmt.Errorf("page dump %s: %w", p.cfg.Paths.PageDump, err)
	}
	defer f.Close()

	pages, err := pagedump.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse page dump: %w", err)
	}
	return pages, nil
}

// structureContext loads the shared book-structure analysis if present.
// Its absence is fine; the orchestrator falls back to a fixed description.
func (p *Pipeline) structureContext() string {
	data, err := os.ReadFile(p.cfg.Paths.Structure)
	if err != nil {
		return ""
	}
	return string(data)
}

func (p *Pipeline) writeBook(seg segmenter.Result) error {
	f, err := os.Create(p.cfg.Paths.Book)
	if err != nil {
		return fmt.Errorf("create book file: %w", err)
	}
	defer f.Close()
	return segmenter.WriteBook(f, seg)
}

func (p *Pipeline) writeCombined(store *corrector.Store) error {
	f, err := os.Create(p.cfg.Paths.Combined)
	if err != nil {
		return fmt.Errorf("create combined file: %w", err)
	}
	defer f.Close()
	_, err = store.Combine(f, p.cfg.Book.LessonCount)
	return err
}

func (p *Pipeline) writeVocabulary(records []domain.VocabRecord) error {
	f, err := os.Create(p.cfg.Paths.Vocabulary)
	if err != nil {
		return fmt.Errorf("create vocabulary file: %w", err)
	}
	defer f.Close()
	return vocab.WriteJSON(f, records)
}

func (p *Pipeline) writeReport(report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.cfg.Paths.Report, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// buildReport merges correction outcomes and extraction stats into the
// final run summary.
func (p *Pipeline) buildReport(results map[int]corrector.Result, extracted vocab.ExtractResult) *Report {
	report := &Report{
		Lessons:         len(results),
		Records:         len(extracted.Records),
		MissingChapters: []int{},
		PerLesson:       make(map[int]*LessonReport, len(results)),
	}

	for n, r := range results {
		lr := &LessonReport{Corrected: r.OK(), Skipped: r.Skipped, Error: r.Err}
		report.PerLesson[n] = lr
		switch {
		case r.Skipped:
			report.Skipped++
		case r.OK():
			report.Corrected++
		default:
			report.Failed++
		}
	}

	for n, stats := range extracted.PerChapter {
		lr, ok := report.PerLesson[n]
		if !ok {
			lr = &LessonReport{Corrected: true}
			report.PerLesson[n] = lr
		}
		lr.Parsed = stats.Parsed
		lr.Unparsed = stats.Unparsed
		lr.Duplicates = stats.Duplicates
		report.Duplicates += stats.Duplicates
		report.UnparsedLines += stats.Unparsed
	}

	for n := 1; n <= p.cfg.Book.LessonCount; n++ {
		if _, ok := extracted.PerChapter[n]; !ok {
			report.MissingChapters = append(report.MissingChapters, n)
		}
	}
	sort.Ints(report.MissingChapters)
	return report
}
