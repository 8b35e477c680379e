// Command correct runs every segmented lesson through the LLM correction
// service with bounded parallelism, persists one corrected chapter file per
// lesson, and assembles the combined corrected document. Lessons that
// already have a persisted chapter are skipped, so a partially failed run
// can simply be repeated.
//
// Exit codes: 0 = success, 1 = error (including any lesson failing).
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/hskpipe/internal/app"
	"github.com/heartmarshall/hskpipe/internal/config"
	"github.com/heartmarshall/hskpipe/internal/corrector"
	"github.com/heartmarshall/hskpipe/internal/pagedump"
	"github.com/heartmarshall/hskpipe/internal/segmenter"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	client, err := corrector.NewClient(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.MaxTokens)
	if err != nil {
		logger.Error("init corrector", slog.String("error", err.Error()))
		os.Exit(1)
	}

	in, err := os.Open(cfg.Paths.PageDump)
	if err != nil {
		logger.Error("open page dump", slog.String("error", err.Error()))
		os.Exit(1)
	}
	pages, err := pagedump.Parse(in)
	in.Close()
	if err != nil {
		logger.Error("parse page dump", slog.String("error", err.Error()))
		os.Exit(1)
	}
	res := segmenter.Segment(pages, cfg.Book.LessonCount)

	store, err := corrector.NewStore(cfg.Paths.Chapters)
	if err != nil {
		logger.Error("init chapter store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var structureContext string
	if data, err := os.ReadFile(cfg.Paths.Structure); err == nil {
		structureContext = string(data)
	}

	orch := corrector.NewOrchestrator(client, store, structureContext,
		cfg.LLM.MaxParallel, cfg.LLM.CallTimeout, logger)
	results := orch.CorrectAll(ctx, res.Lessons)

	out, err := os.Create(cfg.Paths.Combined)
	if err != nil {
		logger.Error("create combined file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	included, err := store.Combine(out, cfg.Book.LessonCount)
	out.Close()
	if err != nil {
		logger.Error("write combined file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	logger.Info("correction complete",
		slog.Int("lessons", len(results)),
		slog.Int("failed", failed),
		slog.Int("combined_chapters", len(included)),
		slog.String("path", cfg.Paths.Combined))

	if failed > 0 {
		os.Exit(1)
	}
}
