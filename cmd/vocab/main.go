// Command vocab extracts structured vocabulary records from the persisted
// corrected chapters and writes them as a JSON array ordered by chapter,
// then word. Duplicate words across chapters keep their first occurrence.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"log/slog"
	"os"

	"github.com/heartmarshall/hskpipe/internal/app"
	"github.com/heartmarshall/hskpipe/internal/config"
	"github.com/heartmarshall/hskpipe/internal/corrector"
	"github.com/heartmarshall/hskpipe/internal/vocab"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	store, err := corrector.NewStore(cfg.Paths.Chapters)
	if err != nil {
		logger.Error("open chapter store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := vocab.ExtractAll(store, cfg.Book.LessonCount, nil, logger)
	if err != nil {
		logger.Error("extract vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	out, err := os.Create(cfg.Paths.Vocabulary)
	if err != nil {
		logger.Error("create vocabulary file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer out.Close()

	if err := vocab.WriteJSON(out, res.Records); err != nil {
		logger.Error("write vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("vocabulary extracted",
		slog.Int("records", len(res.Records)),
		slog.Int("chapters", len(res.PerChapter)),
		slog.String("path", cfg.Paths.Vocabulary))
}
