package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hskpipe/internal/config"
	"github.com/heartmarshall/hskpipe/internal/corrector"
	"github.com/heartmarshall/hskpipe/internal/pipeline"
)

// Run is the full-pipeline entry point. It loads configuration, initializes
// the logger and the correction client, and executes every stage from the
// OCR page dump through the vocabulary artifact.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting pipeline",
		slog.String("version", BuildVersion()),
		slog.Int("lessons", cfg.Book.LessonCount),
		slog.Int("max_parallel", cfg.LLM.MaxParallel),
	)

	client, err := corrector.NewClient(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.MaxTokens)
	if err != nil {
		return err
	}

	_, err = pipeline.New(cfg, client, logger).Run(ctx)
	return err
}
