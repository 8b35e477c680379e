// Command structure segments the OCR page dump into lessons using the audio
// track markers (NN-t) printed in the book, and writes the structured book
// file with one banner per detected lesson.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"log/slog"
	"os"

	"github.com/heartmarshall/hskpipe/internal/app"
	"github.com/heartmarshall/hskpipe/internal/config"
	"github.com/heartmarshall/hskpipe/internal/pagedump"
	"github.com/heartmarshall/hskpipe/internal/segmenter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	in, err := os.Open(cfg.Paths.PageDump)
	if err != nil {
		logger.Error("open page dump", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer in.Close()

	pages, err := pagedump.Parse(in)
	if err != nil {
		logger.Error("parse page dump", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res := segmenter.Segment(pages, cfg.Book.LessonCount)

	out, err := os.Create(cfg.Paths.Book)
	if err != nil {
		logger.Error("create book file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer out.Close()

	if err := segmenter.WriteBook(out, res); err != nil {
		logger.Error("write book file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("book structured",
		slog.Int("pages", res.Stats.TotalPages),
		slog.Int("assigned_pages", res.Stats.AssignedPages),
		slog.Int("lessons", len(res.Lessons)),
		slog.Int("noise_markers", res.Stats.NoiseMarkers),
		slog.String("path", cfg.Paths.Book))
}
