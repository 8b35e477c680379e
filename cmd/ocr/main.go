// Command ocr builds the page dump from a directory of scanned page images.
// Images are processed in filename order; pages where recognition finds no
// text are recorded as empty, not treated as errors.
//
// Requires a binary built with -tags ocr (Tesseract must be installed);
// otherwise it exits with an explanation.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/heartmarshall/hskpipe/internal/app"
	"github.com/heartmarshall/hskpipe/internal/config"
	"github.com/heartmarshall/hskpipe/internal/ocr"
	"github.com/heartmarshall/hskpipe/internal/pagedump"
)

func main() {
	imagesDir := flag.String("images", "pages", "directory of page images")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	engine, err := ocr.NewEngine()
	if err != nil {
		logger.Error("init ocr engine", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer engine.Close()

	pages, err := ocr.ExtractDir(context.Background(), engine, *imagesDir)
	if err != nil {
		logger.Error("extract pages", slog.String("error", err.Error()))
		os.Exit(1)
	}

	f, err := os.Create(cfg.Paths.PageDump)
	if err != nil {
		logger.Error("create page dump", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	if err := pagedump.Write(f, pages); err != nil {
		logger.Error("write page dump", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("page dump written",
		slog.Int("pages", len(pages)),
		slog.String("path", cfg.Paths.PageDump))
}
