// Command pipeline runs the full extraction pipeline: it reads the OCR page
// dump, segments it into lessons, corrects every lesson through the LLM with
// bounded parallelism, assembles the combined corrected document and
// extracts the vocabulary JSON, then writes a machine-readable run report.
//
// Re-runs skip lessons that already have a persisted corrected chapter, so
// a partially failed run can be repeated to fill exactly the gaps.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/hskpipe/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
