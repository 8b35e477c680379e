// Command atoms extracts "atom" vocabulary (numerals, stroke-practice
// characters, compound bases) from the corrected chapters via the LLM,
// seeded with the standard vocabulary so the two sets stay disjoint.
// Run the vocab command first; its JSON output is the seed.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/hskpipe/internal/app"
	"github.com/heartmarshall/hskpipe/internal/atoms"
	"github.com/heartmarshall/hskpipe/internal/config"
	"github.com/heartmarshall/hskpipe/internal/corrector"
	"github.com/heartmarshall/hskpipe/internal/domain"
	"github.com/heartmarshall/hskpipe/internal/vocab"
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
		logger.Error("init llm client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	knownWords, err := loadSeedWords(cfg.Paths.Vocabulary)
	if err != nil {
		logger.Error("load seed vocabulary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("seed vocabulary loaded", slog.Int("words", len(knownWords)))

	store, err := corrector.NewStore(cfg.Paths.Chapters)
	if err != nil {
		logger.Error("open chapter store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lessons := make(map[int]string)
	for n := 1; n <= cfg.Book.LessonCount; n++ {
		if text, err := store.Read(n); err == nil {
			lessons[n] = text
		}
	}

	extractor := atoms.NewExtractor(client, cfg.LLM.MaxParallel, cfg.LLM.CallTimeout, logger)
	records := extractor.ExtractAll(ctx, lessons, knownWords)

	out, err := os.Create(cfg.Paths.Atoms)
	if err != nil {
		logger.Error("create atoms file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer out.Close()

	if err := vocab.WriteJSON(out, records); err != nil {
		logger.Error("write atoms", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("atoms extracted",
		slog.Int("records", len(records)),
		slog.String("path", cfg.Paths.Atoms))
}

// loadSeedWords reads the words of a prior vocabulary pass. The file is
// required: atoms are defined relative to the standard vocabulary.
func loadSeedWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []domain.VocabRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	words := make([]string, 0, len(records))
	for _, r := range records {
		words = append(words, r.Word)
	}
	return words, nil
}
