// Command vocab-import loads the extracted vocabulary and atom JSON
// artifacts into PostgreSQL. Words already present in the database are
// skipped, so the import is idempotent and can follow incremental pipeline
// re-runs.
//
// Requires DATABASE_DSN. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/hskpipe/internal/adapter/postgres"
	"github.com/heartmarshall/hskpipe/internal/adapter/postgres/vocabrepo"
	"github.com/heartmarshall/hskpipe/internal/app"
	"github.com/heartmarshall/hskpipe/internal/config"
	"github.com/heartmarshall/hskpipe/internal/domain"
)

func main() {
	withAtoms := flag.Bool("atoms", true, "also import the atoms artifact if present")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	if cfg.Database.DSN == "" {
		logger.Error("DATABASE_DSN is required for import")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := vocabrepo.New(pool)

	records, err := readRecords(cfg.Paths.Vocabulary)
	if err != nil {
		logger.Error("read vocabulary artifact", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *withAtoms {
		atoms, err := readRecords(cfg.Paths.Atoms)
		if err == nil {
			records = append(records, atoms...)
		} else if !os.IsNotExist(err) {
			logger.Error("read atoms artifact", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	inserted, err := repo.BulkInsert(ctx, records)
	if err != nil {
		logger.Error("bulk insert", slog.String("error", err.Error()))
		os.Exit(1)
	}

	total, err := repo.CountBySource(ctx, domain.SourceHSK1)
	if err != nil {
		logger.Error("count records", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete",
		slog.Int("read", len(records)),
		slog.Int("inserted", inserted),
		slog.Int("skipped", len(records)-inserted),
		slog.Int("total_in_db", total))
}

func readRecords(path string) ([]domain.VocabRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []domain.VocabRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
