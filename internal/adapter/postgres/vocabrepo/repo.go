// Package vocabrepo persists extracted vocabulary records for downstream
// import into the learning database.
package vocabrepo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hskpipe/internal/domain"
)

// Repo is the vocab_records repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a Repo over an existing pool.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// BulkInsert inserts records using pgx.Batch. Words already present are
// skipped via ON CONFLICT DO NOTHING, mirroring the extraction pipeline's
// first-occurrence-wins rule. Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, records []domain.VocabRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(
			`INSERT INTO vocab_records (id, word, pinyin, part_of_speech, meaning, chapter, source, tag)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (word) DO NOTHING`,
			uuid.New(), rec.Word, rec.Pinyin, string(rec.PartOfSpeech),
			rec.Meaning, rec.Chapter, rec.Source, nilIfEmpty(rec.Tag),
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// CountBySource returns the number of stored records for one source.
func (r *Repo) CountBySource(ctx context.Context, source string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM vocab_records WHERE source = $1`, source,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by source: %w", err)
	}
	return count, nil
}

// ListByChapter returns the records of one chapter ordered by word.
func (r *Repo) ListByChapter(ctx context.Context, chapter int) ([]domain.VocabRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT word, pinyin, part_of_speech, meaning, chapter, source, COALESCE(tag, '')
		 FROM vocab_records WHERE chapter = $1 ORDER BY word`, chapter,
	)
	if err != nil {
		return nil, fmt.Errorf("list by chapter: %w", err)
	}
	defer rows.Close()

	var records []domain.VocabRecord
	for rows.Next() {
		var rec domain.VocabRecord
		var pos string
		if err := rows.Scan(&rec.Word, &rec.Pinyin, &pos, &rec.Meaning, &rec.Chapter, &rec.Source, &rec.Tag); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.PartOfSpeech = domain.PartOfSpeech(pos)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// nilIfEmpty returns nil for empty strings so the tag column stays NULL
// rather than holding empty text.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
