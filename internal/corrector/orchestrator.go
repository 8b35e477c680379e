// Package corrector runs OCR'd lesson text through the external correction
// service with bounded parallelism and per-lesson durable checkpoints.
package corrector

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultMaxParallel is the correction worker-pool width.
const DefaultMaxParallel = 5

// Result is the outcome of one chapter's correction. Exactly one Result is
// produced per dispatched chapter; a failure is captured here instead of
// propagating to sibling tasks.
type Result struct {
	Chapter int
	Text    string // corrected text, empty on failure
	Err     string // failure reason, empty on success
	Skipped bool   // artifact already existed; the corrector was not invoked
}

// OK reports whether the chapter has usable corrected output.
func (r Result) OK() bool { return r.Err == "" }

// Orchestrator fans chapter corrections out over a bounded worker pool and
// persists each result the moment its task completes.
type Orchestrator struct {
	corrector        TextCorrector
	store            *Store
	structureContext string
	maxParallel      int
	callTimeout      time.Duration
	log              *slog.Logger
}

// NewOrchestrator wires the correction layer. structureContext is the shared
// book-structure analysis embedded (truncated) into every prompt; it may be
// empty. maxParallel <= 0 falls back to DefaultMaxParallel.
func NewOrchestrator(c TextCorrector, store *Store, structureContext string, maxParallel int, callTimeout time.Duration, log *slog.Logger) *Orchestrator {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	if callTimeout <= 0 {
		callTimeout = 5 * time.Minute
	}
	return &Orchestrator{
		corrector:        c,
		store:            store,
		structureContext: structureContext,
		maxParallel:      maxParallel,
		callTimeout:      callTimeout,
		log:              log,
	}
}

// CorrectAll corrects every lesson concurrently, at most maxParallel at a
// time, and returns one Result per dispatched lesson keyed by chapter
// number. Per-chapter artifacts are written in completion order, before the
// batch finishes; chapters whose artifact already exists are skipped without
// invoking the corrector. A failed or timed-out chapter never blocks or
// aborts the others.
func (o *Orchestrator) CorrectAll(ctx context.Context, lessons map[int]string) map[int]Result {
	results := make(map[int]Result, len(lessons))
	resultCh := make(chan Result)

	// Single consumer owns the results map: tasks report over the channel
	// instead of locking shared state.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range resultCh {
			results[r.Chapter] = r
			switch {
			case r.Skipped:
				o.log.Info("chapter already corrected, skipping", slog.Int("chapter", r.Chapter))
			case r.OK():
				o.log.Info("chapter corrected", slog.Int("chapter", r.Chapter), slog.Int("chars", len(r.Text)))
			default:
				o.log.Error("chapter correction failed", slog.Int("chapter", r.Chapter), slog.String("error", r.Err))
			}
		}
	}()

	g := new(errgroup.Group)
	g.SetLimit(o.maxParallel)
	for chapter, content := range lessons {
		g.Go(func() error {
			resultCh <- o.correctOne(ctx, chapter, content)
			return nil
		})
	}
	// Tasks never return errors; failures ride inside Result.
	_ = g.Wait()
	close(resultCh)
	<-done

	return results
}

// correctOne handles a single chapter: resume check, one corrector call
// under the per-call timeout, durable write.
func (o *Orchestrator) correctOne(ctx context.Context, chapter int, content string) Result {
	if o.store.Exists(chapter) {
		return Result{Chapter: chapter, Skipped: true}
	}

	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	corrected, err := o.corrector.Correct(callCtx, buildPrompt(chapter, content, o.structureContext))
	if err != nil {
		return Result{Chapter: chapter, Err: err.Error()}
	}

	if err := o.store.Write(chapter, corrected); err != nil {
		return Result{Chapter: chapter, Err: err.Error()}
	}
	return Result{Chapter: chapter, Text: corrected}
}
