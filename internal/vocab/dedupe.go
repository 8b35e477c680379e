package vocab

import "github.com/heartmarshall/hskpipe/internal/domain"

// Deduper is the single-owner accumulator for accepted words. First
// occurrence in processing order always wins; duplicates are dropped, never
// merged. It is not safe for concurrent use: concurrent producers must
// funnel records through one sequential consumer.
type Deduper struct {
	seen map[string]struct{}
}

// NewDeduper builds a Deduper, optionally seeded with words already accepted
// by a prior pass. Seeded words are rejected exactly like in-run duplicates.
func NewDeduper(seed []string) *Deduper {
	seen := make(map[string]struct{}, len(seed))
	for _, w := range seed {
		seen[domain.NormalizeWord(w)] = struct{}{}
	}
	return &Deduper{seen: seen}
}

// Accept records the word and reports true if it was not seen before.
func (d *Deduper) Accept(word string) bool {
	w := domain.NormalizeWord(word)
	if _, dup := d.seen[w]; dup {
		return false
	}
	d.seen[w] = struct{}{}
	return true
}

// Len returns the number of distinct words accepted or seeded so far.
func (d *Deduper) Len() int { return len(d.seen) }
