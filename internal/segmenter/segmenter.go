package segmenter

import (
	"sort"
	"strings"

	"github.com/heartmarshall/hskpipe/internal/pagedump"
)

// unitSeparator joins the pages accumulated into one lesson.
const unitSeparator = "\n\n"

// Stats holds segmentation counters for the summary report.
type Stats struct {
	TotalPages    int
	AssignedPages int // pages that ended up inside some lesson
	SkippedEmpty  int // pages dropped because they were blank after trimming
	NoiseMarkers  int // markers whose lesson number fell outside the valid range
}

// Result is the outcome of one segmentation pass.
type Result struct {
	Lessons map[int]string // lesson number → joined text
	Order   []int          // lesson numbers, ascending
	Stats   Stats
}

// Segment groups pages into lessons in a single ordered pass.
//
// A page whose detected lesson number differs from the current lesson closes
// the running accumulator (stored under the current lesson when one is open)
// and starts a new one. Pages without a valid marker, or repeating the
// current lesson's marker, are appended. Pages blank after trimming are
// dropped. If the same lesson number re-triggers a boundary later in the
// stream, the later run replaces the earlier map entry (last run wins).
//
// Zero detected markers yields an empty Result, never an error: it signals a
// misconfigured or markerless source and is the caller's to report.
func Segment(pages []pagedump.Page, maxLesson int) Result {
	res := Result{Lessons: make(map[int]string)}
	res.Stats.TotalPages = len(pages)

	current := 0 // 0 = no lesson open yet; never a valid map key
	var acc []string

	flush := func() {
		if current > 0 && len(acc) > 0 {
			res.Lessons[current] = strings.Join(acc, unitSeparator)
		}
	}

	for _, p := range pages {
		trimmed := strings.TrimSpace(p.Text)

		if n, ok := DetectLesson(p.Text, maxLesson); ok && n != current {
			flush()
			current = n
			acc = []string{trimmed}
			res.Stats.AssignedPages++
			continue
		}
		if audioMarkerRe.MatchString(p.Text) {
			if _, ok := DetectLesson(p.Text, maxLesson); !ok {
				res.Stats.NoiseMarkers++
			}
		}

		if trimmed == "" {
			res.Stats.SkippedEmpty++
			continue
		}
		acc = append(acc, trimmed)
		if current > 0 {
			res.Stats.AssignedPages++
		}
	}
	flush()

	res.Order = make([]int, 0, len(res.Lessons))
	for n := range res.Lessons {
		res.Order = append(res.Order, n)
	}
	sort.Ints(res.Order)
	return res
}
