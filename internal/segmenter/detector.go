// Package segmenter groups OCR'd pages into lessons by detecting the
// textbook's embedded audio markers ("01-1", "02-3", ...). The two-digit
// prefix is the lesson number; the suffix is the audio track within it.
package segmenter

import (
	"regexp"
	"strconv"
)

// audioMarkerRe matches an audio marker like "03-2": two-digit lesson
// number, dash, track digit.
var audioMarkerRe = regexp.MustCompile(`(\d{2})-\d`)

// firstTrackRe matches a lesson's first audio track ("NN-1"), which only
// appears on a lesson's opening page.
var firstTrackRe = regexp.MustCompile(`(\d{2})-1\b`)

// textHeaderRe matches the "课文 Text" section header that opens a lesson's
// dialogue section. Kept as a secondary heuristic only; the audio marker is
// the sole boundary authority so the two cannot double-trigger.
var textHeaderRe = regexp.MustCompile(`课文\s*\nText`)

// DetectLesson scans a page's text for an audio marker and returns the
// candidate lesson number. Candidates outside [1, maxLesson] are OCR
// artifacts (page numbers, exercise numbering) and report no detection.
func DetectLesson(text string, maxLesson int) (int, bool) {
	m := audioMarkerRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > maxLesson {
		return 0, false
	}
	return n, true
}

// DetectLessonStart reports whether a page looks like the opening page of a
// lesson: either a first-track marker ("NN-1") near the start or a 课文
// header. Content heuristic only; it carries no lesson number and is not
// used for boundary decisions.
func DetectLessonStart(text string) bool {
	window := text
	if len(window) > 200 {
		window = window[:200]
	}
	if firstTrackRe.MatchString(window) {
		return true
	}
	return textHeaderRe.MatchString(text)
}
