// Package vocab extracts structured vocabulary records from corrected
// chapter text.
package vocab

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/hskpipe/internal/domain"
)

// pinyinToken matches one or two space-separated romanized syllables using
// the accented-vowel alphabet produced by the correction pass.
const pinyinToken = `[a-zA-Züǖǘǚǜāáǎàēéěèīíǐìōóǒòūúǔù]+(?:\s+[a-zA-Züǖǘǚǜāáǎàēéěèīíǐìōóǒòūúǔù]+)?`

// posToken matches an explicit part-of-speech abbreviation, with or without
// the trailing period.
const posToken = `(?:pron|adj|v|n|adv|prep|conj|part|num|m|mw|interj)\.?`

var (
	// candidateRe gates which lines are even considered: an ordinal marker
	// followed by content. Everything else (headers, dialogue, noise) is
	// skipped without error.
	candidateRe = regexp.MustCompile(`^\d+\.\s+\S`)

	ordinalWordRe = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)
	taggedRe      = regexp.MustCompile(`(?i)^(\d+)\.\s*(\S+)\s+(` + pinyinToken + `)\s+(` + posToken + `)\s*(.+)$`)
	untaggedRe    = regexp.MustCompile(`(?i)^(\d+)\.\s*(\S+)\s+(` + pinyinToken + `)\s+(.+)$`)
	posPrefixRe   = regexp.MustCompile(`(?i)^(` + posToken + `)\s*(.+)$`)
)

// A strategy attempts to parse one candidate line into a record. Strategies
// are pure; ordering and fallback live in the list below.
type strategy func(line string) (domain.VocabRecord, bool)

// strategies is the fixed-priority cascade. The delimited form is the most
// structured and always tried first; a line matching several forms is parsed
// by the earliest.
var strategies = []strategy{
	parseDelimited,
	parseTagged,
	parseUntagged,
}

// IsCandidate reports whether a line starts with an ordinal marker and so
// may hold a vocabulary entry.
func IsCandidate(line string) bool {
	return candidateRe.MatchString(line)
}

// ParseLine runs the cascade over one candidate line. A line matching no
// strategy yields (zero, false); OCR noise is expected and not an error.
func ParseLine(line string) (domain.VocabRecord, bool) {
	line = strings.TrimSpace(line)
	for _, try := range strategies {
		if rec, ok := try(line); ok {
			return rec, true
		}
	}
	return domain.VocabRecord{}, false
}

// parseDelimited handles the pipe-separated form:
//
//	3. 谢谢 | xièxie | v. | to thank
//
// With only three columns the part of speech is absent and the last column
// is the meaning.
func parseDelimited(line string) (domain.VocabRecord, bool) {
	if !strings.Contains(line, "|") {
		return domain.VocabRecord{}, false
	}
	parts := strings.Split(line, "|")
	if len(parts) < 3 {
		return domain.VocabRecord{}, false
	}

	m := ordinalWordRe.FindStringSubmatch(strings.TrimSpace(parts[0]))
	if m == nil {
		return domain.VocabRecord{}, false
	}
	word := strings.TrimSpace(m[2])
	pinyin := strings.TrimSpace(parts[1])
	if word == "" || pinyin == "" {
		return domain.VocabRecord{}, false
	}

	pos, meaning := "", ""
	if len(parts) >= 4 {
		pos = strings.TrimSpace(parts[2])
		meaning = strings.TrimSpace(parts[3])
	} else {
		meaning = strings.TrimSpace(parts[2])
	}

	return domain.VocabRecord{
		Word:         word,
		Pinyin:       pinyin,
		PartOfSpeech: domain.NormalizePOS(pos),
		Meaning:      meaning,
	}, true
}

// parseTagged handles the space-separated form with an explicit
// part-of-speech abbreviation:
//
//	1. 你 nǐ pron. (singular) you
func parseTagged(line string) (domain.VocabRecord, bool) {
	m := taggedRe.FindStringSubmatch(line)
	if m == nil {
		return domain.VocabRecord{}, false
	}
	return domain.VocabRecord{
		Word:         strings.TrimSpace(m[2]),
		Pinyin:       strings.TrimSpace(m[3]),
		PartOfSpeech: domain.NormalizePOS(m[4]),
		Meaning:      strings.TrimSpace(m[5]),
	}, true
}

// parseUntagged handles the space-separated form without a recognizable
// part-of-speech token; the whole remainder is meaning. An abbreviation-like
// prefix buried in the remainder is still peeled off and reclassified.
func parseUntagged(line string) (domain.VocabRecord, bool) {
	m := untaggedRe.FindStringSubmatch(line)
	if m == nil {
		return domain.VocabRecord{}, false
	}
	meaning := strings.TrimSpace(m[4])

	pos := domain.PartOfSpeechOther
	if pm := posPrefixRe.FindStringSubmatch(meaning); pm != nil {
		pos = domain.NormalizePOS(pm[1])
		meaning = strings.TrimSpace(pm[2])
	}

	return domain.VocabRecord{
		Word:         strings.TrimSpace(m[2]),
		Pinyin:       strings.TrimSpace(m[3]),
		PartOfSpeech: pos,
		Meaning:      meaning,
	}, true
}
