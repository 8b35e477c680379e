// Package domain holds the core types of the textbook extraction pipeline:
// vocabulary records, part-of-speech categories, and lesson helpers.
package domain

import "strings"

// Source and kind tags carried by every record in the JSON artifacts.
const (
	SourceHSK1 = "hsk1"
	TagAtom    = "atom"
)

// VocabRecord is one extracted vocabulary entry.
// Word is unique across an entire extraction run: the first occurrence wins
// and later duplicates are dropped, regardless of chapter.
type VocabRecord struct {
	Word         string       `json:"word"`
	Pinyin       string       `json:"pinyin"`
	PartOfSpeech PartOfSpeech `json:"part_of_speech"`
	Meaning      string       `json:"meaning"`
	Chapter      int          `json:"chapter"`
	Source       string       `json:"source"`
	Tag          string       `json:"tag,omitempty"`
}

// NormalizeWord prepares a word for storage and duplicate comparison.
// Chinese words carry no case, so only surrounding whitespace is stripped.
func NormalizeWord(word string) string {
	return strings.TrimSpace(word)
}

// chineseNumerals indexes the numerals used in lesson banners (第X课).
// Index 0 is 零 so that lesson numbers map directly.
var chineseNumerals = []string{
	"零", "一", "二", "三", "四", "五", "六", "七", "八", "九", "十",
	"十一", "十二", "十三", "十四", "十五",
}

// ChineseNumeral returns the Chinese numeral for a lesson number.
// Numbers outside the table fall back to the empty string.
func ChineseNumeral(n int) string {
	if n < 0 || n >= len(chineseNumerals) {
		return ""
	}
	return chineseNumerals[n]
}
