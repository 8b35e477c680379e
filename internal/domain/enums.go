package domain

import "strings"

// PartOfSpeech represents the grammatical category of a vocabulary word.
// Values are the lowercase canonical names used in the JSON artifacts.
type PartOfSpeech string

const (
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechParticle     PartOfSpeech = "particle"
	PartOfSpeechNumeral      PartOfSpeech = "numeral"
	PartOfSpeechMeasureWord  PartOfSpeech = "measure_word"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechOther        PartOfSpeech = "other"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechPronoun, PartOfSpeechAdjective, PartOfSpeechVerb,
		PartOfSpeechNoun, PartOfSpeechAdverb, PartOfSpeechPreposition,
		PartOfSpeechConjunction, PartOfSpeechParticle, PartOfSpeechNumeral,
		PartOfSpeechMeasureWord, PartOfSpeechInterjection, PartOfSpeechOther:
		return true
	}
	return false
}

// posMap maps textbook part-of-speech abbreviations (lowercase, with or
// without the trailing period) to canonical PartOfSpeech values.
var posMap = map[string]PartOfSpeech{
	"pron.":        PartOfSpeechPronoun,
	"pron":         PartOfSpeechPronoun,
	"adj.":         PartOfSpeechAdjective,
	"adj":          PartOfSpeechAdjective,
	"v.":           PartOfSpeechVerb,
	"v":            PartOfSpeechVerb,
	"verb":         PartOfSpeechVerb,
	"n.":           PartOfSpeechNoun,
	"n":            PartOfSpeechNoun,
	"noun":         PartOfSpeechNoun,
	"adv.":         PartOfSpeechAdverb,
	"adv":          PartOfSpeechAdverb,
	"prep.":        PartOfSpeechPreposition,
	"prep":         PartOfSpeechPreposition,
	"conj.":        PartOfSpeechConjunction,
	"conj":         PartOfSpeechConjunction,
	"part.":        PartOfSpeechParticle,
	"part":         PartOfSpeechParticle,
	"particle":     PartOfSpeechParticle,
	"num.":         PartOfSpeechNumeral,
	"num":          PartOfSpeechNumeral,
	"numeral":      PartOfSpeechNumeral,
	"m.":           PartOfSpeechMeasureWord,
	"m":            PartOfSpeechMeasureWord,
	"mw.":          PartOfSpeechMeasureWord,
	"mw":           PartOfSpeechMeasureWord,
	"measure word": PartOfSpeechMeasureWord,
	"interj.":      PartOfSpeechInterjection,
	"interj":       PartOfSpeechInterjection,
}

// NormalizePOS converts a textbook abbreviation like "pron." or "ADJ" to the
// canonical PartOfSpeech. The lookup is case-insensitive; anything unmapped
// becomes PartOfSpeechOther.
func NormalizePOS(abbrev string) PartOfSpeech {
	if pos, ok := posMap[strings.ToLower(strings.TrimSpace(abbrev))]; ok {
		return pos
	}
	return PartOfSpeechOther
}
