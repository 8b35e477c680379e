package domain

import "testing"

func TestNormalizePOS(t *testing.T) {
	tests := []struct {
		abbrev string
		want   PartOfSpeech
	}{
		{"pron.", PartOfSpeechPronoun},
		{"pron", PartOfSpeechPronoun},
		{"adj.", PartOfSpeechAdjective},
		{"v.", PartOfSpeechVerb},
		{"verb", PartOfSpeechVerb},
		{"n.", PartOfSpeechNoun},
		{"noun", PartOfSpeechNoun},
		{"adv.", PartOfSpeechAdverb},
		{"prep.", PartOfSpeechPreposition},
		{"conj.", PartOfSpeechConjunction},
		{"part.", PartOfSpeechParticle},
		{"particle", PartOfSpeechParticle},
		{"num.", PartOfSpeechNumeral},
		{"m.", PartOfSpeechMeasureWord},
		{"mw.", PartOfSpeechMeasureWord},
		{"measure word", PartOfSpeechMeasureWord},
		{"interj.", PartOfSpeechInterjection},
		{"V.", PartOfSpeechVerb},     // case-insensitive
		{"  adj  ", PartOfSpeechAdjective}, // surrounding whitespace
		{"xyz", PartOfSpeechOther},
		{"", PartOfSpeechOther},
	}

	for _, tt := range tests {
		t.Run(tt.abbrev, func(t *testing.T) {
			if got := NormalizePOS(tt.abbrev); got != tt.want {
				t.Errorf("NormalizePOS(%q) = %q, want %q", tt.abbrev, got, tt.want)
			}
		})
	}
}

func TestPartOfSpeechIsValid(t *testing.T) {
	valid := []PartOfSpeech{
		PartOfSpeechPronoun, PartOfSpeechAdjective, PartOfSpeechVerb,
		PartOfSpeechNoun, PartOfSpeechAdverb, PartOfSpeechPreposition,
		PartOfSpeechConjunction, PartOfSpeechParticle, PartOfSpeechNumeral,
		PartOfSpeechMeasureWord, PartOfSpeechInterjection, PartOfSpeechOther,
	}
	for _, p := range valid {
		if !p.IsValid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if PartOfSpeech("VERB").IsValid() {
		t.Error("uppercase value should not be valid")
	}
	if PartOfSpeech("").IsValid() {
		t.Error("empty value should not be valid")
	}
}

func TestChineseNumeral(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "零"},
		{1, "一"},
		{10, "十"},
		{11, "十一"},
		{15, "十五"},
		{16, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := ChineseNumeral(tt.n); got != tt.want {
			t.Errorf("ChineseNumeral(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNormalizeWord(t *testing.T) {
	if got := NormalizeWord("  谢谢 "); got != "谢谢" {
		t.Errorf("NormalizeWord: got %q", got)
	}
	if got := NormalizeWord(""); got != "" {
		t.Errorf("NormalizeWord empty: got %q", got)
	}
}
