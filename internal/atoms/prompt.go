package atoms

import (
	"fmt"
	"sort"
	"strings"
)

// maxSeedWords caps how many already-known words are listed in the prompt
// for exclusion context.
const maxSeedWords = 100

// buildPrompt creates the atom-extraction prompt for one chapter. knownWords
// are the words from the standard vocabulary pass; the model is told to
// exclude them.
func buildPrompt(chapter int, content string, knownWords []string) string {
	sorted := make([]string, len(knownWords))
	copy(sorted, knownWords)
	sort.Strings(sorted)
	if len(sorted) > maxSeedWords {
		sorted = sorted[:maxSeedWords]
	}
	existingList := strings.Join(sorted, ", ")

	return fmt.Sprintf(`Analyze Chapter %d of an HSK1 Chinese textbook and extract "atom" vocabulary.

## WHAT ARE ATOMS?

Atoms are SIMPLE terms that appear in the chapter but are NOT in the official "New Words" (生词) section:

1. **Numbers** - digits and number words appearing in examples, exercises, or number tables
   - Single digits: 零, 一, 二, 三, 四, 五, 六, 七, 八, 九
   - Ten: 十
   - Hundred: 百

2. **Single characters from 汉字 (Characters) sections** - characters shown with stroke order
   - Characters taught for writing practice that aren't in New Words

3. **Base characters** - simple characters used to form compounds but not listed separately
   - E.g., if "美国" is a New Word but "美" appears independently, include "美"

## WHAT TO EXCLUDE:

- Words already in the official "New Words" list (these are marked as 'hsk' tag)
- Grammar patterns or sentence structures
- Names of people (李月, 王方, etc.)

## EXISTING HSK WORDS (DO NOT INCLUDE THESE):
%s... (showing first 100)

## CHAPTER %d CONTENT:
---
%s
---

## OUTPUT FORMAT:

Return a JSON array of atom vocabulary. Each entry should have:
- word: Chinese character(s)
- pinyin: with tone marks (ā á ǎ à, etc.)
- part_of_speech: one of [numeral, noun, verb, adjective, adverb, pronoun, particle, other]
- meaning: English translation
- context: Brief note on where it appears in the chapter (e.g., "number table", "character stroke section")

Example output:
`+"```json"+`
[
  {"word": "四", "pinyin": "sì", "part_of_speech": "numeral", "meaning": "four", "context": "number table in notes section"},
  {"word": "五", "pinyin": "wǔ", "part_of_speech": "numeral", "meaning": "five", "context": "number table in notes section"}
]
`+"```"+`

Return ONLY the JSON array, no other text. If no atoms are found, return an empty array: []`,
		chapter, existingList, chapter, content)
}
