package corrector

import (
	"fmt"

	"github.com/heartmarshall/hskpipe/internal/domain"
)

// maxContextLen caps how much of the shared structure analysis is embedded
// into each prompt.
const maxContextLen = 4000

// defaultStructureContext is used when no structure analysis file is
// available.
const defaultStructureContext = "Standard HSK textbook structure with sections: 课文, 生词, 拼音, 汉字, 练习"

// buildPrompt creates the correction prompt for a single chapter:
// fixed instruction template, truncated shared structure context, raw OCR
// text. Prompt construction belongs to this layer, not the corrector.
func buildPrompt(chapter int, content, structureContext string) string {
	if structureContext == "" {
		structureContext = defaultStructureContext
	}
	if len(structureContext) > maxContextLen {
		structureContext = structureContext[:maxContextLen]
	}

	return fmt.Sprintf(`You are correcting Chapter %d (第%s课) of an HSK 1 Chinese textbook.

The content was extracted via OCR and contains errors that need fixing.

## STRUCTURE CONTEXT (from analysis of full book):
%s

## YOUR TASK:
Correct the OCR errors and reformat this chapter into clean, well-structured text.

### CORRECTION RULES:

**Pinyin fixes:**
- Add proper tone marks: ā á ǎ à, ē é ě è, ī í ǐ ì, ō ó ǒ ò, ū ú ǔ ù, ǖ ǘ ǚ ǜ
- Common OCR errors: "hdo" → "hǎo", "Nihdo" → "Nǐ hǎo", "bi shi" → "bú shì"
- Use standard pinyin with tone marks, not numbers

**English fixes:**
- "Hcllo" → "Hello", "go0d" → "good", "pltral" → "plural"
- Fix spacing and punctuation

**Formatting:**
- Use clear section headers: 课文 Text, 生词 New Words, 拼音 Pinyin, etc.
- Format vocabulary as: 汉字 | pinyin | part of speech | English
- Keep audio markers (e.g., "01-1") for reference
- Use proper Chinese punctuation (：！？)

**Structure each chapter with these sections (if present in original):**
1. 热身 Warm-up
2. 课文 Text (dialogues)
3. 生词 New Words (vocabulary)
4. 注释 Notes (grammar)
5. 练习 Exercises
6. 拼音 Pinyin
7. 汉字 Characters
8. 运用 Application

## CHAPTER %d RAW OCR CONTENT:
---
%s
---

Please output the CORRECTED chapter in clean, readable format.
Preserve all educational content but fix OCR errors and improve formatting.
Start directly with the chapter header.`, chapter, domain.ChineseNumeral(chapter), structureContext, chapter, content)
}
