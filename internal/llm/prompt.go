package llm

import (
	"fmt"
	"maps"
	"slices"
)

const systemPromptTemplate = `You translate in-game dialogue from Super Mario Galaxy 2 into %s.

The text contains control tags in square brackets, for example [color:red],
[wait:30], [pagebreak], [icon:star] or [ruby:漢字;かんじ]. Rules:
- Keep every tag exactly as written, including its arguments. Do not translate
  or reorder the contents of a tag; you may move a tag within the sentence.
- Do not add or remove tags.
- "\[" is a literal bracket and "\\" a literal backslash; keep them escaped.
- Answer with the translated text only, without quotes or commentary.`

// SystemPrompt returns the system prompt for opts. A custom prompt in
// opts replaces the built-in one.
func SystemPrompt(opts TranslateOptions) string {
	if opts.Prompt != "" {
		return opts.Prompt
	}
	lang := opts.Language
	if lang == "" {
		lang = DefaultTranslateOptions().Language
	}
	return fmt.Sprintf(systemPromptTemplate, languageName(lang))
}

var languageNames = map[string]string{
	"en": "English",
	"ja": "Japanese",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"it": "Italian",
	"nl": "Dutch",
	"ko": "Korean",
	"zh": "Chinese",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// Languages returns the language codes with a known name, sorted.
func Languages() []string {
	return slices.Sorted(maps.Keys(languageNames))
}
