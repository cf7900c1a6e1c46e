// Package numberify rewrites number words inside English and Spanish
// sentences as digits: "twenty-three" becomes "23" and
// "dos mil quinientos" becomes "2500".
//
// Each language runs a fixed pipeline of pure token stages. The package
// holds no mutable state and every function is safe for concurrent use.
package numberify

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// pipelines maps language tag → pipeline.
var pipelines = map[string]*pipeline{
	English: englishPipeline,
	Spanish: spanishPipeline,
}

// Text returns sentence with its number words replaced by digits.
// Tokens are rejoined with single spaces and the result is trimmed.
// Sentences in an unsupported language are returned unchanged.
func Text(sentence, lang string) string {
	p, ok := pipelines[lang]
	if !ok {
		return sentence
	}
	return p.run(sentence, nil)
}

// Trace runs the same conversion as Text and returns the token sequence
// after each stage. It returns nil for an unsupported language.
func Trace(sentence, lang string) []Step {
	p, ok := pipelines[lang]
	if !ok {
		return nil
	}
	var steps []Step
	p.run(sentence, func(s Step) {
		steps = append(steps, s)
	})
	return steps
}

// Supported reports whether lang has a pipeline.
func Supported(lang string) bool {
	_, ok := pipelines[lang]
	return ok
}

// Tags returns the supported language tags in sorted order.
func Tags() []string {
	tags := make([]string, 0, len(pipelines))
	for tag := range pipelines {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Languages returns a map of language tag → language name, each name
// written in its own language ("English", "español").
func Languages() map[string]string {
	out := make(map[string]string, len(pipelines))
	for tag := range pipelines {
		out[tag] = display.Self.Name(language.Make(tag))
	}
	return out
}
