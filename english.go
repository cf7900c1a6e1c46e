package numberify

import "strings"

// English is the language tag of the English pipeline.
const English = "en"

var englishPipeline = &pipeline{
	tag: English,
	stages: []stage{
		{"split-hyphens", splitHyphenated},
		{"words", englishLexicon.substituteWords},
		{"fraction-digits", englishLexicon.joinFractionDigits},
		{"articles", englishLexicon.replaceArticles},
		{"multipliers", englishLexicon.applyScaledSums},
		{"sum-adjacent", sumAdjacent},
		{"decimals", englishLexicon.fuseDecimals},
	},
}

// splitHyphenated breaks compounds such as "thirty-two" into separate
// tokens at every hyphen, whether or not the parts are number words.
func splitHyphenated(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !reHyphenated.MatchString(tok) {
			out = append(out, tok)
			continue
		}
		for _, p := range strings.Split(tok, "-") {
			if p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
