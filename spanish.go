package numberify

// Spanish is the language tag of the Spanish pipeline.
const Spanish = "es"

// Spanish has no hyphenated compounds, and its multiplier stage leaves
// blanks that sum-adjacent drops.
var spanishPipeline = &pipeline{
	tag: Spanish,
	stages: []stage{
		{"words", spanishLexicon.substituteWords},
		{"fraction-digits", spanishLexicon.joinFractionDigits},
		{"articles", spanishLexicon.replaceArticles},
		{"multipliers", spanishLexicon.applyChainedMultipliers},
		{"sum-adjacent", sumAdjacent},
		{"decimals", spanishLexicon.fuseDecimals},
	},
}
