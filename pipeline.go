package numberify

import "slices"

// Step records the token sequence produced by one pipeline stage.
type Step struct {
	// Stage is the stage name, e.g. "words" or "multipliers".
	// The first step is always "tokenize".
	Stage string
	// Tokens is a copy of the sequence after the stage ran. It may hold
	// blank entries that a later stage drops.
	Tokens []string
}

// stage is one pure token-to-token transformation.
type stage struct {
	name  string
	apply func([]string) []string
}

// pipeline is the fixed stage sequence of one language.
type pipeline struct {
	tag    string
	stages []stage
}

// run tokenizes sentence, applies every stage in order and rejoins the
// result. If record is non-nil it receives a Step after each stage.
func (p *pipeline) run(sentence string, record func(Step)) string {
	tokens := tokenize(sentence)
	if record != nil {
		record(Step{Stage: "tokenize", Tokens: slices.Clone(tokens)})
	}
	for _, s := range p.stages {
		tokens = s.apply(tokens)
		if record != nil {
			record(Step{Stage: s.name, Tokens: slices.Clone(tokens)})
		}
	}
	return joinTokens(tokens)
}
