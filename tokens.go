package numberify

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// reNumeric matches a digit token, optionally with a '.' fraction.
	reNumeric = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	// reInteger matches a plain digit run.
	reInteger = regexp.MustCompile(`^[0-9]+$`)
	// reHyphenated matches a hyphen joining two letters, as in "thirty-two".
	reHyphenated = regexp.MustCompile(`[a-zA-Z]-[a-zA-Z]`)
)

// tokenize splits sentence on single spaces. Runs of spaces produce
// empty fields, which are dropped.
func tokenize(sentence string) []string {
	return strings.FieldsFunc(sentence, func(r rune) bool { return r == ' ' })
}

// joinTokens rejoins tokens with single spaces, skipping blanks left
// behind by stages that consume positions in place.
func joinTokens(tokens []string) string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "" {
			kept = append(kept, tok)
		}
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}

// parseNumber returns the value of a digit token.
func parseNumber(tok string) (decimal.Decimal, bool) {
	if !reNumeric.MatchString(tok) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func isNumeric(tok string) bool {
	return reNumeric.MatchString(tok)
}

func formatNumber(d decimal.Decimal) string {
	return d.String()
}

// numberRun accumulates a contiguous run of digit tokens.
// A run made of a single token is flushed verbatim, so "007" or "3.10"
// survive another pass unchanged.
type numberRun struct {
	sum   decimal.Decimal
	count int
	text  string
}

func (r *numberRun) add(tok string, v decimal.Decimal) {
	r.sum = r.sum.Add(v)
	r.count++
	r.text = tok
}

// flush appends the run total to out and resets the run.
func (r *numberRun) flush(out []string) []string {
	switch r.count {
	case 0:
		return out
	case 1:
		out = append(out, r.text)
	default:
		out = append(out, formatNumber(r.sum))
	}
	*r = numberRun{}
	return out
}
