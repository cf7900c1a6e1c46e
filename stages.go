package numberify

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// substituteWords replaces every number word by its digits.
// When the lexicon defines a conjunction, that token is dropped between
// a number word and a following number word ("treinta y dos" → "30 2");
// elsewhere it is kept as-is.
func (lx *lexicon) substituteWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	prevNumber := false
	for i, tok := range tokens {
		if v, ok := lx.value(tok); ok {
			out = append(out, formatNumber(v))
			prevNumber = true
			continue
		}
		if lx.conjunction != "" && tok == lx.conjunction && prevNumber &&
			i < len(tokens)-1 && lx.isNumberWord(tokens[i+1]) {
			continue
		}
		out = append(out, tok)
		prevNumber = false
	}
	return out
}

// joinFractionDigits collapses the digit tokens that follow a decimal
// marker into one token. Single digits are read one by one
// ("one four" → "14", "zero five" → "05"); any longer token makes the
// run additive instead ("twenty five" → "25").
func (lx *lexicon) joinFractionDigits(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		out = append(out, tokens[i])
		if !lx.isMarker(tokens[i]) {
			continue
		}
		j := i + 1
		for j < len(tokens) && isNumeric(tokens[j]) {
			j++
		}
		if j-i-1 < 2 {
			continue
		}
		out = append(out, fractionDigits(tokens[i+1:j]))
		i = j - 1
	}
	return out
}

func fractionDigits(run []string) string {
	var b strings.Builder
	for _, tok := range run {
		if len(tok) != 1 {
			var r numberRun
			for _, t := range run {
				v, _ := parseNumber(t)
				r.add(t, v)
			}
			return formatNumber(r.sum)
		}
		b.WriteString(tok)
	}
	return b.String()
}

// replaceArticles turns an indefinite article into "1" when the next
// token is a multiplier ("a hundred" → "1 hundred").
func (lx *lexicon) replaceArticles(tokens []string) []string {
	out := slices.Clone(tokens)
	for i := 0; i < len(out)-1; i++ {
		if lx.isArticle(out[i]) && lx.isMultiplier(out[i+1]) {
			out[i] = "1"
		}
	}
	return out
}

// sumAdjacent folds every run of consecutive digit tokens into their sum.
// Blank tokens are dropped.
func sumAdjacent(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	var run numberRun
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if v, ok := parseNumber(tok); ok {
			run.add(tok, v)
			continue
		}
		out = run.flush(out)
		out = append(out, tok)
	}
	return run.flush(out)
}

// fuseDecimals glues "<int> <marker> <digits>" into one token using the
// lexicon separator. When the marker is not between two numbers the
// separator and the following token are emitted on their own. A marker
// ending the sentence is kept as written.
func (lx *lexicon) fuseDecimals(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	pending := false
	marker := ""
	for _, tok := range tokens {
		if pending {
			pending = false
			if isNumeric(tok) && len(out) > 0 && reInteger.MatchString(out[len(out)-1]) {
				out[len(out)-1] += lx.decimalSeparator + tok
				continue
			}
			out = append(out, lx.decimalSeparator, tok)
			continue
		}
		if lx.isMarker(tok) {
			pending = true
			marker = tok
			continue
		}
		out = append(out, tok)
	}
	if pending {
		out = append(out, marker)
	}
	return out
}

// applyScaledSums implements the English multiplier rules. Each run of
// digits and multipliers collapses into a single total:
//
//	"two thousand three hundred"  → 2300 (smaller multiplier starts a new segment)
//	"three hundred thousand"      → 300000 (larger multiplier scales everything so far)
//
// A multiplier equal to the last one applied is ignored.
func (lx *lexicon) applyScaledSums(tokens []string) []string {
	out := make([]string, 0, len(tokens))

	var (
		segmentSum            = decimal.Zero
		segmentLastSum        = decimal.Zero
		segmentLastMultiplier = decimal.Zero
		fullSum               = decimal.Zero
		runSize               int
		literal               string
	)
	reset := func() {
		segmentSum = decimal.Zero
		segmentLastSum = decimal.Zero
		segmentLastMultiplier = decimal.Zero
		fullSum = decimal.Zero
		runSize = 0
		literal = ""
	}
	flush := func() {
		if runSize == 0 {
			return
		}
		if runSize == 1 && literal != "" {
			out = append(out, literal)
		} else {
			fullSum = fullSum.Add(segmentSum.Add(segmentLastSum))
			out = append(out, formatNumber(fullSum))
		}
		reset()
	}

	for _, tok := range tokens {
		if v, ok := parseNumber(tok); ok {
			segmentSum = segmentSum.Add(v)
			if runSize == 0 {
				literal = tok
			}
			runSize++
			continue
		}

		m, ok := lx.multiplier(tok)
		if !ok {
			flush()
			out = append(out, tok)
			continue
		}

		switch {
		case segmentSum.IsZero() && segmentLastSum.IsZero():
			segmentLastSum = m
			segmentLastMultiplier = m
		case !segmentSum.IsZero() && segmentLastSum.IsZero():
			segmentLastSum = segmentSum.Mul(m)
			segmentLastMultiplier = m
			segmentSum = decimal.Zero
		case m.LessThan(segmentLastMultiplier):
			fullSum = fullSum.Add(segmentLastSum)
			segmentLastSum = segmentSum.Mul(m)
			segmentSum = decimal.Zero
			segmentLastMultiplier = m
		case m.GreaterThan(segmentLastMultiplier):
			segmentLastSum = segmentSum.Add(segmentLastSum).Mul(m)
			fullSum = fullSum.Add(segmentLastSum)
			segmentSum = decimal.Zero
			segmentLastSum = decimal.Zero
			segmentLastMultiplier = decimal.Zero
		}
		runSize++
	}
	flush()
	return out
}

// applyChainedMultipliers implements the Spanish multiplier rules. The
// digits preceding a multiplier are multiplied in place; the positions
// they came from are blanked and dropped by sumAdjacent. A multiplier
// directly after another multiplier scales the previous result
// ("mil millones" → 1000000000).
func (lx *lexicon) applyChainedMultipliers(tokens []string) []string {
	out := slices.Clone(tokens)
	one := decimal.NewFromInt(1)

	lastMultiplierValue := one
	lastMultiplierIndex := -1
	tempSum := decimal.Zero
	var contributing []int

	for i, tok := range tokens {
		if v, ok := parseNumber(tok); ok {
			tempSum = tempSum.Add(v)
			contributing = append(contributing, i)
			continue
		}

		m, ok := lx.multiplier(tok)
		if !ok {
			lastMultiplierValue = one
			tempSum = decimal.Zero
			contributing = contributing[:0]
			continue
		}

		if tempSum.IsZero() {
			if lastMultiplierValue.GreaterThan(one) {
				tempSum = lastMultiplierValue.Mul(m)
				out[lastMultiplierIndex] = ""
			} else {
				tempSum = m
			}
		} else {
			tempSum = tempSum.Mul(m)
		}

		lastMultiplierValue = tempSum
		lastMultiplierIndex = i
		out[i] = formatNumber(tempSum)
		for _, j := range contributing {
			out[j] = ""
		}
		tempSum = decimal.Zero
		contributing = contributing[:0]
	}
	return out
}
