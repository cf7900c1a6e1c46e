package numberify

import "github.com/shopspring/decimal"

// lexicon holds the number vocabulary of one language.
// All maps are keyed by folded word and never change after init.
type lexicon struct {
	// fold turns a raw token into its lookup key.
	fold func(string) string
	// words lists the value tables in lookup priority order.
	words []map[string]int64
	// multipliers maps scale words (hundred, mil, ...) to their value.
	multipliers map[string]int64
	// articles are the indefinite articles read as "1" before a multiplier.
	articles []string
	// conjunction is the raw token elided between two number words
	// ("y" in "treinta y dos"). Empty disables elision.
	conjunction string
	// decimalMarker is the folded word announcing a fractional part.
	decimalMarker string
	// decimalSeparator joins the integer and fractional parts.
	decimalSeparator string
}

// value returns the numeric value of tok if it is a number word.
func (lx *lexicon) value(tok string) (decimal.Decimal, bool) {
	key := lx.fold(tok)
	for _, table := range lx.words {
		if v, ok := table[key]; ok {
			return decimal.NewFromInt(v), true
		}
	}
	return decimal.Zero, false
}

// isNumberWord reports whether tok is found in any value table.
func (lx *lexicon) isNumberWord(tok string) bool {
	_, ok := lx.value(tok)
	return ok
}

// multiplier returns the scale of tok if it is a multiplier word.
func (lx *lexicon) multiplier(tok string) (decimal.Decimal, bool) {
	v, ok := lx.multipliers[lx.fold(tok)]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(v), true
}

func (lx *lexicon) isMultiplier(tok string) bool {
	_, ok := lx.multipliers[lx.fold(tok)]
	return ok
}

func (lx *lexicon) isArticle(tok string) bool {
	key := lx.fold(tok)
	for _, a := range lx.articles {
		if key == a {
			return true
		}
	}
	return false
}

func (lx *lexicon) isMarker(tok string) bool {
	return tok != "" && lx.fold(tok) == lx.decimalMarker
}

// englishLexicon covers zero..ninety plus the short-scale multipliers.
var englishLexicon = &lexicon{
	fold: FoldLower,
	words: []map[string]int64{
		{
			"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
			"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
			"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
			"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
			"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
			"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
		},
	},
	multipliers: map[string]int64{
		"hundred": 100, "hundreds": 100,
		"thousand": 1_000, "thousands": 1_000,
		"million": 1_000_000, "millions": 1_000_000,
		"billion": 1_000_000_000, "billions": 1_000_000_000,
		"trillion": 1_000_000_000_000, "trillions": 1_000_000_000_000,
	},
	articles:         []string{"a", "an"},
	decimalMarker:    "point",
	decimalSeparator: ".",
}

// spanishLexicon is case-sensitive: keys are folded but not lowercased.
var spanishLexicon = &lexicon{
	fold: Fold,
	words: []map[string]int64{
		// simple
		{
			"cero": 0, "uno": 1, "una": 1, "dos": 2, "tres": 3, "cuatro": 4,
			"cinco": 5, "seis": 6, "siete": 7, "ocho": 8, "nueve": 9,
			"diez": 10, "once": 11, "doce": 12, "trece": 13, "catorce": 14,
			"quince": 15, "veinte": 20, "treinta": 30, "cuarenta": 40,
			"cincuenta": 50, "sesenta": 60, "setenta": 70, "ochenta": 80,
			"noventa": 90, "cien": 100,
		},
		// complex
		{
			"ciento": 100, "doscientos": 200, "trescientos": 300,
			"cuatrocientos": 400, "quinientos": 500, "seiscientos": 600,
			"setecientos": 700, "ochocientos": 800, "novecientos": 900,
		},
		// special
		{
			"dieciseis": 16, "diecisiete": 17, "dieciocho": 18, "diecinueve": 19,
			"veintiun": 21, "veintiuno": 21, "veintidos": 22, "veintitres": 23,
			"veinticuatro": 24, "veinticinco": 25, "veintiseis": 26,
			"veintisiete": 27, "veintiocho": 28, "veintinueve": 29,
		},
	},
	multipliers: map[string]int64{
		"mil":    1_000,
		"millon": 1_000_000, "millones": 1_000_000,
		"billon": 1_000_000_000, "billones": 1_000_000_000,
		"trillon": 1_000_000_000_000, "trillones": 1_000_000_000_000,
	},
	articles:         []string{"un"},
	conjunction:      "y",
	decimalMarker:    "coma",
	decimalSeparator: ",",
}
