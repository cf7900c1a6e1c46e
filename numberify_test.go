package numberify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextEnglish(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"I have twenty-three apples", "I have 23 apples"},
		{"ninety-nine bottles of beer", "99 bottles of beer"},
		{"two thousand three hundred", "2300"},
		{"three hundred thousand", "300000"},
		{"one million two hundred thousand", "1200000"},
		{"seven hundred and five", "700 and 5"},
		{"three point one four", "3.14"},
		{"three point zero five", "3.05"},
		{"one point twenty five", "1.25"},
		{"zero apples", "0 apples"},
		{"Twenty  Five", "25"},
		{"FIFTY dollars", "50 dollars"},
		{"2.5 million people", "2500000 people"},
		{"agent 007 reporting", "agent 007 reporting"},
		// the article is read as 1 and then scaled by the multiplier
		{"a hundred dollars", "100 dollars"},
		{"an hour later", "an hour later"},
		// a repeated multiplier of the same size does not contribute
		{"two hundred hundred", "200"},
		// no numeric follower: the marker degrades to a literal separator
		{"the point is clear", "the . is clear"},
		{"what is the point", "what is the point"},
		{"a well-known fact", "a well known fact"},
		// the fractional part is scaled like any other number
		{"two point five million", "2.5000000"},
	}
	for _, tt := range tests {
		got := Text(tt.in, English)
		assert.Equal(t, tt.want, got, "Text(%q, en)", tt.in)
	}
}

func TestTextSpanish(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"tengo treinta y dos años", "tengo 32 años"},
		{"dos mil quinientos", "2500"},
		{"trescientos mil", "300000"},
		{"dos millones trescientos mil", "2300000"},
		{"mil millones", "1000000000"},
		{"un millón de personas", "1000000 de personas"},
		{"veintiún mil", "21000"},
		{"veintidós años", "22 años"},
		{"ciento veinte euros", "120 euros"},
		{"tres coma catorce", "3,14"},
		{"tres coma uno cuatro", "3,14"},
		{"dos coma cinco mil", "2,5000"},
		{"cero goles", "0 goles"},
		{"pan y leche", "pan y leche"},
		{"uno y otro", "1 y otro"},
		{"entró en coma", "entró en coma"},
	}
	for _, tt := range tests {
		got := Text(tt.in, Spanish)
		assert.Equal(t, tt.want, got, "Text(%q, es)", tt.in)
	}
}

func TestTextUnknownLanguage(t *testing.T) {
	assert.Equal(t, "hello world", Text("hello world", "fr"))
	assert.Equal(t, "  two  spaces ", Text("  two  spaces ", ""))
}

func TestTextWithoutNumberWords(t *testing.T) {
	for _, lang := range Tags() {
		got := Text("  the   quick brown fox ", lang)
		assert.Equal(t, "the quick brown fox", got, lang)
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := map[string][]string{
		English: {
			"I have twenty-three apples",
			"three point two zero",
			"one million two hundred thousand and six",
			"a hundred dollars",
		},
		Spanish: {
			"tengo treinta y dos años",
			"dos mil quinientos",
			"tres coma catorce",
		},
	}
	for lang, sentences := range inputs {
		for _, s := range sentences {
			once := Text(s, lang)
			assert.Equal(t, once, Text(once, lang), "%s: %q", lang, s)
		}
	}
}

func TestTrace(t *testing.T) {
	steps := Trace("twenty-three apples", English)
	require.Len(t, steps, len(englishPipeline.stages)+1)

	assert.Equal(t, "tokenize", steps[0].Stage)
	assert.Equal(t, []string{"twenty-three", "apples"}, steps[0].Tokens)
	assert.Equal(t, "split-hyphens", steps[1].Stage)
	assert.Equal(t, []string{"twenty", "three", "apples"}, steps[1].Tokens)

	last := steps[len(steps)-1]
	assert.Equal(t, "decimals", last.Stage)
	assert.Equal(t, "23 apples", strings.Join(last.Tokens, " "))
}

func TestTraceKeepsBlanks(t *testing.T) {
	steps := Trace("dos mil", Spanish)
	require.Len(t, steps, len(spanishPipeline.stages)+1)

	var multipliers Step
	for _, s := range steps {
		if s.Stage == "multipliers" {
			multipliers = s
		}
	}
	assert.Equal(t, []string{"", "2000"}, multipliers.Tokens)
	assert.Equal(t, []string{"2000"}, steps[len(steps)-1].Tokens)
}

func TestTraceUnknownLanguage(t *testing.T) {
	assert.Nil(t, Trace("hello", "de"))
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	assert.Equal(t, "English", langs[English])
	assert.Equal(t, "español", langs[Spanish])
	assert.Len(t, langs, 2)

	assert.Equal(t, []string{"en", "es"}, Tags())
	assert.True(t, Supported("es"))
	assert.False(t, Supported("fr"))
}
