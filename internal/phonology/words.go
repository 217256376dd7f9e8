package phonology

import (
	"strings"
	"unicode"
)

// Break is the minor prosodic break a comma turns into.
const Break = "|"

// Boundary marks a morpheme boundary in a spelling, as in the affix "-ta".
const Boundary = "-"

// Words splits a sentence into words and break markers. Commas become Break,
// runs of whitespace collapse, and both spaces and underscores separate words.
func Words(sentence string) []string {
	sentence = strings.ReplaceAll(sentence, ",", " "+Break+" ")
	return strings.FieldsFunc(sentence, func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})
}
