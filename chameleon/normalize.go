package chameleon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and removes combining marks, so
// "éléphant" folds to "elephant".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// leading articles are ignored when comparing a guess to the secret
// word, so "Le Chat" matches "chat".
var articles = map[string]struct{}{
	"le": {}, "la": {}, "les": {}, "l": {},
	"un": {}, "une": {}, "des": {},
	"the": {}, "a": {}, "an": {},
}

// normalizeWord folds a guess or secret word to a canonical form:
// lowercase, diacritics stripped, non-alphanumerics removed, leading
// articles dropped. Comparison between normalized forms is exact.
func normalizeWord(s string) string {
	s = strings.ToLower(s)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	for len(words) > 1 {
		if _, ok := articles[words[0]]; !ok {
			break
		}
		words = words[1:]
	}

	return strings.Join(words, "")
}
