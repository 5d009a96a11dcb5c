// Package naming holds the StudlyCase rule shared by class and module names.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Studly splits s on every rune that is not a letter or digit, upper-cases
// the first rune of each word and joins the words. The rest of each word is
// kept as written, so acronyms and non-ASCII letters survive and
// Studly(Studly(s)) == Studly(s).
func Studly(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}
