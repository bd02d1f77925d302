// Package normalize canonicalizes book titles and author names for
// comparison. Folded strings are never shown to the user.
package normalize

import "strings"

// stripped characters: translation and edition differences show up as
// spacing, middle dots, colons, dashes and parenthesized subtitles.
var replacer = strings.NewReplacer(
	" ", "",
	"·", "",
	":", "",
	"—", "",
	"-", "",
	"(", "",
	")", "",
)

// Fold lowercases s and deletes spaces, middle dots, colons, em-dashes,
// hyphens and parentheses. Fold is idempotent and total: an empty string
// folds to an empty string.
func Fold(s string) string {
	return replacer.Replace(strings.ToLower(s))
}
