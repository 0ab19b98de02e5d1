// Package vntext holds Vietnamese text helpers for keyword matching.
package vntext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dReplacer handles the one Vietnamese letter that has no combining-mark decomposition.
var dReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// Fold removes Vietnamese diacritics: "Quảng Trị" -> "Quang Tri".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return dReplacer.Replace(out)
}

// NFC returns s in canonical composed form.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Normalize lowercases, folds accents and collapses whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(Fold(s))), " ")
}

// Words splits normalized text into words on anything that is not a letter or digit.
func Words(s string) []string {
	return strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
