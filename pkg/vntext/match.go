package vntext

import "strings"

// ContainsAny reports whether any needle occurs as a substring of haystack.
// Both sides are compared after Normalize, so accented and unaccented spellings match.
func ContainsAny(haystack string, needles []string) bool {
	h := Normalize(haystack)
	for _, n := range needles {
		n = Normalize(n)
		if n != "" && strings.Contains(h, n) {
			return true
		}
	}
	return false
}

// ContainsPhrase reports whether phrase occurs in text as a whole-word sequence.
// "hue" matches "thanh pho hue" but not "thue dat".
func ContainsPhrase(text, phrase string) bool {
	p := Words(phrase)
	if len(p) == 0 {
		return false
	}
	padded := " " + strings.Join(Words(text), " ") + " "
	return strings.Contains(padded, " "+strings.Join(p, " ")+" ")
}

// ContainsAnyPhrase reports whether any phrase matches text as whole words.
func ContainsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if ContainsPhrase(text, p) {
			return true
		}
	}
	return false
}
