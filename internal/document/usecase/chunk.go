package usecase

import (
	"strings"
	"unicode/utf8"
)

// separators in order of preference: paragraph, line, sentence, word, rune.
var separators = []string{"\n\n", "\n", ". ", " ", ""}

// splitter cuts text into chunks of at most size runes, carrying up to
// overlap runes of trailing context into the next chunk.
type splitter struct {
	size    int
	overlap int
}

func (s splitter) Split(text string) []string {
	return s.split(text, separators)
}

func (s splitter) split(text string, seps []string) []string {
	sep, rest := seps[len(seps)-1], []string(nil)
	for i, candidate := range seps {
		if candidate == "" || strings.Contains(text, candidate) {
			sep, rest = candidate, seps[i+1:]
			break
		}
	}

	var pieces []string
	if sep == "" {
		pieces = strings.Split(text, "")
	} else {
		pieces = strings.SplitAfter(text, sep)
	}

	var out, small []string
	for _, p := range pieces {
		if utf8.RuneCountInString(p) <= s.size {
			small = append(small, p)
			continue
		}
		out = append(out, s.merge(small)...)
		small = nil
		if len(rest) == 0 {
			out = append(out, p)
			continue
		}
		out = append(out, s.split(p, rest)...)
	}
	return append(out, s.merge(small)...)
}

// merge packs pieces into chunks. Pieces keep their separators, so joining
// them reproduces the source text.
func (s splitter) merge(pieces []string) []string {
	var out, cur []string
	total := 0
	for _, p := range pieces {
		n := utf8.RuneCountInString(p)
		if len(cur) > 0 && total+n > s.size {
			if chunk := strings.TrimSpace(strings.Join(cur, "")); chunk != "" {
				out = append(out, chunk)
			}
			for len(cur) > 0 && (total > s.overlap || total+n > s.size) {
				total -= utf8.RuneCountInString(cur[0])
				cur = cur[1:]
			}
		}
		cur = append(cur, p)
		total += n
	}
	if chunk := strings.TrimSpace(strings.Join(cur, "")); chunk != "" {
		out = append(out, chunk)
	}
	return out
}
