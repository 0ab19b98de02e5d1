// Package hotline maps locations to regional UXO reporting numbers.
package hotline

import (
	"sort"
	"strings"

	"uxo-chatbot/internal/lexicon"
	"uxo-chatbot/pkg/vntext"
)

// NotFoundMessage is returned by Lookup when no number is known for a location.
// Callers must compare against it rather than assume a phone number came back.
const NotFoundMessage = "Xin lỗi, chưa có số hotline cho khu vực này."

var keyReplacer = strings.NewReplacer(" ", "_", "-", "_", ".", "_")

// Entry is one normalized location key and its phone number.
type Entry struct {
	Key    string
	Number string
}

// Directory is a read-only location -> number table.
type Directory struct {
	numbers map[string]string
	// keys sorted longest first so substring matching is deterministic.
	keys []string
}

// NormalizeKey lowercases and replaces spaces, hyphens and periods with underscores.
func NormalizeKey(location string) string {
	key := keyReplacer.Replace(strings.ToLower(strings.TrimSpace(vntext.NFC(location))))
	for strings.Contains(key, "__") {
		key = strings.ReplaceAll(key, "__", "_")
	}
	return strings.Trim(key, "_")
}

// New builds a Directory from raw entries. Keys are normalized on insert.
func New(entries []Entry) *Directory {
	d := &Directory{numbers: make(map[string]string, len(entries))}
	for _, e := range entries {
		key := NormalizeKey(e.Key)
		if key == "" || e.Number == "" {
			continue
		}
		d.numbers[key] = e.Number
	}
	d.keys = make([]string, 0, len(d.numbers))
	for k := range d.numbers {
		d.keys = append(d.keys, k)
	}
	sort.Slice(d.keys, func(i, j int) bool {
		if len(d.keys[i]) != len(d.keys[j]) {
			return len(d.keys[i]) > len(d.keys[j])
		}
		return d.keys[i] < d.keys[j]
	})
	return d
}

// FromLexicon registers every hotline key plus, for each province that has a
// hotline, its accented name, unaccented name and aliases.
func FromLexicon(lex *lexicon.Lexicon) *Directory {
	var entries []Entry
	for key, number := range lex.Hotlines {
		entries = append(entries, Entry{Key: key, Number: number})
	}
	for _, p := range lex.Provinces {
		number, ok := lex.Hotlines[p.HotlineKey]
		if !ok {
			continue
		}
		names := append([]string{p.Name}, p.Aliases...)
		for _, n := range names {
			entries = append(entries,
				Entry{Key: n, Number: number},
				Entry{Key: vntext.Fold(n), Number: number},
			)
		}
	}
	return New(entries)
}

// Find returns the number for location and whether one was found.
func (d *Directory) Find(location string) (string, bool) {
	key := NormalizeKey(location)
	if key == "" {
		return "", false
	}
	if number, ok := d.numbers[key]; ok {
		return number, true
	}
	for _, k := range d.keys {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return d.numbers[k], true
		}
	}
	return "", false
}

// Lookup returns the number for location, or NotFoundMessage.
func (d *Directory) Lookup(location string) string {
	if number, ok := d.Find(location); ok {
		return number
	}
	return NotFoundMessage
}

// Len returns the number of registered keys.
func (d *Directory) Len() int {
	return len(d.numbers)
}
