package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"uxo-chatbot/pkg/vntext"
)

//go:embed lexicon.yaml
var defaultYAML []byte

var (
	ErrEmptyVersion = errors.New("lexicon: version is required")
	ErrNoProvinces  = errors.New("lexicon: at least one province is required")
)

// Default returns the lexicon shipped with the binary.
func Default() (*Lexicon, error) {
	return Parse(defaultYAML)
}

// Load reads a lexicon from path. An empty path returns Default.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML lexicon document.
func Parse(raw []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(raw, &lex); err != nil {
		return nil, fmt.Errorf("lexicon: decode: %w", err)
	}
	if err := lex.validate(); err != nil {
		return nil, err
	}
	return &lex, nil
}

func (l *Lexicon) validate() error {
	if l.Version == "" {
		return ErrEmptyVersion
	}
	if len(l.Provinces) == 0 {
		return ErrNoProvinces
	}
	for _, p := range l.Provinces {
		if p.Name == "" {
			return fmt.Errorf("lexicon: province with empty name")
		}
		if p.HotlineKey == "" {
			continue
		}
		if _, ok := l.Hotlines[p.HotlineKey]; !ok {
			return fmt.Errorf("lexicon: province %q references unknown hotline %q", p.Name, p.HotlineKey)
		}
	}
	return nil
}

// LocationTokens returns every province name and alias.
func (l *Lexicon) LocationTokens() []string {
	tokens := make([]string, 0, len(l.Provinces)*3)
	for _, p := range l.Provinces {
		tokens = append(tokens, p.Name)
		tokens = append(tokens, p.Aliases...)
	}
	return tokens
}

// HasQuestionTrigger reports whether text contains a question-trigger phrase.
func (l *Lexicon) HasQuestionTrigger(text string) bool {
	return vntext.ContainsAny(text, l.QuestionTriggers)
}

// HasHotlineKeyword reports whether text contains a hotline phrase.
func (l *Lexicon) HasHotlineKeyword(text string) bool {
	return vntext.ContainsAny(text, l.HotlineKeywords)
}

// HasLocation reports whether text mentions a known province as whole words.
func (l *Lexicon) HasLocation(text string) bool {
	return vntext.ContainsAnyPhrase(text, l.LocationTokens())
}

// IsAwaitingLocation reports whether an assistant message asked the user for a region.
func (l *Lexicon) IsAwaitingLocation(assistantMessage string) bool {
	if assistantMessage == "" {
		return false
	}
	return vntext.ContainsAny(assistantMessage, l.AwaitingLocationPhrases)
}

// MatchProvinces returns the names of provinces mentioned in text, in lexicon order.
func (l *Lexicon) MatchProvinces(text string) []string {
	var found []string
	for _, p := range l.Provinces {
		if vntext.ContainsPhrase(text, p.Name) || vntext.ContainsAnyPhrase(text, p.Aliases) {
			found = append(found, p.Name)
		}
	}
	return found
}
