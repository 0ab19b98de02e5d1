package lexicon

// Province is a known location with its spelling variants.
type Province struct {
	Name       string   `yaml:"name"`
	HotlineKey string   `yaml:"hotline_key"`
	Aliases    []string `yaml:"aliases"`
}

// Lexicon is the versioned set of keyword lists and lookup tables.
// It is loaded once at startup and read-only afterwards.
type Lexicon struct {
	Version                 string            `yaml:"version"`
	QuestionTriggers        []string          `yaml:"question_triggers"`
	HotlineKeywords         []string          `yaml:"hotline_keywords"`
	AwaitingLocationPhrases []string          `yaml:"awaiting_location_phrases"`
	Provinces               []Province        `yaml:"provinces"`
	Hotlines                map[string]string `yaml:"hotlines"`
}
