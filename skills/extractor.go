package skills

import (
	"sort"
	"strings"

	"github.com/poiesic/assessrec/normalize"
)

// Extractor detects skill tags in free text using a validated dictionary.
// It is total (never fails) and deterministic: identical input produces an
// identical, canonically ordered profile.
type Extractor struct {
	dict Dictionary
	// keywords flattened as (category, keyword) pairs in canonical order,
	// so extraction output does not depend on map iteration.
	entries []Tag
}

// NewExtractor validates the dictionary and builds an extractor over it.
func NewExtractor(dict Dictionary) (*Extractor, error) {
	if err := dict.Validate(); err != nil {
		return nil, err
	}

	var entries []Tag
	for _, category := range Categories {
		keywords := append([]string(nil), dict.Entries[category]...)
		sort.Strings(keywords)
		for _, kw := range keywords {
			entries = append(entries, Tag{Category: category, Keyword: kw})
		}
	}

	return &Extractor{dict: dict, entries: entries}, nil
}

// Version returns the version of the dictionary in use.
func (e *Extractor) Version() string {
	return e.dict.Version
}

// Extract normalizes and tokenizes the text, then matches every dictionary
// keyword on word boundaries. Multi-word keywords match consecutive tokens.
func (e *Extractor) Extract(text string) Profile {
	tokens := normalize.Tokenize(normalize.Normalize(text))
	if len(tokens) == 0 {
		return Profile{}
	}

	// Padding makes " kw " a word-boundary match for both single and
	// multi-word keywords.
	padded := " " + strings.Join(tokens, " ") + " "

	var tags []Tag
	for _, entry := range e.entries {
		if strings.Contains(padded, " "+entry.Keyword+" ") {
			tags = append(tags, entry)
		}
	}

	return Profile{Tags: tags}
}
