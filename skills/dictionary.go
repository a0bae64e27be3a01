package skills

import (
	"fmt"
	"strings"
)

// Category is a skill grouping used to bias ranking.
type Category string

const (
	CategoryTechnical      Category = "technical"
	CategoryDatabase       Category = "database"
	CategoryCommunication  Category = "communication"
	CategoryLeadership     Category = "leadership"
	CategoryCognitive      Category = "cognitive"
	CategorySales          Category = "sales"
	CategoryAdministrative Category = "administrative"
	CategoryPersonality    Category = "personality"
)

// Categories lists every valid category in canonical order.
var Categories = []Category{
	CategoryTechnical,
	CategoryDatabase,
	CategoryCommunication,
	CategoryLeadership,
	CategoryCognitive,
	CategorySales,
	CategoryAdministrative,
	CategoryPersonality,
}

// technicalClass and softClass partition categories for the ranker's
// balance policy. Cognitive, sales, and administrative stay neutral.
var (
	technicalClass = map[Category]bool{
		CategoryTechnical: true,
		CategoryDatabase:  true,
	}
	softClass = map[Category]bool{
		CategoryCommunication: true,
		CategoryLeadership:    true,
		CategoryPersonality:   true,
	}
)

// Dictionary is a versioned mapping from category to trigger keywords.
// Keywords are matched against normalized text on word boundaries, so they
// must be lowercase; multi-word keywords match consecutive tokens.
// A keyword may appear under several categories.
type Dictionary struct {
	Version string
	Entries map[Category][]string
}

// Default returns dictionary version 1, covering technical programming
// languages, database/query skills, communication, cognitive/reasoning, and
// the sales/administrative domain, plus leadership and personality triggers.
//
// Because extraction runs on normalized text, the entries account for the
// normalizer's abbreviation expansions (e.g. "sql" becomes
// "structured query language database", which "database" still matches).
func Default() Dictionary {
	return Dictionary{
		Version: "1",
		Entries: map[Category][]string{
			CategoryTechnical: {
				"java", "python", "javascript", "selenium", "programming",
				"coding", "developer", "excel", "markup", "styling", "engineer",
			},
			CategoryDatabase: {
				"database", "structured query language",
			},
			CategoryCommunication: {
				"communication", "interpersonal", "collaborate", "collaboration",
				"english", "writing", "presentation",
			},
			CategoryLeadership: {
				"leadership", "manager", "executive", "chief operating officer",
			},
			CategoryCognitive: {
				"cognitive", "reasoning", "verbal", "numerical", "analytical",
				"aptitude",
			},
			CategorySales: {
				"sales", "selling", "marketing", "negotiation",
			},
			CategoryAdministrative: {
				"administrative", "clerical", "admin", "data entry",
			},
			CategoryPersonality: {
				"personality", "behavioral", "behavior", "opq",
			},
		},
	}
}

// Validate checks the dictionary before use: known categories only, and
// every keyword non-empty, lowercase, single-spaced. A dictionary is loaded
// once at startup and trusted afterwards, so a bad one must fail loudly.
func (d Dictionary) Validate() error {
	if d.Version == "" {
		return ErrDictionaryVersion
	}
	if len(d.Entries) == 0 {
		return ErrDictionaryEmpty
	}

	valid := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		valid[c] = true
	}

	for category, keywords := range d.Entries {
		if !valid[category] {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
		if len(keywords) == 0 {
			return fmt.Errorf("%w: category %q has no keywords", ErrDictionaryEmpty, category)
		}
		for _, kw := range keywords {
			if kw == "" {
				return fmt.Errorf("%w: empty keyword under %q", ErrInvalidKeyword, category)
			}
			if kw != strings.ToLower(kw) || kw != strings.Join(strings.Fields(kw), " ") {
				return fmt.Errorf("%w: %q under %q", ErrInvalidKeyword, kw, category)
			}
		}
	}

	return nil
}
