// Package normalize canonicalizes query and catalog text before indexing
// and keyword matching: case folding, domain abbreviation expansion, and
// whitespace collapsing. Normalize is pure and idempotent.
package normalize

import "strings"

// abbreviations maps recruiting-domain shorthand to its expanded form.
// Expansions are already-normalized text so Normalize stays idempotent.
var abbreviations = map[string]string{
	"jd":   "job description",
	"qa":   "quality assurance",
	"coo":  "chief operating officer",
	"seo":  "search engine optimization",
	"sql":  "structured query language database",
	"html": "web development markup",
	"css":  "web styling",
	"js":   "javascript programming",
}

// Normalize lowercases text, expands the fixed abbreviation table on word
// boundaries, and collapses runs of whitespace to single spaces.
// Always returns a string, possibly empty.
func Normalize(text string) string {
	words := strings.Fields(strings.ToLower(text))

	out := make([]string, 0, len(words))
	for _, word := range words {
		// Abbreviations are matched on the bare word, ignoring trailing
		// punctuation like "sql," or "(qa)".
		bare := strings.Trim(word, ".,!?;:'\"()[]{}")
		if expansion, ok := abbreviations[bare]; ok {
			out = append(out, expansion)
			continue
		}
		out = append(out, word)
	}

	return strings.Join(out, " ")
}
