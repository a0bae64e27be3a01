package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewExtractor(Default())
	require.NoError(t, err)
	return e
}

func TestDictionaryValidate(t *testing.T) {
	t.Run("default dictionary is valid", func(t *testing.T) {
		require.NoError(t, Default().Validate())
	})

	t.Run("missing version", func(t *testing.T) {
		d := Default()
		d.Version = ""
		assert.ErrorIs(t, d.Validate(), ErrDictionaryVersion)
	})

	t.Run("no entries", func(t *testing.T) {
		d := Dictionary{Version: "1"}
		assert.ErrorIs(t, d.Validate(), ErrDictionaryEmpty)
	})

	t.Run("unknown category", func(t *testing.T) {
		d := Default()
		d.Entries[Category("astrology")] = []string{"stars"}
		assert.ErrorIs(t, d.Validate(), ErrUnknownCategory)
	})

	t.Run("uppercase keyword", func(t *testing.T) {
		d := Default()
		d.Entries[CategoryTechnical] = []string{"Java"}
		assert.ErrorIs(t, d.Validate(), ErrInvalidKeyword)
	})
}

func TestExtract(t *testing.T) {
	e := newDefaultExtractor(t)

	t.Run("technical and soft categories", func(t *testing.T) {
		p := e.Extract("I am hiring for Java developers who can also collaborate effectively")

		assert.True(t, p.Has(CategoryTechnical))
		assert.True(t, p.Has(CategoryCommunication))
		assert.True(t, p.HasTechnicalClass())
		assert.True(t, p.HasSoftClass())
	})

	t.Run("provenance records the trigger keyword", func(t *testing.T) {
		p := e.Extract("senior Java developer")

		keywords := make(map[string]bool)
		for _, tag := range p.Tags {
			if tag.Category == CategoryTechnical {
				keywords[tag.Keyword] = true
			}
		}
		assert.True(t, keywords["java"])
		assert.True(t, keywords["developer"])
	})

	t.Run("abbreviation expansion feeds matching", func(t *testing.T) {
		// "SQL" normalizes to "structured query language database",
		// which triggers the database category twice over.
		p := e.Extract("analyst with SQL experience")
		assert.True(t, p.Has(CategoryDatabase))
	})

	t.Run("multi-word keyword", func(t *testing.T) {
		p := e.Extract("routine data entry work")
		assert.True(t, p.Has(CategoryAdministrative))
	})

	t.Run("word boundary matching", func(t *testing.T) {
		// "javascript" must not trigger the bare "java" keyword.
		p := e.Extract("javascript only")
		for _, tag := range p.Tags {
			assert.NotEqual(t, "java", tag.Keyword)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		p := e.Extract("")
		assert.Empty(t, p.Tags)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := e.Extract("Java and Python developer with leadership skills")
		b := e.Extract("Java and Python developer with leadership skills")
		assert.Equal(t, a, b)
	})
}

func TestProfileHelpers(t *testing.T) {
	t.Run("shared categories", func(t *testing.T) {
		a := Profile{Tags: []Tag{
			{CategoryTechnical, "java"},
			{CategoryTechnical, "python"},
			{CategoryCommunication, "english"},
		}}
		b := Profile{Tags: []Tag{
			{CategoryTechnical, "developer"},
			{CategorySales, "sales"},
		}}
		// Only the technical category overlaps; duplicate tags within a
		// category count once.
		assert.Equal(t, 1, SharedCategories(a, b))
	})

	t.Run("merge deduplicates", func(t *testing.T) {
		a := Profile{Tags: []Tag{{CategoryTechnical, "java"}}}
		b := Profile{Tags: []Tag{{CategoryTechnical, "java"}, {CategoryLeadership, "manager"}}}
		m := Merge(a, b)
		assert.Len(t, m.Tags, 2)
	})

	t.Run("category set canonical order", func(t *testing.T) {
		p := Profile{Tags: []Tag{
			{CategoryPersonality, "opq"},
			{CategoryTechnical, "java"},
		}}
		assert.Equal(t, []Category{CategoryTechnical, CategoryPersonality}, p.CategorySet())
	})
}
