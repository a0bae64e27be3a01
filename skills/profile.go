package skills

// Tag is a single detected skill signal. Keyword records provenance: the
// dictionary entry that triggered the tag.
type Tag struct {
	Category Category
	Keyword  string
}

// Profile is the set of skill tags detected in one piece of text. Profiles
// are derived values: computed fresh per query and per catalog item at
// index-build time, never mutated in place.
type Profile struct {
	Tags []Tag
}

// Has reports whether the profile contains at least one tag in the category.
func (p Profile) Has(c Category) bool {
	for _, tag := range p.Tags {
		if tag.Category == c {
			return true
		}
	}
	return false
}

// CategorySet returns the distinct categories present, in canonical order.
func (p Profile) CategorySet() []Category {
	present := make(map[Category]bool, len(p.Tags))
	for _, tag := range p.Tags {
		present[tag.Category] = true
	}
	out := make([]Category, 0, len(present))
	for _, c := range Categories {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}

// HasTechnicalClass reports whether any tag belongs to the technical class
// (technical or database categories).
func (p Profile) HasTechnicalClass() bool {
	for _, tag := range p.Tags {
		if technicalClass[tag.Category] {
			return true
		}
	}
	return false
}

// HasSoftClass reports whether any tag belongs to the soft-skill class
// (communication, leadership, or personality categories).
func (p Profile) HasSoftClass() bool {
	for _, tag := range p.Tags {
		if softClass[tag.Category] {
			return true
		}
	}
	return false
}

// SharedCategories counts the categories present in both profiles. The
// ranker awards a fixed bonus per shared category.
func SharedCategories(a, b Profile) int {
	in := make(map[Category]bool)
	for _, tag := range a.Tags {
		in[tag.Category] = true
	}

	shared := 0
	seen := make(map[Category]bool)
	for _, tag := range b.Tags {
		if in[tag.Category] && !seen[tag.Category] {
			shared++
			seen[tag.Category] = true
		}
	}
	return shared
}

// Merge returns a profile holding the union of both tag sets, deduplicated,
// in canonical order. Used to fold adapter-extracted requirements into a
// keyword-extracted query profile.
func Merge(a, b Profile) Profile {
	seen := make(map[Tag]bool, len(a.Tags)+len(b.Tags))
	merged := make([]Tag, 0, len(a.Tags)+len(b.Tags))
	for _, tag := range a.Tags {
		if !seen[tag] {
			seen[tag] = true
			merged = append(merged, tag)
		}
	}
	for _, tag := range b.Tags {
		if !seen[tag] {
			seen[tag] = true
			merged = append(merged, tag)
		}
	}
	return Profile{Tags: merged}
}
