package catalog

import (
	"fmt"

	"github.com/poiesic/assessrec/core"
)

// Catalog is the ordered, read-only collection of assessments available for
// recommendation. Built once per process lifetime (or on explicit reload);
// the order of items is the source order and is the ranker's tie-break.
type Catalog struct {
	items []core.Assessment
	byKey map[string]int
}

// New validates the items and builds a catalog. Every item must pass
// core.ValidateAssessment and keys must be unique.
func New(items []core.Assessment) (*Catalog, error) {
	byKey := make(map[string]int, len(items))
	for i := range items {
		if err := core.ValidateAssessment(&items[i]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrDataSource, i, err)
		}
		if prev, ok := byKey[items[i].Key]; ok {
			return nil, fmt.Errorf("%w: %q (records %d and %d)", ErrDuplicateKey, items[i].Key, prev, i)
		}
		byKey[items[i].Key] = i
	}

	copied := make([]core.Assessment, len(items))
	copy(copied, items)

	return &Catalog{items: copied, byKey: byKey}, nil
}

// Len returns the number of assessments.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the assessments in source order. The slice is shared and
// must be treated as read-only.
func (c *Catalog) Items() []core.Assessment {
	return c.items
}

// At returns the assessment at the given source position.
func (c *Catalog) At(i int) core.Assessment {
	return c.items[i]
}

// Get looks an assessment up by key.
func (c *Catalog) Get(key string) (core.Assessment, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return core.Assessment{}, false
	}
	return c.items[i], true
}

// Position returns the source position for a key, or -1 if absent.
func (c *Catalog) Position(key string) int {
	i, ok := c.byKey[key]
	if !ok {
		return -1
	}
	return i
}
