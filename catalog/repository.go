package catalog

import (
	"context"
	"fmt"

	"github.com/poiesic/assessrec/core"
)

// Repository persists a catalog snapshot. Implementations must preserve
// source order: ListAssessments returns items in the positions they held
// when the catalog was stored.
type Repository interface {
	// PutCatalog replaces the stored catalog with the given one.
	PutCatalog(ctx context.Context, cat *Catalog) error

	// GetAssessment retrieves a single assessment by key.
	// Returns ErrNotFound if the key is absent.
	GetAssessment(ctx context.Context, key string) (core.Assessment, error)

	// ListAssessments returns all stored assessments in source order.
	ListAssessments(ctx context.Context) ([]core.Assessment, error)

	// Count returns the number of stored assessments.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}

// LoadRepository reads the stored snapshot back into a validated catalog.
func LoadRepository(ctx context.Context, repo Repository) (*Catalog, error) {
	items, err := repo.ListAssessments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataSource, err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	return New(items)
}

// MarshalAssessment serializes an assessment to bytes.
func MarshalAssessment(a *core.Assessment) []byte {
	buf := make([]byte, core.AssessmentMUS.Size(*a))
	core.AssessmentMUS.Marshal(*a, buf)
	return buf
}

// UnmarshalAssessment deserializes an assessment from bytes.
func UnmarshalAssessment(data []byte) (*core.Assessment, error) {
	a, _, err := core.AssessmentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
