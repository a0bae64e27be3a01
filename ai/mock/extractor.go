package mock

import (
	"context"
	"strings"

	"github.com/poiesic/assessrec/ai"
)

// MockRequirementExtractor is a test double for ai.RequirementExtractor.
// It allows custom behavior injection via function fields.
type MockRequirementExtractor struct {
	// ExtractRequirementsFunc is called by ExtractRequirements if set.
	// If nil, uses default keyword-scan behavior.
	ExtractRequirementsFunc func(ctx context.Context, query string) (*ai.Requirements, error)

	callCount int
}

// Keyword tables for the default extraction behavior. Deliberately small;
// tests that need more inject ExtractRequirementsFunc.
var (
	mockTechnicalTerms = []string{"java", "python", "javascript", "sql", "excel", "selenium", "programming", "developer"}
	mockSoftTerms      = []string{"communication", "collaboration", "collaborate", "leadership", "interpersonal"}
)

// NewMockRequirementExtractor creates a mock extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockRequirementExtractor() *MockRequirementExtractor {
	return &MockRequirementExtractor{}
}

// ExtractRequirements scans the query for a fixed set of known keywords.
// The result is deterministic for a given query.
func (m *MockRequirementExtractor) ExtractRequirements(ctx context.Context, query string) (*ai.Requirements, error) {
	m.callCount++

	if m.ExtractRequirementsFunc != nil {
		return m.ExtractRequirementsFunc(ctx, query)
	}

	lowered := " " + strings.ToLower(query) + " "
	reqs := &ai.Requirements{}

	for _, term := range mockTechnicalTerms {
		if strings.Contains(lowered, " "+term) {
			reqs.Skills = append(reqs.Skills, term)
		}
	}
	for _, term := range mockSoftTerms {
		if strings.Contains(lowered, " "+term) {
			reqs.SoftSkills = append(reqs.SoftSkills, term)
		}
	}

	switch {
	case len(reqs.Skills) > 0 && len(reqs.SoftSkills) > 0:
		reqs.KeyFocus = "mixed"
		reqs.TestTypes = []string{"K", "P"}
	case len(reqs.Skills) > 0:
		reqs.KeyFocus = "technical"
		reqs.TestTypes = []string{"K"}
	case len(reqs.SoftSkills) > 0:
		reqs.KeyFocus = "soft"
		reqs.TestTypes = []string{"P"}
	}

	return reqs, nil
}

// CallCount returns the number of times ExtractRequirements was called.
func (m *MockRequirementExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRequirementExtractor) Reset() {
	m.callCount = 0
	m.ExtractRequirementsFunc = nil
}
