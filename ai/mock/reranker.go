package mock

import (
	"context"

	"github.com/poiesic/assessrec/ai"
)

// MockReranker is a test double for ai.Reranker.
// It allows custom behavior injection via function fields.
type MockReranker struct {
	// RerankFunc is called by Rerank if set.
	// If nil, returns the identity ordering truncated to k.
	RerankFunc func(ctx context.Context, query string, candidates []ai.CandidateSummary, k int) ([]int, error)

	callCount int
}

// NewMockReranker creates a mock reranker with identity ordering.
// Note: Returns concrete type to allow test assertions via GetMockReranker().
func NewMockReranker() *MockReranker {
	return &MockReranker{}
}

// Rerank returns the first k candidate indices in their given order.
func (m *MockReranker) Rerank(ctx context.Context, query string, candidates []ai.CandidateSummary, k int) ([]int, error) {
	m.callCount++

	if m.RerankFunc != nil {
		return m.RerankFunc(ctx, query, candidates, k)
	}

	n := len(candidates)
	if k < n {
		n = k
	}
	if n <= 0 {
		return nil, nil
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices, nil
}

// CallCount returns the number of times Rerank was called.
func (m *MockReranker) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockReranker) Reset() {
	m.callCount = 0
	m.RerankFunc = nil
}
