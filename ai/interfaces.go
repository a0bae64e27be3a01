package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// RequirementExtractor distills a free-text hiring query into structured
// requirements. Implementations must be thread-safe for concurrent use.
//
// Extraction is advisory: callers fall back to lexical analysis of the
// query when the extractor errors or times out, so implementations should
// fail fast rather than block.
type RequirementExtractor interface {
	// ExtractRequirements analyzes a query and returns the skills, soft
	// skills, and test type preferences it expresses.
	ExtractRequirements(ctx context.Context, query string) (*Requirements, error)
}

// Reranker reorders a candidate shortlist by relevance to the query.
// Implementations must be thread-safe for concurrent use.
//
// Reranking is advisory in the same way extraction is: a failed or
// malformed rerank leaves the caller's original ordering in place.
type Reranker interface {
	// Rerank returns up to k indices into candidates, most relevant first.
	// Every returned index must be a valid, distinct candidate position.
	Rerank(ctx context.Context, query string, candidates []CandidateSummary, k int) ([]int, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages the embedder,
// extractor, and reranker, ensuring they share configuration.
type AIProvider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// RequirementExtractor returns the query understanding service.
	RequirementExtractor() RequirementExtractor

	// Reranker returns the shortlist reordering service.
	Reranker() Reranker

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
