package index

import (
	"context"

	"github.com/poiesic/assessrec/ai"
)

// EmbeddingVectorizer adapts an ai.Embedder to the Vectorizer interface.
// Unlike TFIDF it has no fitted state; fit merely embeds the documents.
type EmbeddingVectorizer struct {
	embedder ai.Embedder
}

// NewEmbeddingVectorizer wraps an embedder for use in Build.
func NewEmbeddingVectorizer(embedder ai.Embedder) (*EmbeddingVectorizer, error) {
	if embedder == nil {
		return nil, ErrVectorizerRequired
	}
	return &EmbeddingVectorizer{embedder: embedder}, nil
}

// Name identifies the method.
func (v *EmbeddingVectorizer) Name() string {
	return "embedding"
}

// FitTransform embeds all documents in one batch call.
func (v *EmbeddingVectorizer) FitTransform(ctx context.Context, texts []string) ([][]float32, error) {
	return v.embedder.EmbedTexts(ctx, texts)
}

// Transform embeds a single query text.
func (v *EmbeddingVectorizer) Transform(ctx context.Context, text string) ([]float32, error) {
	return v.embedder.EmbedText(ctx, text)
}
