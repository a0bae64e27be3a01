// Package index builds an immutable in-memory vector representation of the
// catalog and answers similarity queries against arbitrary text.
//
// The vector method is substitutable: a lexical TF-IDF vectorizer (no I/O)
// or a dense embedding vectorizer backed by an AI provider. Either way the
// contract holds: similarities in [0,1], descending, deterministic ties by
// catalog position, linear scan per query. An Index is never mutated after
// Build; rebuilding produces a fresh Index that callers swap in whole.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/normalize"
)

// Vectorizer turns text into fixed-dimension vectors. FitTransform is
// called once per Build over every document; Transform serves queries
// afterwards and must not change fitted state.
type Vectorizer interface {
	// Name identifies the method, e.g. "tfidf" or "embedding".
	Name() string

	// FitTransform fits the vectorizer on the documents and returns one
	// vector per document, in order.
	FitTransform(ctx context.Context, texts []string) ([][]float32, error)

	// Transform vectorizes a single query text using the fitted state.
	Transform(ctx context.Context, text string) ([]float32, error)
}

// Match is one similarity result.
type Match struct {
	Key        string
	Position   int // original catalog position
	Similarity float64
}

// Index is the immutable similarity index over one catalog snapshot.
type Index struct {
	method     string
	keys       []string
	vectors    [][]float32
	vectorizer Vectorizer
	logger     *slog.Logger
}

// CompositeText produces the indexed document for an assessment: name,
// category, and description, normalized.
func CompositeText(a core.Assessment) string {
	parts := []string{a.Name, string(a.TestType), a.Description}
	return normalize.Normalize(strings.Join(parts, " "))
}

// Build vectorizes every catalog item and returns a ready index.
// O(catalog size); the resulting Index is safe for concurrent queries.
func Build(ctx context.Context, cat *catalog.Catalog, v Vectorizer) (*Index, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if v == nil {
		return nil, ErrVectorizerRequired
	}

	items := cat.Items()
	texts := make([]string, len(items))
	keys := make([]string, len(items))
	for i := range items {
		texts[i] = CompositeText(items[i])
		keys[i] = items[i].Key
	}

	vectors, err := v.FitTransform(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d, received %d", ErrVectorCount, len(texts), len(vectors))
	}

	logger := slog.Default().With("component", "index")
	logger.Debug("index built", "method", v.Name(), "documents", len(keys))

	return &Index{
		method:     v.Name(),
		keys:       keys,
		vectors:    vectors,
		vectorizer: v,
		logger:     logger,
	}, nil
}

// Method returns the vectorizer name the index was built with.
func (idx *Index) Method() string {
	return idx.method
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Query vectorizes the text and returns up to limit matches ordered by
// similarity descending, ties by catalog position. Zero-similarity items
// are included: the ranker's skill bonus can still lift them.
func (idx *Index) Query(ctx context.Context, text string, limit int) ([]Match, error) {
	if limit <= 0 || len(idx.keys) == 0 {
		return nil, nil
	}

	qv, err := idx.vectorizer.Transform(ctx, normalize.Normalize(text))
	if err != nil {
		return nil, err
	}

	matches := make([]Match, len(idx.keys))
	for i := range idx.keys {
		matches[i] = Match{
			Key:        idx.keys[i],
			Position:   i,
			Similarity: cosine(qv, idx.vectors[i]),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
