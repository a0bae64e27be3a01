package index

import (
	"context"
	"math"
	"sort"

	"github.com/poiesic/assessrec/normalize"
)

const defaultMaxFeatures = 500

// TFIDF is the lexical vectorizer: unigram and bigram term frequencies
// weighted by smoothed inverse document frequency, L2-normalized. It needs
// no I/O and is the default method at this catalog scale.
type TFIDF struct {
	maxFeatures int
	vocab       map[string]int
	idf         []float64
	fitted      bool
}

// TFIDFOption configures a TFIDF vectorizer.
type TFIDFOption func(*TFIDF)

// WithMaxFeatures caps the vocabulary size. Default is 500.
func WithMaxFeatures(n int) TFIDFOption {
	return func(t *TFIDF) {
		if n > 0 {
			t.maxFeatures = n
		}
	}
}

// NewTFIDF creates an unfitted TF-IDF vectorizer.
func NewTFIDF(opts ...TFIDFOption) *TFIDF {
	t := &TFIDF{maxFeatures: defaultMaxFeatures}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name identifies the method.
func (t *TFIDF) Name() string {
	return "tfidf"
}

// terms produces the unigram and bigram terms of a normalized text.
func terms(text string) []string {
	tokens := normalize.Tokenize(text)
	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// FitTransform builds the vocabulary and IDF weights from the documents and
// returns their vectors. Vocabulary selection is deterministic: terms are
// ranked by document frequency descending, ties alphabetically.
func (t *TFIDF) FitTransform(_ context.Context, texts []string) ([][]float32, error) {
	df := make(map[string]int)
	docTerms := make([][]string, len(texts))

	for i, text := range texts {
		ts := terms(text)
		docTerms[i] = ts

		seen := make(map[string]bool, len(ts))
		for _, term := range ts {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	ranked := make([]string, 0, len(df))
	for term := range df {
		ranked = append(ranked, term)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if df[ranked[i]] != df[ranked[j]] {
			return df[ranked[i]] > df[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > t.maxFeatures {
		ranked = ranked[:t.maxFeatures]
	}

	t.vocab = make(map[string]int, len(ranked))
	t.idf = make([]float64, len(ranked))
	n := float64(len(texts))
	for i, term := range ranked {
		t.vocab[term] = i
		// Smoothed IDF keeps terms present in every document from zeroing out.
		t.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	t.fitted = true

	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = t.vectorize(docTerms[i])
	}
	return vectors, nil
}

// Transform vectorizes a query using the fitted vocabulary. Terms outside
// the vocabulary are ignored.
func (t *TFIDF) Transform(_ context.Context, text string) ([]float32, error) {
	if !t.fitted {
		return nil, ErrNotFitted
	}
	return t.vectorize(terms(text)), nil
}

func (t *TFIDF) vectorize(ts []string) []float32 {
	v := make([]float32, len(t.idf))
	for _, term := range ts {
		if i, ok := t.vocab[term]; ok {
			v[i] += float32(t.idf[i])
		}
	}
	l2Normalize(v)
	return v
}
