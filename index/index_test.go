package index

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]core.Assessment{
		{Key: "java", Name: "Java 8 Basic", Description: "Entry level Java programming test", TestType: core.TestTypeKnowledge, Duration: 30},
		{Key: "soft", Name: "Interpersonal Skills", Description: "Communication and collaboration", TestType: core.TestTypePersonality, Duration: 25},
		{Key: "python", Name: "Python Advanced", Description: "Advanced Python programming", TestType: core.TestTypeKnowledge, Duration: 45},
	})
	require.NoError(t, err)
	return cat
}

type fakeVectorizer struct {
	fitVectors [][]float32
	fitErr     error
	queryErr   error
}

func (f *fakeVectorizer) Name() string { return "fake" }

func (f *fakeVectorizer) FitTransform(context.Context, []string) ([][]float32, error) {
	return f.fitVectors, f.fitErr
}

func (f *fakeVectorizer) Transform(context.Context, string) ([]float32, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return []float32{1}, nil
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("nil catalog", func(t *testing.T) {
		_, err := Build(ctx, nil, NewTFIDF())
		assert.ErrorIs(t, err, ErrCatalogRequired)
	})

	t.Run("nil vectorizer", func(t *testing.T) {
		_, err := Build(ctx, testCatalog(t), nil)
		assert.ErrorIs(t, err, ErrVectorizerRequired)
	})

	t.Run("vectorizer error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Build(ctx, testCatalog(t), &fakeVectorizer{fitErr: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("vector count mismatch", func(t *testing.T) {
		_, err := Build(ctx, testCatalog(t), &fakeVectorizer{fitVectors: [][]float32{{1}}})
		assert.ErrorIs(t, err, ErrVectorCount)
	})

	t.Run("success", func(t *testing.T) {
		idx, err := Build(ctx, testCatalog(t), NewTFIDF())
		require.NoError(t, err)
		assert.Equal(t, 3, idx.Len())
		assert.Equal(t, "tfidf", idx.Method())
	})
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	idx, err := Build(ctx, testCatalog(t), NewTFIDF())
	require.NoError(t, err)

	t.Run("relevant document ranks first", func(t *testing.T) {
		matches, err := idx.Query(ctx, "java programming test", 3)
		require.NoError(t, err)
		require.NotEmpty(t, matches)
		assert.Equal(t, "java", matches[0].Key)
	})

	t.Run("descending similarity with stable ties", func(t *testing.T) {
		matches, err := idx.Query(ctx, "java programming", 3)
		require.NoError(t, err)
		for i := 1; i < len(matches); i++ {
			if matches[i-1].Similarity == matches[i].Similarity {
				assert.Less(t, matches[i-1].Position, matches[i].Position)
			} else {
				assert.Greater(t, matches[i-1].Similarity, matches[i].Similarity)
			}
		}
	})

	t.Run("zero similarity items included", func(t *testing.T) {
		matches, err := idx.Query(ctx, "java", 3)
		require.NoError(t, err)
		// All catalog items come back even when unrelated to the query.
		assert.Len(t, matches, 3)
	})

	t.Run("limit truncates", func(t *testing.T) {
		matches, err := idx.Query(ctx, "java programming", 2)
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		matches, err := idx.Query(ctx, "java", 0)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("transform error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		broken, err := Build(ctx, testCatalog(t), &fakeVectorizer{
			fitVectors: [][]float32{{1}, {0}, {1}},
			queryErr:   boom,
		})
		require.NoError(t, err)

		_, err = broken.Query(ctx, "java", 3)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := idx.Query(ctx, "python programming", 3)
		require.NoError(t, err)
		b, err := idx.Query(ctx, "python programming", 3)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestCompositeText(t *testing.T) {
	a := core.Assessment{
		Name:        "Java 8 Basic",
		TestType:    core.TestTypeKnowledge,
		Description: "Entry level JS test",
	}
	text := CompositeText(a)
	assert.Contains(t, text, "java")
	// Abbreviations in descriptions expand during normalization.
	assert.Contains(t, text, "javascript")
	assert.NotContains(t, text, "JS")
}
