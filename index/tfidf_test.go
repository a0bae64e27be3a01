package index

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDF(t *testing.T) {
	ctx := context.Background()

	docs := []string{
		"java programming test for developers",
		"interpersonal communication skills assessment",
		"python programming challenge",
	}

	t.Run("transform before fit", func(t *testing.T) {
		v := NewTFIDF()
		_, err := v.Transform(ctx, "java")
		assert.ErrorIs(t, err, ErrNotFitted)
	})

	t.Run("fit transform returns one vector per document", func(t *testing.T) {
		v := NewTFIDF()
		vectors, err := v.FitTransform(ctx, docs)
		require.NoError(t, err)
		require.Len(t, vectors, len(docs))

		dim := len(vectors[0])
		for _, vec := range vectors {
			assert.Len(t, vec, dim)
		}
	})

	t.Run("document vectors are unit length", func(t *testing.T) {
		v := NewTFIDF()
		vectors, err := v.FitTransform(ctx, docs)
		require.NoError(t, err)

		for i, vec := range vectors {
			var sum float64
			for _, x := range vec {
				sum += float64(x) * float64(x)
			}
			assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-5, "doc %d", i)
		}
	})

	t.Run("similar text scores higher", func(t *testing.T) {
		v := NewTFIDF()
		vectors, err := v.FitTransform(ctx, docs)
		require.NoError(t, err)

		qv, err := v.Transform(ctx, "java programming")
		require.NoError(t, err)

		simJava := cosine(qv, vectors[0])
		simSoft := cosine(qv, vectors[1])
		assert.Greater(t, simJava, simSoft)
	})

	t.Run("deterministic across fits", func(t *testing.T) {
		a := NewTFIDF()
		va, err := a.FitTransform(ctx, docs)
		require.NoError(t, err)

		b := NewTFIDF()
		vb, err := b.FitTransform(ctx, docs)
		require.NoError(t, err)

		assert.Equal(t, va, vb)
	})

	t.Run("vocabulary cap", func(t *testing.T) {
		v := NewTFIDF(WithMaxFeatures(3))
		vectors, err := v.FitTransform(ctx, docs)
		require.NoError(t, err)
		assert.Len(t, vectors[0], 3)
	})

	t.Run("unknown query terms ignored", func(t *testing.T) {
		v := NewTFIDF()
		_, err := v.FitTransform(ctx, docs)
		require.NoError(t, err)

		qv, err := v.Transform(ctx, "completely unrelated zebra")
		require.NoError(t, err)
		for _, x := range qv {
			assert.Zero(t, x)
		}
	})

	t.Run("bigrams contribute", func(t *testing.T) {
		v := NewTFIDF()
		_, err := v.FitTransform(ctx, []string{"data entry clerk", "entry level data analyst"})
		require.NoError(t, err)

		qv, err := v.Transform(ctx, "data entry")
		require.NoError(t, err)

		var nonZero int
		for _, x := range qv {
			if x != 0 {
				nonZero++
			}
		}
		// "data", "entry", and the bigram "data entry" should all land.
		assert.GreaterOrEqual(t, nonZero, 3)
	})
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Zero(t, cosine([]float32{1, 0}, []float32{0, 0}))
	assert.Zero(t, cosine([]float32{1, 0}, []float32{1, 0, 0}))
	// Opposed vectors clamp to 0.
	assert.Zero(t, cosine([]float32{1, 0}, []float32{-1, 0}))
}
