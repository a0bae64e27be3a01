package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/recommend"
	"github.com/poiesic/assessrec/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineOver(t *testing.T, items []core.Assessment) *recommend.Engine {
	t.Helper()

	cat, err := catalog.New(items)
	require.NoError(t, err)

	extractor, err := skills.NewExtractor(skills.Default())
	require.NoError(t, err)

	engine, err := recommend.NewEngine(cat, extractor)
	require.NoError(t, err)
	require.NoError(t, engine.Rebuild(context.Background()))
	return engine
}

func evalEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	return engineOver(t, []core.Assessment{
		{Key: "java-basic", Name: "Java 8 Basic", Description: "Entry level Java programming test", TestType: core.TestTypeKnowledge, Duration: 30},
		{Key: "java-adv", Name: "Java 8 Advanced", Description: "Advanced Java programming concepts", TestType: core.TestTypeKnowledge, Duration: 45},
		{Key: "python", Name: "Python Basic", Description: "Python programming fundamentals", TestType: core.TestTypeKnowledge, Duration: 30},
		{Key: "interpersonal", Name: "Interpersonal Skills", Description: "Communication and collaboration", TestType: core.TestTypePersonality, Duration: 25},
		{Key: "verbal", Name: "Verbal Reasoning", Description: "Cognitive verbal aptitude", TestType: core.TestTypeCognitive, Duration: 20},
	})
}

func TestNewRunner(t *testing.T) {
	_, err := NewRunner(nil)
	assert.ErrorIs(t, err, ErrRecommenderRequired)
}

func TestRunnerEvaluate(t *testing.T) {
	ctx := context.Background()
	engine := evalEngine(t)

	truth := GroundTruth{
		"java programming test":           {"java-basic", "java-adv"},
		"python programming fundamentals": {"python"},
		"communication and collaboration": {"interpersonal"},
	}

	runner, err := NewRunner(engine, WithPoolSize(2))
	require.NoError(t, err)

	t.Run("invalid k", func(t *testing.T) {
		_, err := runner.Evaluate(ctx, truth, 0)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("relevant items are recalled", func(t *testing.T) {
		summary, err := runner.Evaluate(ctx, truth, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Evaluated)
		assert.Greater(t, summary.Mean, 0.5)
	})

	t.Run("recall does not decrease with k", func(t *testing.T) {
		var prev float64
		for _, k := range []int{1, 3, 5} {
			summary, err := runner.Evaluate(ctx, truth, k)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, summary.Mean, prev, "k=%d", k)
			prev = summary.Mean
		}
	})

	t.Run("deterministic despite concurrency", func(t *testing.T) {
		a, err := runner.Evaluate(ctx, truth, 3)
		require.NoError(t, err)
		b, err := runner.Evaluate(ctx, truth, 3)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestRecallUnderCatalogGrowth(t *testing.T) {
	ctx := context.Background()

	base := []core.Assessment{
		{Key: "java-basic", Name: "Java 8 Basic", Description: "Entry level Java programming test", TestType: core.TestTypeKnowledge, Duration: 30},
		{Key: "python", Name: "Python Basic", Description: "Python programming fundamentals", TestType: core.TestTypeKnowledge, Duration: 30},
		{Key: "interpersonal", Name: "Interpersonal Skills", Description: "Communication and collaboration", TestType: core.TestTypePersonality, Duration: 25},
	}
	missing := core.Assessment{Key: "java-adv", Name: "Java 8 Advanced", Description: "Advanced Java programming concepts", TestType: core.TestTypeKnowledge, Duration: 45}

	truth := GroundTruth{
		"java programming test": {"java-basic", "java-adv"},
	}

	const k = 3

	evaluate := func(items []core.Assessment) float64 {
		runner, err := NewRunner(engineOver(t, items), WithPoolSize(1))
		require.NoError(t, err)
		summary, err := runner.Evaluate(ctx, truth, k)
		require.NoError(t, err)
		require.Equal(t, 1, summary.Evaluated)
		return summary.Mean
	}

	// Adding a relevant item the catalog was missing must not cost recall.
	before := evaluate(base)
	after := evaluate(append(append([]core.Assessment{}, base...), missing))

	assert.LessOrEqual(t, before, 0.5)
	assert.GreaterOrEqual(t, after, before)
	assert.Equal(t, 1.0, after)
}

type failingRecommender struct{}

func (failingRecommender) Recommend(context.Context, string, int) ([]recommend.Candidate, error) {
	return nil, errors.New("engine down")
}

func TestRunnerPredictFailures(t *testing.T) {
	runner, err := NewRunner(failingRecommender{}, WithPoolSize(1))
	require.NoError(t, err)

	// Failed queries score zero instead of failing the run.
	summary, err := runner.Evaluate(context.Background(), GroundTruth{"q1": {"a"}}, 3)
	require.NoError(t, err)
	assert.Zero(t, summary.Mean)
	assert.Equal(t, 1, summary.Evaluated)
}
