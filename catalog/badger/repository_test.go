package badger

import (
	"context"
	"testing"

	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []core.Assessment {
	return []core.Assessment{
		{Key: "https://example.com/view/java-8-basic/", Name: "Java 8 Basic", Description: "Entry level Java test", TestType: core.TestTypeKnowledge, Duration: 30, AdaptiveSupport: true},
		{Key: "https://example.com/view/interpersonal/", Name: "Interpersonal Skills", TestType: core.TestTypePersonality, Duration: core.DurationUnknown, RemoteSupport: true},
		{Key: "https://example.com/view/verbal/", Name: "Verbal Reasoning", TestType: core.TestTypeCognitive, Duration: 20},
	}
}

func setupRepository(t *testing.T) catalog.Repository {
	t.Helper()

	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func storedCatalog(t *testing.T, repo catalog.Repository) {
	t.Helper()
	cat, err := catalog.New(testItems())
	require.NoError(t, err)
	require.NoError(t, repo.PutCatalog(context.Background(), cat))
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("put and list preserves source order", func(t *testing.T) {
		repo := setupRepository(t)
		storedCatalog(t, repo)

		items, err := repo.ListAssessments(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, testItems(), items)
	})

	t.Run("get by key", func(t *testing.T) {
		repo := setupRepository(t)
		storedCatalog(t, repo)

		a, err := repo.GetAssessment(ctx, "https://example.com/view/interpersonal/")
		require.NoError(t, err)
		assert.Equal(t, "Interpersonal Skills", a.Name)
		assert.Equal(t, core.DurationUnknown, a.Duration)
		assert.True(t, a.RemoteSupport)
	})

	t.Run("get missing key", func(t *testing.T) {
		repo := setupRepository(t)
		storedCatalog(t, repo)

		_, err := repo.GetAssessment(ctx, "https://example.com/view/missing/")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("count", func(t *testing.T) {
		repo := setupRepository(t)
		storedCatalog(t, repo)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("put replaces previous snapshot", func(t *testing.T) {
		repo := setupRepository(t)
		storedCatalog(t, repo)

		smaller, err := catalog.New(testItems()[:1])
		require.NoError(t, err)
		require.NoError(t, repo.PutCatalog(ctx, smaller))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// Keys from the old snapshot are gone.
		_, err = repo.GetAssessment(ctx, "https://example.com/view/verbal/")
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("empty repository", func(t *testing.T) {
		repo := setupRepository(t)

		items, err := repo.ListAssessments(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		_, err = catalog.LoadRepository(ctx, repo)
		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})

	t.Run("load repository round trip", func(t *testing.T) {
		repo := setupRepository(t)
		storedCatalog(t, repo)

		cat, err := catalog.LoadRepository(ctx, repo)
		require.NoError(t, err)
		assert.Equal(t, 3, cat.Len())
		assert.Equal(t, 0, cat.Position("https://example.com/view/java-8-basic/"))
	})
}
