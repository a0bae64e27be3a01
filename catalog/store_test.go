package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/assessrec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {
    "name": "Java 8 Basic",
    "url": "https://example.com/view/java-8-basic/",
    "description": "Entry level Java test",
    "test_type": "K",
    "duration": 30,
    "adaptive_support": "yes",
    "remote_support": "no"
  },
  {
    "name": "Interpersonal Skills",
    "url": "https://example.com/view/interpersonal-skills/",
    "description": "",
    "test_type": "P",
    "duration": "unknown",
    "adaptive_support": false,
    "remote_support": true
  },
  {
    "name": "Verbal Reasoning",
    "url": "https://example.com/view/verbal-reasoning/"
  }
]`

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		cat, err := LoadFile(writeCatalogFile(t, sampleJSON))
		require.NoError(t, err)
		require.Equal(t, 3, cat.Len())

		java, ok := cat.Get("https://example.com/view/java-8-basic/")
		require.True(t, ok)
		assert.Equal(t, "Java 8 Basic", java.Name)
		assert.Equal(t, core.TestTypeKnowledge, java.TestType)
		assert.Equal(t, 30, java.Duration)
		assert.True(t, java.AdaptiveSupport)
		assert.False(t, java.RemoteSupport)

		soft, ok := cat.Get("https://example.com/view/interpersonal-skills/")
		require.True(t, ok)
		assert.Equal(t, core.DurationUnknown, soft.Duration)
		assert.True(t, soft.RemoteSupport)

		// Optional fields absent entirely.
		verbal, ok := cat.Get("https://example.com/view/verbal-reasoning/")
		require.True(t, ok)
		assert.Equal(t, core.TestTypeUnknown, verbal.TestType)
		assert.Equal(t, core.DurationUnknown, verbal.Duration)
	})

	t.Run("source order preserved", func(t *testing.T) {
		cat, err := LoadFile(writeCatalogFile(t, sampleJSON))
		require.NoError(t, err)
		assert.Equal(t, "Java 8 Basic", cat.At(0).Name)
		assert.Equal(t, 0, cat.Position("https://example.com/view/java-8-basic/"))
		assert.Equal(t, 2, cat.Position("https://example.com/view/verbal-reasoning/"))
		assert.Equal(t, -1, cat.Position("missing"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, ErrDataSource)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadFile(writeCatalogFile(t, "{not json"))
		assert.ErrorIs(t, err, ErrDataSource)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := LoadFile(writeCatalogFile(t, "[]"))
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("duplicate keys", func(t *testing.T) {
		_, err := LoadFile(writeCatalogFile(t, `[
			{"name": "A", "url": "https://example.com/view/a/"},
			{"name": "B", "url": "https://example.com/view/a/"}
		]`))
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := LoadFile(writeCatalogFile(t, `[{"url": "https://example.com/view/a/"}]`))
		assert.ErrorIs(t, err, ErrDataSource)
	})

	t.Run("negative duration", func(t *testing.T) {
		_, err := LoadFile(writeCatalogFile(t, `[{"name": "A", "url": "u", "duration": -5}]`))
		assert.ErrorIs(t, err, ErrDataSource)
	})
}
