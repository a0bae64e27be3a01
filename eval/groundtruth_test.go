package eval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadGroundTruthJSON(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeTempFile(t, "truth.json", `{
			"java developers": ["https://example.com/view/java-8-basic/"],
			"team players": ["https://example.com/view/interpersonal/", "https://example.com/view/opq/"]
		}`)

		truth, err := LoadGroundTruthJSON(path)
		require.NoError(t, err)
		require.Len(t, truth, 2)
		assert.Len(t, truth["team players"], 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGroundTruthJSON(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, ErrGroundTruth)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadGroundTruthJSON(writeTempFile(t, "bad.json", "{not json"))
		assert.ErrorIs(t, err, ErrGroundTruth)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := LoadGroundTruthJSON(writeTempFile(t, "empty.json", "{}"))
		assert.ErrorIs(t, err, ErrGroundTruth)
	})
}

func TestLoadGroundTruthCSV(t *testing.T) {
	t.Run("valid with accumulation", func(t *testing.T) {
		path := writeTempFile(t, "truth.csv",
			"Query,Assessment_url\n"+
				"java developers,https://example.com/view/java-8-basic/\n"+
				"java developers,https://example.com/view/java-8-advanced/\n"+
				"team players,https://example.com/view/interpersonal/\n")

		truth, err := LoadGroundTruthCSV(path)
		require.NoError(t, err)
		require.Len(t, truth, 2)
		assert.Len(t, truth["java developers"], 2)
		assert.Equal(t, []string{"https://example.com/view/interpersonal/"}, truth["team players"])
	})

	t.Run("empty key declares query without relevant items", func(t *testing.T) {
		path := writeTempFile(t, "truth.csv",
			"Query,Assessment_url\nunjudged query,\n")

		truth, err := LoadGroundTruthCSV(path)
		require.NoError(t, err)
		require.Contains(t, truth, "unjudged query")
		assert.Empty(t, truth["unjudged query"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGroundTruthCSV(filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, ErrGroundTruth)
	})

	t.Run("wrong column count", func(t *testing.T) {
		_, err := LoadGroundTruthCSV(writeTempFile(t, "bad.csv", "Query\nq1\n"))
		assert.ErrorIs(t, err, ErrGroundTruth)
	})

	t.Run("empty query cell", func(t *testing.T) {
		_, err := LoadGroundTruthCSV(writeTempFile(t, "bad.csv",
			"Query,Assessment_url\n,https://example.com/view/a/\n"))
		assert.ErrorIs(t, err, ErrGroundTruth)
	})

	t.Run("header only", func(t *testing.T) {
		_, err := LoadGroundTruthCSV(writeTempFile(t, "empty.csv", "Query,Assessment_url\n"))
		assert.ErrorIs(t, err, ErrGroundTruth)
	})
}
